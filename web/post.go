package web

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"yatube/db"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const thumbSize = 300

type postForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

// validate applies the form rules and resolves the optional group choice.
// Returned field errors are keyed by field name for the template.
func (f *postForm) validate() (groupID *uint64, errors map[string]string) {
	errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		errors["text"] = "This field is required."
	}
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			errors["group"] = "Select a valid group."
			return
		}
		var group models.Group
		if db.Instance.First(&group, id).Error != nil {
			errors["group"] = "Select a valid group."
			return
		}
		groupID = &group.ID
	}
	return
}

func paramID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// savePostImage stores the uploaded original plus a feed thumbnail and
// returns their storage paths. A file that does not decode as an image is
// reported as an error so the form can re-render.
func savePostImage(header *multipart.FileHeader) (imagePath, thumbPath string, err error) {
	file, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", err
	}
	var thumbBuf bytes.Buffer
	if _, err = utils.CreateThumb(thumbSize, bytes.NewReader(data), &thumbBuf); err != nil {
		return "", "", err
	}
	name := uuid.New().String()
	imagePath = "posts/" + name + strings.ToLower(filepath.Ext(header.Filename))
	thumbPath = "thumbs/" + name + ".jpg"
	media := storage.GetDefaultStorage()
	if _, err = media.Save(imagePath, bytes.NewReader(data)); err != nil {
		return "", "", err
	}
	if _, err = media.Save(thumbPath, &thumbBuf); err != nil {
		media.Delete(imagePath)
		return "", "", err
	}
	return imagePath, thumbPath, nil
}

func PostCreateForm(c *gin.Context, user *models.User) {
	c.HTML(http.StatusOK, "create_post.tmpl", ctx(c, gin.H{
		"form":   postForm{},
		"errors": map[string]string{},
		"groups": models.GroupList(),
		"isEdit": false,
	}))
}

// PostCreate persists a new post for the current user. Invalid submissions
// re-render the form with field errors and create nothing.
func PostCreate(c *gin.Context, user *models.User) {
	form := postForm{}
	_ = c.ShouldBind(&form)
	groupID, errors := form.validate()
	imagePath, thumbPath := "", ""
	if len(errors) == 0 {
		if header, _ := c.FormFile("image"); header != nil {
			var err error
			if imagePath, thumbPath, err = savePostImage(header); err != nil {
				errors["image"] = "Upload a valid image."
			}
		}
	}
	if len(errors) > 0 {
		c.HTML(http.StatusOK, "create_post.tmpl", ctx(c, gin.H{
			"form":   form,
			"errors": errors,
			"groups": models.GroupList(),
			"isEdit": false,
		}))
		return
	}
	post := models.Post{
		UserID:    user.ID,
		GroupID:   groupID,
		Text:      form.Text,
		ImagePath: imagePath,
		ThumbPath: thumbPath,
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		c.String(http.StatusInternalServerError, "DB Error")
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// PostDetail renders one post with all of its comments. Comment submission
// is a separate handler; this one only reads.
func PostDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	post, found := models.PostByID(id)
	if !found {
		notFound(c)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", ctx(c, gin.H{
		"post":     post,
		"comments": models.CommentsForPost(post.ID),
		"count":    models.PostCount(),
	}))
}

// loadOwnPost enforces the ownership rule for edits: a non-author is sent
// back to the post page without any change.
func loadOwnPost(c *gin.Context, user *models.User) (models.Post, bool) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return models.Post{}, false
	}
	post, found := models.PostByID(id)
	if !found {
		notFound(c)
		return models.Post{}, false
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
		return models.Post{}, false
	}
	return post, true
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, ok := loadOwnPost(c, user)
	if !ok {
		return
	}
	form := postForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(*post.GroupID, 10)
	}
	c.HTML(http.StatusOK, "create_post.tmpl", ctx(c, gin.H{
		"form":   form,
		"errors": map[string]string{},
		"groups": models.GroupList(),
		"isEdit": true,
		"post":   post,
	}))
}

// PostEdit updates text, group and image of an own post. The author and
// creation timestamp never change.
func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadOwnPost(c, user)
	if !ok {
		return
	}
	form := postForm{}
	_ = c.ShouldBind(&form)
	groupID, errors := form.validate()
	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": groupID,
	}
	if len(errors) == 0 {
		if header, _ := c.FormFile("image"); header != nil {
			imagePath, thumbPath, err := savePostImage(header)
			if err != nil {
				errors["image"] = "Upload a valid image."
			} else {
				if post.ImagePath != "" {
					media := storage.GetDefaultStorage()
					media.Delete(post.ImagePath)
					media.Delete(post.ThumbPath)
				}
				updates["image_path"] = imagePath
				updates["thumb_path"] = thumbPath
			}
		}
	}
	if len(errors) > 0 {
		c.HTML(http.StatusOK, "create_post.tmpl", ctx(c, gin.H{
			"form":   form,
			"errors": errors,
			"groups": models.GroupList(),
			"isEdit": true,
			"post":   post,
		}))
		return
	}
	if err := db.Instance.Model(&post).Updates(updates).Error; err != nil {
		c.String(http.StatusInternalServerError, "DB Error")
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
}
