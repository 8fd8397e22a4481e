package web

import (
	"net/http"
	"strconv"
	"strings"

	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

type commentForm struct {
	Text string `form:"text"`
}

// CommentCreate adds a comment to an existing post. The response is a
// redirect back to the post page whether or not the text was valid, so an
// empty submission is silently dropped.
func CommentCreate(c *gin.Context, user *models.User) {
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
	form := commentForm{}
	_ = c.ShouldBind(&form)
	if strings.TrimSpace(form.Text) != "" {
		comment := models.Comment{
			PostID: post.ID,
			UserID: user.ID,
			Text:   form.Text,
		}
		if err := db.Instance.Create(&comment).Error; err != nil {
			c.String(http.StatusInternalServerError, "DB Error")
			return
		}
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
}
