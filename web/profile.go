package web

import (
	"net/http"

	"yatube/auth"
	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Profile shows all posts by one author plus whether the current viewer
// follows them. Anonymous viewers always see following=false.
func Profile(c *gin.Context) {
	author, found := models.UserByUsername(c.Param("username"))
	if !found {
		notFound(c)
		return
	}
	posts, page := postPage(c, func() *gorm.DB {
		return db.Instance.Model(&models.Post{}).Where("user_id = ?", author.ID)
	}, "User", "Group")
	following := false
	viewer := auth.LoadSession(c).User()
	if viewer.ID != 0 {
		following = models.IsFollowing(viewer.ID, author.ID)
	}
	c.HTML(http.StatusOK, "profile.tmpl", ctx(c, gin.H{
		"author":    author,
		"posts":     posts,
		"page":      page,
		"count":     page.TotalCount,
		"following": following,
	}))
}

// ProfileFollow subscribes the current user to an author. Following
// yourself or someone you already follow is a no-op.
func ProfileFollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	author, found := models.UserByUsername(username)
	if !found {
		notFound(c)
		return
	}
	if author.ID != user.ID && !models.IsFollowing(user.ID, author.ID) {
		db.Instance.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID})
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// ProfileUnfollow removes the subscription if there is one
func ProfileUnfollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	author, found := models.UserByUsername(username)
	if !found {
		notFound(c)
		return
	}
	db.Instance.
		Where("user_id = ? and author_id = ?", user.ID, author.ID).
		Delete(&models.Follow{})
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
