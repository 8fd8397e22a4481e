package web

import (
	"net/http"

	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Index is the home feed: all posts, newest first. The rendered page is
// cached by the page cache middleware for the configured window.
func Index(c *gin.Context) {
	posts, page := postPage(c, func() *gorm.DB {
		return db.Instance.Model(&models.Post{})
	}, "User", "Group")
	c.HTML(http.StatusOK, "index.tmpl", ctx(c, gin.H{
		"title": "Latest updates",
		"posts": posts,
		"page":  page,
	}))
}

// FollowIndex shows posts by the authors the current user follows
func FollowIndex(c *gin.Context, user *models.User) {
	posts, page := postPage(c, func() *gorm.DB {
		return db.Instance.Model(&models.Post{}).
			Joins("join follows on follows.author_id = posts.user_id").
			Where("follows.user_id = ?", user.ID)
	}, "User", "Group")
	c.HTML(http.StatusOK, "follow.tmpl", ctx(c, gin.H{
		"title": "Posts by authors you follow",
		"posts": posts,
		"page":  page,
	}))
}
