package web

import (
	"net/http"

	"yatube/auth"
	"yatube/models"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// postPage counts and loads one page of posts for a query. The base builder
// is called twice because gorm finishers consume the statement.
func postPage(c *gin.Context, base func() *gorm.DB, preloads ...string) ([]models.Post, utils.Page) {
	var count int64
	base().Count(&count)
	page := utils.NewPage(c.Query("page"), count, utils.PerPage)
	query := base().
		Order("posts.created_at DESC, posts.id DESC").
		Offset(page.Offset()).
		Limit(page.PerPage)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	var posts []models.Post
	query.Find(&posts)
	return posts, page
}

// ctx adds the session user (when present) to a template context
func ctx(c *gin.Context, h gin.H) gin.H {
	user := auth.LoadSession(c).User()
	if user.ID != 0 {
		h["user"] = user
	}
	return h
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
