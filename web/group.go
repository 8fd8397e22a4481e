package web

import (
	"net/http"

	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GroupPosts shows the feed of a single group, looked up by slug
func GroupPosts(c *gin.Context) {
	group, found := models.GroupBySlug(c.Param("slug"))
	if !found {
		notFound(c)
		return
	}
	posts, page := postPage(c, func() *gorm.DB {
		return db.Instance.Model(&models.Post{}).Where("group_id = ?", group.ID)
	}, "User")
	c.HTML(http.StatusOK, "group_list.tmpl", ctx(c, gin.H{
		"group": group,
		"posts": posts,
		"page":  page,
	}))
}
