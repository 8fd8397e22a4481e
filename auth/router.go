package auth

import (
	"net/http"
	"net/url"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated and loaded before the handler runs
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading.
// Requests without a session are sent to the login page, carrying the
// originally requested path in the next parameter.
type Router struct {
	Base      *gin.Engine
	LoginPath string
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, cr.LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
