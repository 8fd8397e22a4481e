package web

import (
	"strings"

	"yatube/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves uploaded post images through the storage backend
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		notFound(c)
		return
	}
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
