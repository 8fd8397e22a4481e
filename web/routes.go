package web

import (
	"yatube/auth"
	"yatube/cache"

	"github.com/gin-gonic/gin"
)

const loginPath = "/auth/login/"

// RegisterRoutes wires every route of the site onto the engine. The page
// cache wraps the home feed only.
func RegisterRoutes(router *gin.Engine, pageCache *cache.PageCache) {
	authRouter := &auth.Router{Base: router, LoginPath: loginPath}

	// Public pages
	router.GET("/", pageCache.Handler(), Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.GET("/media/*path", MediaFetch)
	router.GET("/robots.txt", DisallowRobots)

	// Posting
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/comment/", CommentCreate)

	// Follows
	authRouter.GET("/follow/", FollowIndex)
	authRouter.GET("/profile/:username/follow/", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", ProfileUnfollow)

	// Accounts
	router.GET("/auth/signup/", SignupForm)
	router.POST("/auth/signup/", Signup)
	router.GET("/auth/login/", LoginForm)
	router.POST("/auth/login/", Login)
	authRouter.POST("/auth/logout/", Logout)
}
