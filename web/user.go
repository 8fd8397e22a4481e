package web

import (
	"net/http"
	"strings"

	"yatube/auth"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type signupForm struct {
	Name     string `form:"name" binding:"required"`
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", ctx(c, gin.H{}))
}

func Signup(c *gin.Context) {
	form := signupForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", ctx(c, gin.H{
			"error": "All fields are required.",
			"form":  form,
		}))
		return
	}
	user, err := models.UserCreate(form.Name, form.Username, form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", ctx(c, gin.H{
			"error": "That username or email is already taken.",
			"form":  form,
		}))
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", ctx(c, gin.H{
		"next": safeNext(c.Query("next")),
	}))
}

func Login(c *gin.Context) {
	form := loginForm{}
	next := safeNext(c.PostForm("next"))
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", ctx(c, gin.H{
			"error": "Email and password are required.",
			"next":  next,
		}))
		return
	}
	user, success := models.UserLogin(form.Email, form.Password)
	if !success {
		c.HTML(http.StatusOK, "login.tmpl", ctx(c, gin.H{
			"error": "Wrong email or password.",
			"next":  next,
		}))
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// safeNext keeps the post-login redirect on this site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
