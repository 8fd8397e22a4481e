package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"yatube/cache"
	"yatube/db"
	"yatube/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest builds a router over a fresh in-memory database and returns the
// page cache so tests can flush it.
func setupTest(t *testing.T) (*gin.Engine, *cache.PageCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	instance, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.Instance = instance
	models.Init()

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	store := cookie.NewStore([]byte("test key"))
	router.Use(sessions.Sessions("token", store))
	pageCache := cache.New(20 * time.Second)
	RegisterRoutes(router, pageCache)
	return router, pageCache
}

func doGet(router *gin.Engine, path, sessionCookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func doPost(router *gin.Engine, path, sessionCookie string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}
	router.ServeHTTP(w, req)
	return w
}

// signupAs registers a user through the signup route and returns the session
// cookie of the logged-in user.
func signupAs(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	w := doPost(router, "/auth/signup/", "", url.Values{
		"name":     {username},
		"username": {username},
		"email":    {username + "@example.com"},
		"password": {"secret"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("signup for %s: status %d", username, w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatalf("signup for %s: no session cookie", username)
	return ""
}

func createGroup(t *testing.T, title, slug string) models.Group {
	t.Helper()
	group := models.Group{Title: title, Slug: slug, Description: title + " description"}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatalf("create group: %v", err)
	}
	return group
}

func TestAuthRequiredRedirectsToLogin(t *testing.T) {
	router, _ := setupTest(t)
	w := doGet(router, "/create/", "")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	location := w.Header().Get("Location")
	if location != "/auth/login/?next=%2Fcreate%2F" {
		t.Errorf("Location = %q", location)
	}
}

func TestLoginHonorsNext(t *testing.T) {
	router, _ := setupTest(t)
	signupAs(t, router, "leo")
	w := doPost(router, "/auth/login/", "", url.Values{
		"email":    {"leo@example.com"},
		"password": {"secret"},
		"next":     {"/create/"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/create/" {
		t.Errorf("Location = %q, want /create/", got)
	}
}

func TestLoginRejectsOffsiteNext(t *testing.T) {
	router, _ := setupTest(t)
	signupAs(t, router, "leo")
	w := doPost(router, "/auth/login/", "", url.Values{
		"email":    {"leo@example.com"},
		"password": {"secret"},
		"next":     {"https://evil.example.com/"},
	})
	if got := w.Header().Get("Location"); got != "/" {
		t.Errorf("Location = %q, want /", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := setupTest(t)
	signupAs(t, router, "leo")
	w := doPost(router, "/auth/login/", "", url.Values{
		"email":    {"leo@example.com"},
		"password": {"wrong"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Wrong email or password.") {
		t.Error("error message missing from the login page")
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router, _ := setupTest(t)
	if w := doGet(router, "/nowhere/", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGroupPageNotFound(t *testing.T) {
	router, _ := setupTest(t)
	if w := doGet(router, "/group/missing/", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestProfileNotFound(t *testing.T) {
	router, _ := setupTest(t)
	if w := doGet(router, "/profile/ghost/", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestIndexCachedWithinWindow(t *testing.T) {
	router, pageCache := setupTest(t)
	sessionCookie := signupAs(t, router, "leo")
	doPost(router, "/create/", sessionCookie, url.Values{"text": {"first post"}})

	first := doGet(router, "/", "")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", first.Code)
	}
	// A new post inside the cache window must not change the response
	doPost(router, "/create/", sessionCookie, url.Values{"text": {"second post"}})
	second := doGet(router, "/", "")
	if first.Body.String() != second.Body.String() {
		t.Error("home feed changed inside the cache window")
	}

	pageCache.Flush()
	third := doGet(router, "/", "")
	if third.Body.String() == first.Body.String() {
		t.Error("home feed unchanged after cache flush")
	}
	if !strings.Contains(third.Body.String(), "second post") {
		t.Error("fresh home feed is missing the new post")
	}
}
