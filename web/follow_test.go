package web

import (
	"net/http"
	"strings"
	"testing"

	"yatube/db"
	"yatube/models"
)

func followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	db.Instance.Model(&models.Follow{}).Count(&count)
	return count
}

func TestFollowThenUnfollow(t *testing.T) {
	router, _ := setupTest(t)
	signupAs(t, router, "ana")
	leoCookie := signupAs(t, router, "leo")

	w := doGet(router, "/profile/ana/follow/", leoCookie)
	if w.Code != http.StatusFound {
		t.Fatalf("follow status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/profile/ana/" {
		t.Errorf("Location = %q, want /profile/ana/", got)
	}
	if got := followCount(t); got != 1 {
		t.Fatalf("follow count = %d, want 1", got)
	}

	// Following twice is a no-op
	doGet(router, "/profile/ana/follow/", leoCookie)
	if got := followCount(t); got != 1 {
		t.Errorf("follow count after repeat = %d, want 1", got)
	}

	doGet(router, "/profile/ana/unfollow/", leoCookie)
	if got := followCount(t); got != 0 {
		t.Errorf("follow count after unfollow = %d, want 0", got)
	}

	// Unfollowing with no subscription is also a no-op
	w = doGet(router, "/profile/ana/unfollow/", leoCookie)
	if w.Code != http.StatusFound {
		t.Errorf("unfollow status = %d, want 302", w.Code)
	}
	if got := followCount(t); got != 0 {
		t.Errorf("follow count = %d, want 0", got)
	}
}

func TestSelfFollowBlocked(t *testing.T) {
	router, _ := setupTest(t)
	leoCookie := signupAs(t, router, "leo")
	w := doGet(router, "/profile/leo/follow/", leoCookie)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := followCount(t); got != 0 {
		t.Errorf("follow count = %d, want 0", got)
	}
}

func TestFollowUnknownAuthor(t *testing.T) {
	router, _ := setupTest(t)
	leoCookie := signupAs(t, router, "leo")
	if w := doGet(router, "/profile/ghost/follow/", leoCookie); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestFollowFeedShowsOnlyFollowedAuthors(t *testing.T) {
	router, _ := setupTest(t)
	signupAs(t, router, "ana")
	bobCookie := signupAs(t, router, "bob")
	leoCookie := signupAs(t, router, "leo")

	ana := userByName(t, "ana")
	bob := userByName(t, "bob")
	db.Instance.Create(&models.Post{UserID: ana.ID, Text: "ana wrote this"})
	db.Instance.Create(&models.Post{UserID: bob.ID, Text: "bob wrote this"})

	doGet(router, "/profile/ana/follow/", leoCookie)

	feed := doGet(router, "/follow/", leoCookie)
	if feed.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", feed.Code)
	}
	body := feed.Body.String()
	if !strings.Contains(body, "ana wrote this") {
		t.Error("followed author's post missing from the feed")
	}
	if strings.Contains(body, "bob wrote this") {
		t.Error("unfollowed author's post leaked into the feed")
	}

	// A user who follows nobody gets an empty feed
	empty := doGet(router, "/follow/", bobCookie)
	if got := strings.Count(empty.Body.String(), "<article>"); got != 0 {
		t.Errorf("non-follower feed has %d posts, want 0", got)
	}
}

func TestProfileFollowingFlag(t *testing.T) {
	router, _ := setupTest(t)
	signupAs(t, router, "ana")
	leoCookie := signupAs(t, router, "leo")

	// Anonymous viewers never see the following state
	anon := doGet(router, "/profile/ana/", "")
	if strings.Contains(anon.Body.String(), "Unfollow") {
		t.Error("anonymous viewer sees a following state")
	}

	before := doGet(router, "/profile/ana/", leoCookie)
	if !strings.Contains(before.Body.String(), "/profile/ana/follow/") {
		t.Error("follow link missing before following")
	}

	doGet(router, "/profile/ana/follow/", leoCookie)
	after := doGet(router, "/profile/ana/", leoCookie)
	if !strings.Contains(after.Body.String(), "/profile/ana/unfollow/") {
		t.Error("unfollow link missing after following")
	}
}
