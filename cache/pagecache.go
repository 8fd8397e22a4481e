package cache

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	body        []byte
	contentType string
	expiresAt   time.Time
}

// PageCache stores whole rendered response bodies for a fixed time.
// Expiry is checked against the injectable clock, so tests can move time
// forward instead of sleeping. Invalidation is expiry or an explicit Flush.
type PageCache struct {
	TTL     time.Duration
	Now     func() time.Time
	entries cmap.ConcurrentMap[string, entry]
}

func New(ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:     ttl,
		Now:     time.Now,
		entries: cmap.New[entry](),
	}
}

func (pc *PageCache) Get(key string) (body []byte, contentType string, ok bool) {
	e, ok := pc.entries.Get(key)
	if !ok {
		return nil, "", false
	}
	if pc.Now().After(e.expiresAt) {
		pc.entries.Remove(key)
		return nil, "", false
	}
	return e.body, e.contentType, true
}

func (pc *PageCache) Set(key, contentType string, body []byte) {
	pc.entries.Set(key, entry{
		body:        body,
		contentType: contentType,
		expiresAt:   pc.Now().Add(pc.TTL),
	})
}

func (pc *PageCache) Flush() {
	pc.entries.Clear()
}

type captureWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// Handler serves GET responses from the cache, keyed by path and query.
// A miss captures the rendered body and stores it when the status is 200.
func (pc *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			key += "?" + c.Request.URL.RawQuery
		}
		if body, contentType, ok := pc.Get(key); ok {
			c.Data(http.StatusOK, contentType, body)
			c.Abort()
			return
		}
		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()
		if c.Writer.Status() == http.StatusOK {
			pc.Set(key, c.Writer.Header().Get("Content-Type"), cw.body)
		}
	}
}
