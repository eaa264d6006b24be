package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"red-remodels-backend/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(limit int, window time.Duration, prefix string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := middleware.ContactRateLimitConfig(limit, window)
	cfg.KeyPrefix = prefix // isolate counters per test
	r := gin.New()
	r.POST("/api/contact", middleware.RateLimitMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func post(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = ip + ":51234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitCeiling(t *testing.T) {
	r := limitedRouter(3, time.Minute, "rl:test:ceiling:")

	for i := 0; i < 3; i++ {
		w := post(r, "10.0.0.1")
		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("request %d should be admitted", i+1))
	}

	w := post(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests. Please try again in a moment.")
	assert.Contains(t, w.Body.String(), `"ok":false`)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitPerIdentity(t *testing.T) {
	r := limitedRouter(1, time.Minute, "rl:test:identity:")

	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1").Code)

	// A different client in the same window is unaffected.
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.2").Code)
}

func TestRateLimitWindowReset(t *testing.T) {
	r := limitedRouter(1, 50*time.Millisecond, "rl:test:reset:")

	assert.Equal(t, http.StatusOK, post(r, "10.0.0.3").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.3").Code)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.3").Code)
}

func TestRateLimitHeaders(t *testing.T) {
	r := limitedRouter(5, time.Minute, "rl:test:headers:")

	w := post(r, "10.0.0.4")
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}
