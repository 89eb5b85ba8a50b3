package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/paambaati/sqlary/internal/middleware"
)

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/limited", middleware.RateLimitByIP(1, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitByToken(t *testing.T) {
	r := gin.New()
	r.GET("/limited", middleware.RateLimitByToken(1, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("throttles per token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer key-1")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("other tokens keep their own bucket", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer key-2")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("requests without a token are not throttled here", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
