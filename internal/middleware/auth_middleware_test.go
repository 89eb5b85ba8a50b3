package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/paambaati/sqlary/internal/middleware"
)

type stubKeys map[string]bool

func (s stubKeys) IsIssuedKey(token string) bool {
	return s[token]
}

func newProtectedRouter(handlerCalled *bool, checks ...middleware.Check) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Authenticate(checks...), func(c *gin.Context) {
		*handlerCalled = true
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticate_VerifyBearer(t *testing.T) {
	keys := stubKeys{"key-1": true}

	t.Run("missing authorization header", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called, middleware.VerifyBearer(keys))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("unknown token", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called, middleware.VerifyBearer(keys))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer key-2")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("header without bearer prefix", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called, middleware.VerifyBearer(keys))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("issued token", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called, middleware.VerifyBearer(keys))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})
}

func TestAuthenticate_AnyCheckPasses(t *testing.T) {
	keys := stubKeys{"key-1": true}

	t.Run("anonymous check authorizes without credentials", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called, middleware.AllowAnonymous(), middleware.VerifyBearer(keys))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("bearer check alone still authorizes", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called, middleware.VerifyBearer(keys), middleware.AllowAnonymous())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("no checks rejects everything", func(t *testing.T) {
		called := false
		r := newProtectedRouter(&called)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})
}
