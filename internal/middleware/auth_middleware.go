package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/paambaati/sqlary/internal/shared/apperror"
	"github.com/paambaati/sqlary/internal/shared/response"
)

// KeyChecker reports whether a bearer token is one of the issued API keys.
type KeyChecker interface {
	IsIssuedKey(token string) bool
}

// Check is a single authorization predicate evaluated against a request.
type Check func(c *gin.Context) bool

// AllowAnonymous passes every request. Attach it only to routes that must be
// reachable without credentials (the login route).
func AllowAnonymous() Check {
	return func(*gin.Context) bool {
		return true
	}
}

// VerifyBearer passes when the Authorization header carries a bearer token
// that is a member of the issued key set.
func VerifyBearer(keys KeyChecker) Check {
	return func(c *gin.Context) bool {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			return false
		}
		return keys.IsIssuedKey(token)
	}
}

// Authenticate evaluates the attached checks in order; the request proceeds
// if any one of them passes. Otherwise the handler never runs.
func Authenticate(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, check := range checks {
			if check(c) {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing or invalid bearer token", nil)
		c.Abort()
	}
}

// BearerToken returns the bearer token on the request, or "" when absent.
func BearerToken(c *gin.Context) string {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return token
}
