package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/paambaati/sqlary/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, keys middleware.KeyChecker) {
	// The login route carries both checks: anonymous access is allowed, and a
	// request holding a valid bearer token also passes.
	r.POST("/api-key",
		middleware.RateLimitByIP(1, 5),
		middleware.Authenticate(middleware.AllowAnonymous(), middleware.VerifyBearer(keys)),
		handler.IssueAPIKey,
	)
}
