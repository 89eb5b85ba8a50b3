package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paambaati/sqlary/internal/shared/apperror"
	"github.com/paambaati/sqlary/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// IssueAPIKey exchanges a username/password pair for the user's API key.
// Invalid credentials and "no key provisioned" are reported separately (401
// vs 404), both with a {username, error} body.
func (h *Handler) IssueAPIKey(c *gin.Context) {
	var req APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.IssueAPIKey(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus, gin.H{
				"username": req.Username,
				"error":    appErr.Message,
			})
			return
		}
		response.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
