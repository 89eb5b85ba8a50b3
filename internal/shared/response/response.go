package response

import (
	"github.com/gin-gonic/gin"

	"github.com/paambaati/sqlary/internal/shared/apperror"
)

// Success bodies in this API are written bare by their handlers; only error
// bodies share a common shape.

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, gin.H{
		"error": map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// ValidationError maps a binding error and writes it as a 4xx response.
func ValidationError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
}

// AppError writes an *apperror.AppError; unrecognized errors fall back to a
// 500 so internal details never leak to the caller.
func AppError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	Error(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message, nil)
}
