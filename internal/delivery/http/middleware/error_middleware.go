package middleware

import (
	"errors"
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors pushed onto the gin context as the standard
// envelope. Unknown errors are logged server-side and returned as a
// generic 500 so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
