package middleware

import (
	"errors"
	"net/http"

	"red-remodels-backend/internal/delivery/http/response"
	"red-remodels-backend/pkg/apperror"
	"red-remodels-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// The wrapped cause stays server-side; the caller only
				// ever sees the safe message.
				if appErr.Err != nil {
					logger.Log.Error("Request failed",
						"status", appErr.Code,
						"message", appErr.Message,
						"error", appErr.Err,
						"path", c.Request.URL.Path,
					)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("Unhandled error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
