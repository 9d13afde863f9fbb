package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-prodigy-backend/config"
	"go-prodigy-backend/internal/delivery/http/response"
	"go-prodigy-backend/pkg/apperror"
	"go-prodigy-backend/pkg/logger"
)

// ErrorHandler converts errors attached to the context into structured
// DeliveryResult responses. Causes are logged server-side; diagnostic detail
// reaches the body only outside production, and credentials never do.
func ErrorHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			details := ""
			if appErr.Err != nil {
				logger.Log.Error("Request failed",
					"status", appErr.Code,
					"error", appErr.Err,
					"request_id", requestID,
				)
				if !cfg.IsProduction() {
					details = appErr.Err.Error()
				}
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Violations, details)
			return
		}

		// Unclassified fault: log the cause, answer with a generic structured
		// body, never a raw error in production.
		logger.Log.Error("Unhandled error", "error", err, "request_id", requestID)
		details := ""
		if !cfg.IsProduction() {
			details = err.Error()
		}
		response.Error(c, http.StatusInternalServerError,
			"Something went wrong. Please try again later.", nil, details)
	}
}
