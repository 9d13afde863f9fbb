package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-prodigy-backend/pkg/apperror"
)

// DeliveryResult is the sole externally observable outcome of a submission
// attempt; both success and failure responses use this shape.
type DeliveryResult struct {
	Success          bool                      `json:"success"`
	Message          string                    `json:"message,omitempty"`
	Timestamp        string                    `json:"timestamp,omitempty"`
	Error            string                    `json:"error,omitempty"`
	ValidationErrors []apperror.FieldViolation `json:"validationErrors,omitempty"`
	Details          string                    `json:"details,omitempty"`
}

// Success sends the fixed acknowledgement with an ISO-8601 timestamp.
func Success(c *gin.Context, message string, timestamp time.Time) {
	c.JSON(http.StatusOK, DeliveryResult{
		Success:   true,
		Message:   message,
		Timestamp: timestamp.UTC().Format(time.RFC3339),
	})
}

// Error sends a structured failure. Details must already be gated by
// environment; this function writes whatever it is given.
func Error(c *gin.Context, code int, message string, violations []apperror.FieldViolation, details string) {
	c.JSON(code, DeliveryResult{
		Success:          false,
		Error:            message,
		ValidationErrors: violations,
		Details:          details,
	})
}
