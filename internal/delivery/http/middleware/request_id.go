package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID for log correlation. An inbound
// X-Request-ID is honored so upstream proxies can trace through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
