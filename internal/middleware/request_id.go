package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is the header carrying the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key the ID is stored under.
	ContextKeyRequestID = "request_id"
)

// RequestID attaches a correlation ID to every request. An incoming
// X-Request-ID is trusted and propagated; otherwise a new UUID is generated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
