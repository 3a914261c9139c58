package middleware

import (
	"go-crm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	// outbox_events.request_id is VARCHAR(64)
	maxRequestIDLen = 64
)

// requestID keeps a caller supplied id when it fits, otherwise mints one.
func requestID(c *gin.Context) string {
	if rid := c.GetString("request_id"); rid != "" {
		return rid
	}
	if rid := c.GetHeader(requestIDHeader); rid != "" && len(rid) <= maxRequestIDLen {
		return rid
	}
	return uuid.NewString()
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestID(c)
		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}
