package middleware

import (
	"go-crm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a logger scoped to the request id and, once authenticated, the user id and role.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestID(c)
		c.Set("request_id", rid)
		c.Header(requestIDHeader, rid)

		fields := []zap.Field{zap.String("request_id", rid)}
		if uid := c.GetString("user_id_validated"); uid != "" {
			fields = append(fields, zap.String("user_id", uid), zap.String("role", c.GetString("role")))
		}

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
