package middleware

import (
	"net/http"

	"go-crm/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			abortWith(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context")
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			zap.L().Named("middleware.rbac").Error("rbac enforce failed", zap.String("role", role), zap.Error(err))
			abortWith(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"ok": false,
				"error": gin.H{
					"code":     "FORBIDDEN",
					"message":  "You do not have permission to access this resource",
					"required": resource + ":" + action,
				},
			})
			return
		}
		c.Next()
	}
}
