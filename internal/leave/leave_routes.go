package leave

import (
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.POST("", middleware.RateLimitByUser(1, 3), middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Apply)
		leaves.GET("/my/:userId", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetMine)
		leaves.GET("/balance/:userId", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetBalance)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.GetPending)
		leaves.GET("/all", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.GetAll)
		leaves.PATCH("/:id/status", middleware.RateLimitByUser(2, 5), middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.UpdateStatus)
	}
}
