package subscription

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
	subs := r.Group("/subscriptions")
	subs.Use(middleware.AuthMiddleware())
	subs.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "subscription", "read")
	write := middleware.RBACAuthorize(rbacService, "subscription", "write")
	{
		subs.POST("", middleware.RateLimitByUser(1, 5), middleware.RBACAuthorize(rbacService, "subscription", "create"), handler.Create)
		subs.GET("/all", read, handler.GetAll)
		subs.GET("/business/:id", read, handler.GetByBusiness)
		subs.GET("/:id/details", read, handler.GetDetails)
		subs.PUT("/upgrade/:subscriptionId", middleware.RateLimitByUser(1, 5), write, handler.UpgradePlan)
		subs.PUT("/cancel/:id", middleware.RateLimitByUser(0.5, 2), write, handler.Cancel)
	}
}
