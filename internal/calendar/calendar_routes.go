package calendar

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
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware())
	events.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "event", "read")
	write := middleware.RBACAuthorize(rbacService, "event", "write")
	{
		events.GET("", read, handler.GetAll)
		events.POST("", middleware.RateLimitByUser(2, 10), write, handler.Create)
		events.PUT("/:id", write, handler.Update)
		events.DELETE("/:id", write, handler.Delete)
	}
}
