package task

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
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "task", "read")
	write := middleware.RBACAuthorize(rbacService, "task", "write")
	{
		tasks.GET("", read, handler.GetAll)
		tasks.GET("/:id", read, handler.GetByID)
		tasks.POST("", middleware.RateLimitByUser(2, 10), write, handler.Create)
		tasks.PUT("/:id", middleware.RateLimitByUser(2, 10), write, handler.Update)
		tasks.DELETE("/:id", write, handler.Delete)
	}
}
