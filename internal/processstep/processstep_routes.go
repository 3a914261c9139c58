package processstep

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
	steps := r.Group("/process-steps")
	steps.Use(middleware.AuthMiddleware())
	steps.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "process_step", "read")
	write := middleware.RBACAuthorize(rbacService, "process_step", "write")
	{
		steps.GET("", read, handler.GetGrouped)
		steps.POST("", write, handler.CreateGroup)
		steps.DELETE("/step/:id", write, handler.DeleteStep)
		steps.PUT("/:stepType", write, handler.ReplaceGroup)
		steps.DELETE("/:stepType", write, handler.DeleteGroup)
	}
}
