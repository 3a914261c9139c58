package project

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
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "project", "read")
	write := middleware.RBACAuthorize(rbacService, "project", "write")
	{
		projects.GET("/stats", read, handler.GetStats)

		projects.GET("", read, handler.GetAll)
		projects.POST("", middleware.RateLimitByUser(1, 5), write, handler.Create)
		projects.GET("/:id", read, handler.GetByID)
		projects.PUT("/:id", middleware.RateLimitByUser(1, 5), write, handler.Update)
		projects.DELETE("/:id", write, handler.Delete)

		projects.POST("/:id/notes", write, handler.AddNote)
		projects.DELETE("/:id/notes/:noteId", write, handler.DeleteNote)
		projects.POST("/:id/attachments/presign", middleware.RateLimitByUser(1, 5), write, handler.PresignAttachment)
	}
}
