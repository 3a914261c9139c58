package notification

import (
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	n := r.Group("/notifications")
	n.Use(middleware.AuthMiddleware())
	{
		n.GET("/:userId", handler.Latest)
		n.POST("/read", handler.MarkRead)
		n.DELETE("/:notificationId", handler.Delete)
	}
}
