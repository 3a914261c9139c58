package alert

import (
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	alerts := r.Group("/alerts")
	alerts.Use(middleware.AuthMiddleware())
	{
		alerts.GET("", handler.List)
		alerts.PUT("/mark-all-read", handler.MarkAllRead)
		alerts.PUT("/:id/read", handler.MarkRead)
		alerts.DELETE("/clear", handler.Clear)
		alerts.DELETE("/:id", handler.Delete)
	}
}
