package rbac

import (
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)

		manage := group.Group("")
		manage.Use(middleware.RoleMiddleware("Superadmin", "Admin"))
		manage.GET("/permissions", handler.ListPermissions)
		manage.POST("/permissions", handler.Grant)
		manage.DELETE("/permissions", handler.Revoke)
	}
}
