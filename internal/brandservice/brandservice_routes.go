package brandservice

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
	services := r.Group("/services")
	services.Use(middleware.AuthMiddleware())
	services.Use(middleware.ContextLogger(logger))
	{
		services.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "service", "read"),
			handler.GetAll,
		)

		services.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "service", "create"),
			handler.Create,
		)

		services.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "service", "read"),
			handler.GetByID,
		)

		services.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "service", "write"),
			handler.Update,
		)

		services.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "service", "write"),
			handler.Delete,
		)

		services.PUT("/:id/notes",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "service", "write"),
			handler.UpdateNotes,
		)

		services.POST("/:id/plans",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "service", "write"),
			handler.AddPlan,
		)

		services.PUT("/:id/plans/:planId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "service", "write"),
			handler.UpdatePlan,
		)

		services.DELETE("/:id/plans/:planId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "service", "write"),
			handler.DeletePlan,
		)
	}
}
