package user

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetByID,
		)

		users.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "user", "write"),
			handler.Update,
		)

		users.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "write"),
			handler.Delete,
		)

		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "write"),
			handler.ToggleStatus,
		)

		// own account only, checked in the handler
		users.PUT("/:id/password",
			middleware.RateLimitByUser(0.2, 2),
			handler.ChangePassword,
		)

		users.PUT("/:id/presence",
			middleware.RateLimitByUser(2, 10),
			handler.UpdatePresence,
		)
	}

	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	teams.Use(middleware.ContextLogger(logger))
	{
		teams.GET("",
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetAllTeams,
		)

		teams.POST("",
			middleware.RBACAuthorize(rbacService, "user", "write"),
			handler.CreateTeam,
		)
	}
}
