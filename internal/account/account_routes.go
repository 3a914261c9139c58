package account

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
	accounts := r.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware())
	accounts.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "account", "read")
	create := middleware.RBACAuthorize(rbacService, "account", "create")
	write := middleware.RBACAuthorize(rbacService, "account", "write")
	{
		// static paths first so they never bind as :id
		accounts.GET("/quotations", read, handler.GetQuotations)
		accounts.GET("/paginated", middleware.RateLimitByUser(5, 20), read, handler.GetPaginated)
		accounts.GET("/counts", read, handler.GetCounts)
		accounts.GET("/customers", read, handler.GetCustomers)
		accounts.GET("/leads/active", read, handler.GetActiveLeads)
		accounts.GET("/leads/source/:sourceType", read, handler.GetLeadsBySource)
		accounts.PUT("/bulk-status", middleware.RateLimitByUser(0.5, 2), write, handler.BulkUpdateStatus)

		accounts.GET("", read, handler.GetAll)
		accounts.POST("", middleware.RateLimitByUser(1, 5), create, handler.Create)
		accounts.GET("/:id", read, handler.GetByID)
		accounts.PUT("/:id", middleware.RateLimitByUser(1, 5), write, handler.Update)
		accounts.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), write, handler.Delete)

		accounts.POST("/:id/notes", write, handler.AddNote)

		accounts.GET("/:id/followups", read, handler.GetFollowUps)
		accounts.POST("/:id/followups", write, handler.AddFollowUp)
		accounts.PUT("/:id/followups/:followUpId", write, handler.UpdateFollowUp)
		accounts.DELETE("/:id/followups/:followUpId", write, handler.DeleteFollowUp)
	}
}
