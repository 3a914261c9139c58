package quotation

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
	quotations := r.Group("/quotations")
	quotations.Use(middleware.AuthMiddleware())
	quotations.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "quotation", "read")
	write := middleware.RBACAuthorize(rbacService, "quotation", "write")
	{
		quotations.GET("", read, handler.GetAll)
		quotations.POST("", middleware.RateLimitByUser(2, 10), write, handler.Create)
		quotations.GET("/leads/customer", read, handler.GetCustomers)
		quotations.GET("/business/:id", read, handler.GetByBusiness)
		quotations.GET("/:id", read, handler.GetByID)
		quotations.PUT("/:id", write, handler.Update)
		quotations.DELETE("/:id", write, handler.Delete)

		quotations.GET("/:id/followups", read, handler.GetFollowUps)
		quotations.POST("/:id/followups", write, handler.AddFollowUp)
		quotations.PUT("/:id/followups/:followUpId", write, handler.UpdateFollowUp)
		quotations.DELETE("/:id/followups/:followUpId", write, handler.DeleteFollowUp)
	}
}
