package worksession

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
	sessions := r.Group("/work-sessions")
	sessions.Use(middleware.AuthMiddleware())
	sessions.Use(middleware.ContextLogger(logger))

	read := middleware.RBACAuthorize(rbacService, "work_session", "read")
	write := middleware.RBACAuthorize(rbacService, "work_session", "write")
	{
		sessions.POST("/start", middleware.RateLimitByUser(1, 3), write, handler.Start)
		sessions.POST("/stop", middleware.RateLimitByUser(1, 3), write, handler.Stop)
		sessions.POST("/eod", write, handler.SaveEOD)

		sessions.GET("/today/:userId", read, handler.TodayForUser)
		sessions.GET("/today", read, handler.TodayAll)
		sessions.GET("/range", read, handler.Range)
		sessions.GET("/attendance/:userId", read, handler.MonthlyAttendance)
	}
}
