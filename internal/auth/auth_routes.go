package auth

import (
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Login is throttled hardest: roughly one attempt every 12s per IP after a burst of 5.
const (
	loginRate     = 0.08
	refreshRate   = 0.5
	registerRate  = 0.1
	profileRate   = 2
	defaultBurst  = 5
	registerBurst = 3
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	g := r.Group("/auth")

	g.POST("/login", middleware.RateLimitByIP(loginRate, defaultBurst), handler.Login)
	g.POST("/register", middleware.RateLimitByIP(registerRate, registerBurst), handler.Register)
	g.POST("/refresh", middleware.RateLimitByIP(refreshRate, defaultBurst), handler.RefreshToken)
	g.POST("/logout", handler.Logout)

	g.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(profileRate, defaultBurst), handler.Me)
}
