package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", authMiddleware, h.Me)
	}

	// === Admin Routes ===
	adminGroup := g.Group("/users")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.GET("", h.List)
		adminGroup.PATCH("/:id/status", h.SetStatus)
	}
}
