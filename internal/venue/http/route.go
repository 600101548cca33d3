package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/venues")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Owner Routes ===
	group.POST("", authMiddleware, ownerMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, ownerMiddleware, h.Update)
	g.GET("/owner/venues", authMiddleware, ownerMiddleware, h.ListMine)

	// === Admin Routes ===
	adminGroup := g.Group("/admin/venues")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.GET("", h.ListForReview)
		adminGroup.PATCH("/:id/approval", h.SetApproval)
	}
}
