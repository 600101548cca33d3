package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	// Venue-scoped court routes
	g.GET("/venues/:id/courts", h.ListByVenue)
	g.POST("/venues/:id/courts", authMiddleware, ownerMiddleware, h.Create)

	group := g.Group("/courts")
	{
		group.GET("/:id", h.Get)
		group.PATCH("/:id", authMiddleware, ownerMiddleware, h.Update)
	}
}
