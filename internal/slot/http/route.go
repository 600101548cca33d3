package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/courts/:id/slots")

	// Availability is public; generation and mutation are owner actions.
	group.GET("", h.List)
	group.POST("", authMiddleware, ownerMiddleware, h.Generate)
	group.PATCH("", authMiddleware, ownerMiddleware, h.Mutate)
}
