package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/venues/:id/reviews", h.ListByVenue)
	g.POST("/venues/:id/reviews", authMiddleware, h.Create)
}
