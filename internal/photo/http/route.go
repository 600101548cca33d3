package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers venue photo routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	g.GET("/venues/:id/photos", h.ListByVenue)
	g.POST("/venues/:id/photos", authMiddleware, ownerMiddleware, h.Upload)

	g.GET("/photos/:id", h.Serve)
	g.GET("/photos/:id/thumbnail", h.ServeThumbnail)
	g.DELETE("/photos/:id", authMiddleware, h.Delete)
}
