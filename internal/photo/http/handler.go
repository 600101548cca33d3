package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/photo"
	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
	"github.com/parth1928/quickcourt-backend/internal/pkg/response"
	"github.com/parth1928/quickcourt-backend/internal/user"
)

type Handler struct {
	photoService photo.Service
}

func NewHandler(photoService photo.Service) *Handler {
	return &Handler{photoService: photoService}
}

// Upload handles POST /venues/:id/photos.
func (h *Handler) Upload(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue ID"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}

	p, err := h.photoService.Upload(c.Request.Context(), req.ID, auth.GetUserID(c), fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, UploadPhotoResponse{
		Message: "photo uploaded successfully",
		Photo:   toPhotoResponse(p),
	})
}

// ListByVenue handles GET /venues/:id/photos.
func (h *Handler) ListByVenue(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue ID"})
		return
	}

	photos, err := h.photoService.ListByVenue(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		resp = append(resp, toPhotoResponse(&photos[i]))
	}
	c.JSON(http.StatusOK, gin.H{"photos": resp})
}

// Serve handles GET /photos/:id, streaming the full-size image.
func (h *Handler) Serve(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo ID"})
		return
	}

	stream, p, err := h.photoService.Download(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing left to report.
		return
	}
}

// ServeThumbnail handles GET /photos/:id/thumbnail.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo ID"})
		return
	}

	stream, p, err := h.photoService.DownloadThumbnail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"_thumb.jpg\"")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

// Delete handles DELETE /photos/:id.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo ID"})
		return
	}

	isAdmin := auth.GetUserRole(c) == string(user.RoleAdmin)
	if err := h.photoService.Delete(c.Request.Context(), req.ID, auth.GetUserID(c), isAdmin); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo deleted successfully"})
}
