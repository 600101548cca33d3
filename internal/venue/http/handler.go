package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
	"github.com/parth1928/quickcourt-backend/internal/pkg/response"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

type Handler struct {
	service venue.Service
}

func NewHandler(service venue.Service) *Handler {
	return &Handler{service: service}
}

// List returns approved venues for the public browse page.
func (h *Handler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		City:     req.City,
		Sport:    req.Sport,
		Keyword:  req.Keyword,
		Status:   string(venue.StatusApproved),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// ListMine returns the authenticated owner's venues, regardless of approval status.
func (h *Handler) ListMine(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		OwnerID:  auth.GetUserID(c),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// Get returns a single venue.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get venue"})
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

// Create registers a new venue owned by the authenticated facility owner.
func (h *Handler) Create(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), venue.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Sports:      req.Sports,
		Amenities:   req.Amenities,
	})
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create venue"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

// Update applies partial changes to a venue owned by the caller.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	v, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), venue.UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Sports:      req.Sports,
		Amenities:   req.Amenities,
	})
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, venue.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update venue"})
		}
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

// ListForReview returns venues by approval status for the admin review queue.
func (h *Handler) ListForReview(c *gin.Context) {
	var req ListPendingVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = string(venue.StatusPending)
	}

	filter := venue.Filter{
		Status:   status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// SetApproval records the admin's approve/reject decision for a venue.
func (h *Handler) SetApproval(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	status, err := venue.ParseApprovalStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.service.SetApproval(c.Request.Context(), uri.ID, status, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrCommentMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update approval"})
		}
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}
