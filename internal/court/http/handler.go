package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/court"
	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
	"github.com/parth1928/quickcourt-backend/internal/pkg/response"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

func writeCourtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, court.ErrInvalidVenue), errors.Is(err, venue.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
	case errors.Is(err, court.ErrNotVenueOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrEmptyName),
		errors.Is(err, court.ErrInvalidSport),
		errors.Is(err, court.ErrInvalidHours),
		errors.Is(err, court.ErrInvalidRate),
		errors.Is(err, court.ErrInvalidPeak):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "court operation failed"})
	}
}

// ListByVenue returns the courts of a venue.
func (h *Handler) ListByVenue(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := court.Filter{
		VenueID:    venueID,
		Sport:      req.Sport,
		ActiveOnly: req.ActiveOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	courts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// Get returns a single court.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
		return
	}

	ct, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

// Create adds a court to a venue owned by the caller.
func (h *Handler) Create(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue id"})
		return
	}

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ct, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		VenueID:      venueID,
		OwnerID:      auth.GetUserID(c),
		Name:         req.Name,
		Sport:        req.Sport,
		HourlyRate:   req.HourlyRate,
		PeakRate:     req.PeakRate,
		PeakStart:    req.PeakStart,
		PeakEnd:      req.PeakEnd,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		DayOverrides: toDomainOverrides(req.DayOverrides),
	})
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(ct))
}

// Update applies partial changes to a court owned by the caller.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ct, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), court.UpdateRequest{
		Name:         req.Name,
		HourlyRate:   req.HourlyRate,
		PeakRate:     req.PeakRate,
		PeakStart:    req.PeakStart,
		PeakEnd:      req.PeakEnd,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		DayOverrides: toDomainOverrides(req.DayOverrides),
		IsActive:     req.IsActive,
	})
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}
