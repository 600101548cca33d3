package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/parth1928/quickcourt-backend/internal/auth"
	"github.com/parth1928/quickcourt-backend/internal/court"
	"github.com/parth1928/quickcourt-backend/internal/pkg/response"
	"github.com/parth1928/quickcourt-backend/internal/slot"
)

type Handler struct {
	service      slot.Service
	courtService court.Service
}

func NewHandler(service slot.Service, courtService court.Service) *Handler {
	return &Handler{
		service:      service,
		courtService: courtService,
	}
}

func bindCourtID(c *gin.Context) (string, bool) {
	courtID := c.Param("id")
	if _, err := uuid.Parse(courtID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
		return "", false
	}
	return courtID, true
}

// List serves the availability view for a court and date range.
func (h *Handler) List(c *gin.Context) {
	courtID, ok := bindCourtID(c)
	if !ok {
		return
	}

	var req ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()

	// The reader itself treats an unknown court as an empty result; court
	// existence is validated here at the boundary.
	if _, err := h.courtService.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, court.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve court"})
		return
	}

	from, _ := time.Parse(dateLayout, req.StartDate)
	to, _ := time.Parse(dateLayout, req.EndDate)

	slots, err := h.service.ListRange(ctx, courtID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.GroupByDate {
		c.JSON(http.StatusOK, GroupedSlotsResponse{Days: groupByDate(slots)})
		return
	}
	c.JSON(http.StatusOK, ListSlotsResponse{Slots: newSlotResponses(slots)})
}

// Generate runs slot generation for a court over a date range.
func (h *Handler) Generate(c *gin.Context) {
	courtID, ok := bindCourtID(c)
	if !ok {
		return
	}

	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	from, _ := time.Parse(dateLayout, req.StartDate)
	to, _ := time.Parse(dateLayout, req.EndDate)

	result, err := h.service.Generate(c.Request.Context(), slot.GenerateRequest{
		CourtID:       courtID,
		OwnerID:       auth.GetUserID(c),
		StartDate:     from,
		EndDate:       to,
		ClearExisting: req.ClearExisting,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateSlotsResponse{
		Message:         "slots generated",
		Created:         result.Created,
		Updated:         result.Updated,
		SkippedBooked:   result.SkippedBooked,
		SkippedExisting: result.SkippedExisting,
		Slots:           newSlotResponses(result.Slots),
	})
}

// Mutate applies a bulk status change to slots of a court.
func (h *Handler) Mutate(c *gin.Context) {
	courtID, ok := bindCourtID(c)
	if !ok {
		return
	}

	var req MutateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	status, err := slot.ParseStatus(req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.SetStatusBulk(c.Request.Context(), slot.MutateRequest{
		CourtID: courtID,
		OwnerID: auth.GetUserID(c),
		SlotIDs: req.SlotIDs,
		Status:  status,
		Reason:  req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, MutateSlotsResponse{
		ModifiedCount: result.ModifiedCount,
		Skipped:       result.Skipped,
	})
}
