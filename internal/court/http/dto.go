package http

import (
	"time"

	"github.com/parth1928/quickcourt-backend/internal/court"
	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
)

// ListCourtsRequest defines query parameters for listing courts of a venue.
type ListCourtsRequest struct {
	request.ListParams
	Sport      string `form:"sport"`
	ActiveOnly bool   `form:"active_only"`
}

// Validate performs custom validation for ListCourtsRequest.
func (r *ListCourtsRequest) Validate() error {
	return nil
}

// DayHoursDTO mirrors court.DayHours on the wire.
type DayHoursDTO struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// CourtResponse is the shape of court data returned in API responses.
type CourtResponse struct {
	ID           string                 `json:"id"`
	VenueID      string                 `json:"venue_id"`
	Name         string                 `json:"name"`
	Sport        string                 `json:"sport"`
	HourlyRate   int64                  `json:"hourly_rate"`
	PeakRate     *int64                 `json:"peak_rate,omitempty"`
	PeakStart    *string                `json:"peak_start,omitempty"`
	PeakEnd      *string                `json:"peak_end,omitempty"`
	OpenTime     string                 `json:"open_time"`
	CloseTime    string                 `json:"close_time"`
	DayOverrides map[string]DayHoursDTO `json:"day_overrides,omitempty"`
	IsActive     bool                   `json:"is_active"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// CourtTag is a brief representation of a court.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCourtResponse converts domain court.Court to CourtResponse used by the API.
func NewCourtResponse(c *court.Court) CourtResponse {
	var overrides map[string]DayHoursDTO
	if len(c.DayOverrides) > 0 {
		overrides = make(map[string]DayHoursDTO, len(c.DayOverrides))
		for day, o := range c.DayOverrides {
			overrides[day] = DayHoursDTO{Closed: o.Closed, Open: o.Open, Close: o.Close}
		}
	}

	return CourtResponse{
		ID:           c.ID,
		VenueID:      c.VenueID,
		Name:         c.Name,
		Sport:        c.Sport,
		HourlyRate:   c.HourlyRate,
		PeakRate:     c.PeakRate,
		PeakStart:    c.PeakStart,
		PeakEnd:      c.PeakEnd,
		OpenTime:     c.OpenTime,
		CloseTime:    c.CloseTime,
		DayOverrides: overrides,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CreateCourtRequest defines the payload for creating a court.
type CreateCourtRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Sport        string                 `json:"sport" binding:"required"`
	HourlyRate   int64                  `json:"hourly_rate" binding:"required,min=1"`
	PeakRate     *int64                 `json:"peak_rate" binding:"omitempty,min=1"`
	PeakStart    *string                `json:"peak_start"`
	PeakEnd      *string                `json:"peak_end"`
	OpenTime     string                 `json:"open_time" binding:"required"`
	CloseTime    string                 `json:"close_time" binding:"required"`
	DayOverrides map[string]DayHoursDTO `json:"day_overrides"`
}

// Validate performs custom validation for CreateCourtRequest.
func (r *CreateCourtRequest) Validate() error {
	return nil
}

// UpdateCourtRequest defines the payload for partial court updates.
type UpdateCourtRequest struct {
	Name         *string                `json:"name"`
	HourlyRate   *int64                 `json:"hourly_rate" binding:"omitempty,min=1"`
	PeakRate     *int64                 `json:"peak_rate" binding:"omitempty,min=1"`
	PeakStart    *string                `json:"peak_start"`
	PeakEnd      *string                `json:"peak_end"`
	OpenTime     *string                `json:"open_time"`
	CloseTime    *string                `json:"close_time"`
	DayOverrides map[string]DayHoursDTO `json:"day_overrides"`
	IsActive     *bool                  `json:"is_active"`
}

// Validate performs custom validation for UpdateCourtRequest.
func (r *UpdateCourtRequest) Validate() error {
	return nil
}

func toDomainOverrides(in map[string]DayHoursDTO) map[string]court.DayHours {
	if in == nil {
		return nil
	}
	out := make(map[string]court.DayHours, len(in))
	for day, o := range in {
		out[day] = court.DayHours{Closed: o.Closed, Open: o.Open, Close: o.Close}
	}
	return out
}
