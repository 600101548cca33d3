package http

import (
	"time"

	"github.com/parth1928/quickcourt-backend/internal/booking"
	courtHttp "github.com/parth1928/quickcourt-backend/internal/court/http"
	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
	userHttp "github.com/parth1928/quickcourt-backend/internal/user/http"
	venueHttp "github.com/parth1928/quickcourt-backend/internal/venue/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	Status   string     `form:"status" binding:"omitempty,oneof=confirmed cancelled"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	return nil
}

// BookingResponse is the shape of booking data returned in API responses.
type BookingResponse struct {
	ID        string              `json:"id"`
	User      userHttp.UserTag    `json:"user"`
	SlotID    string              `json:"slot_id"`
	Court     courtHttp.CourtTag  `json:"court"`
	Venue     venueHttp.VenueTag  `json:"venue"`
	Date      string              `json:"date"`
	StartTime string              `json:"start_time"`
	EndTime   string              `json:"end_time"`
	Price     int64               `json:"price"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewBookingResponse converts domain booking.Booking to BookingResponse.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		User:      userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		SlotID:    b.SlotID,
		Court:     courtHttp.CourtTag{ID: b.CourtID, Name: b.CourtName},
		Venue:     venueHttp.VenueTag{ID: b.VenueID, Name: b.VenueName},
		Date:      b.Date.Format("2006-01-02"),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Price:     b.Price,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// CreateBookingRequest defines the payload for booking a slot.
type CreateBookingRequest struct {
	SlotID string `json:"slot_id" binding:"required,uuid"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	return nil
}
