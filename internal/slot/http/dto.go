package http

import (
	"time"

	"github.com/parth1928/quickcourt-backend/internal/slot"
)

const dateLayout = "2006-01-02"

// SlotResponse is the shape of slot data returned in API responses.
type SlotResponse struct {
	ID          string  `json:"id"`
	CourtID     string  `json:"court_id"`
	Date        string  `json:"date"` // ISO calendar date
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	Price       int64   `json:"price"`
	BlockReason *string `json:"block_reason,omitempty"`
	BookingID   *string `json:"booking_id,omitempty"`
}

// NewSlotResponse converts domain slot.TimeSlot to SlotResponse used by the API.
func NewSlotResponse(s *slot.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		CourtID:     s.CourtID,
		Date:        s.Date.Format(dateLayout),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      string(s.Status),
		Price:       s.Price,
		BlockReason: s.BlockReason,
		BookingID:   s.BookingID,
	}
}

func newSlotResponses(slots []*slot.TimeSlot) []SlotResponse {
	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}
	return items
}

// ListSlotsRequest defines query parameters for the availability listing.
type ListSlotsRequest struct {
	StartDate   string `form:"start_date" binding:"required"`
	EndDate     string `form:"end_date" binding:"required"`
	GroupByDate bool   `form:"group_by_date"`
}

// Validate performs custom validation for ListSlotsRequest.
func (r *ListSlotsRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		return slot.ErrInvalidRange
	}
	if _, err := time.Parse(dateLayout, r.EndDate); err != nil {
		return slot.ErrInvalidRange
	}
	return nil
}

// ListSlotsResponse is the flat availability listing.
type ListSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// DayGroup holds the slots of one calendar date, for display purposes.
type DayGroup struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// GroupedSlotsResponse is the availability listing grouped by calendar date.
// Grouping is a presentation concern; slot order within a day is preserved.
type GroupedSlotsResponse struct {
	Days []DayGroup `json:"days"`
}

func groupByDate(slots []*slot.TimeSlot) []DayGroup {
	days := []DayGroup{}
	for _, s := range slots {
		date := s.Date.Format(dateLayout)
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, DayGroup{Date: date})
		}
		last := &days[len(days)-1]
		last.Slots = append(last.Slots, NewSlotResponse(s))
	}
	return days
}

// GenerateSlotsRequest defines the payload for slot generation.
type GenerateSlotsRequest struct {
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	ClearExisting bool   `json:"clear_existing"`
}

// Validate performs custom validation for GenerateSlotsRequest.
func (r *GenerateSlotsRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		return slot.ErrInvalidRange
	}
	if _, err := time.Parse(dateLayout, r.EndDate); err != nil {
		return slot.ErrInvalidRange
	}
	return nil
}

// GenerateSlotsResponse reports a generation run.
type GenerateSlotsResponse struct {
	Message         string         `json:"message"`
	Created         int            `json:"created"`
	Updated         int            `json:"updated"`
	SkippedBooked   int            `json:"skipped_booked"`
	SkippedExisting int            `json:"skipped_existing"`
	Slots           []SlotResponse `json:"slots"`
}

// MutateSlotsRequest defines the payload for a bulk status change.
type MutateSlotsRequest struct {
	SlotIDs []string `json:"slot_ids" binding:"required,min=1,dive,uuid"`
	Status  string   `json:"status" binding:"required,oneof=available blocked maintenance"`
	Reason  *string  `json:"reason"`
}

// MutateSlotsResponse reports a bulk status change. Skipped lists the ids of
// booked slots that were left untouched.
type MutateSlotsResponse struct {
	ModifiedCount int      `json:"modified_count"`
	Skipped       []string `json:"skipped"`
}
