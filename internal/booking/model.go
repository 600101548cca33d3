package booking

import (
	"net/http"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotNotFound     = apperror.New(http.StatusNotFound, "slot not found")
	ErrSlotUnavailable  = apperror.New(http.StatusConflict, "slot is no longer available")
	ErrAlreadyCancelled = apperror.New(http.StatusConflict, "booking is already cancelled")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking occupies exactly one time slot. The price is resolved from the slot
// at booking time and does not change if the court's rates change later.
type Booking struct {
	ID        string
	UserID    string
	UserName  string
	SlotID    string
	CourtID   string
	CourtName string
	VenueID   string
	VenueName string
	Date      time.Time
	StartTime string
	EndTime   string
	Price     int64
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID   string
	VenueID  string
	CourtID  string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
