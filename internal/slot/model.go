package slot

import (
	"net/http"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrCourtNotFound    = apperror.New(http.StatusNotFound, "court not found")
	ErrSlotNotFound     = apperror.New(http.StatusNotFound, "slot not found")
	ErrCourtInactive    = apperror.New(http.StatusBadRequest, "court is deactivated")
	ErrInvalidRange     = apperror.New(http.StatusBadRequest, "end date must not precede start date")
	ErrRangeTooLarge    = apperror.New(http.StatusBadRequest, "date range exceeds the generation limit")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid slot status")
	ErrReasonRequired   = apperror.New(http.StatusBadRequest, "reason is required for blocked or maintenance slots")
	ErrSlotUnavailable  = apperror.New(http.StatusConflict, "slot is not available")
	ErrSlotNotBooked    = apperror.New(http.StatusConflict, "slot is not booked")
	ErrWrongCourt       = apperror.New(http.StatusBadRequest, "slot does not belong to this court")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Status is the lifecycle state of a time slot.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusBlocked     Status = "blocked"
	StatusMaintenance Status = "maintenance"
)

// ParseStatus validates a status string coming from the API.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusBooked, StatusBlocked, StatusMaintenance:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// MutableTargets lists the statuses an owner bulk mutation may set.
// Transitions to booked are owned by the booking flow, never by bulk mutation.
func (s Status) IsMutableTarget() bool {
	switch s {
	case StatusAvailable, StatusBlocked, StatusMaintenance:
		return true
	default:
		return false
	}
}

// NeedsReason reports whether the status requires a block reason.
func (s Status) NeedsReason() bool {
	return s == StatusBlocked || s == StatusMaintenance
}

// TimeSlot represents one bookable interval for one court on one calendar date.
// The (CourtID, Date, StartTime) tuple is unique; slots are never hard-deleted.
type TimeSlot struct {
	ID          string
	CourtID     string
	Date        time.Time // calendar day, midnight UTC
	StartTime   string    // HH:mm
	EndTime     string    // HH:mm
	Status      Status
	Price       int64
	BlockReason *string
	BookingID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Key identifies a slot by its uniqueness tuple.
func (s *TimeSlot) Key() string {
	return s.CourtID + "|" + s.Date.Format("2006-01-02") + "|" + s.StartTime
}

// GenerateResult reports what a generation run did, per candidate slot.
type GenerateResult struct {
	Created         int
	Updated         int
	SkippedBooked   int
	SkippedExisting int
	Slots           []*TimeSlot
}

// MutateResult reports the outcome of a bulk status change.
// Skipped holds ids of booked slots that were excluded from the mutation.
type MutateResult struct {
	ModifiedCount int
	Skipped       []string
}
