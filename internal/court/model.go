package court

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("court not found")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrInvalidSport  = errors.New("invalid sport type")
	ErrInvalidVenue  = errors.New("invalid venue_id")
	ErrInvalidHours  = errors.New("invalid operating hours")
	ErrInvalidRate   = errors.New("hourly rate must be positive")
	ErrInvalidPeak   = errors.New("invalid peak window")
	ErrCourtInactive = errors.New("court is deactivated")
	ErrNotVenueOwner = errors.New("court does not belong to this owner")
)

// ValidSports lists the sport types a court can be created with.
var ValidSports = []string{
	"badminton",
	"tennis",
	"table_tennis",
	"squash",
	"basketball",
	"football",
	"cricket",
	"pickleball",
}

// DayHours overrides the default operating hours for one weekday.
// A closed day has Closed set and empty Open/Close.
type DayHours struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`  // HH:mm
	Close  string `json:"close,omitempty"` // HH:mm
}

// Court represents a bookable unit within a venue.
// Courts are never deleted, only deactivated, so historical slots stay resolvable.
type Court struct {
	ID           string
	VenueID      string
	Name         string
	Sport        string
	HourlyRate   int64  // standard price per one-hour slot
	PeakRate     *int64 // price inside the peak window; nil falls back to HourlyRate
	PeakStart    *string
	PeakEnd      *string
	OpenTime     string // HH:mm
	CloseTime    string // HH:mm
	DayOverrides map[string]DayHours // keyed by lowercase weekday name
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HoursFor resolves the operating hours for a calendar date,
// applying the weekday override when one exists.
// The second return value is false when the court is closed that day.
func (c *Court) HoursFor(date time.Time) (open, close string, ok bool) {
	weekday := weekdayKey(date.Weekday())
	if o, found := c.DayOverrides[weekday]; found {
		if o.Closed {
			return "", "", false
		}
		return o.Open, o.Close, true
	}
	return c.OpenTime, c.CloseTime, true
}

func weekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// Filter defines parameters for listing courts.
type Filter struct {
	VenueID    string
	Sport      string
	ActiveOnly bool
	Page       int
	PageSize   int
}
