package venue

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("venue not found")
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNotOwner       = errors.New("venue does not belong to this owner")
	ErrInvalidStatus  = errors.New("invalid approval status")
	ErrNotApproved    = errors.New("venue is not approved")
	ErrCommentMissing = errors.New("rejection requires a comment")
)

// ApprovalStatus tracks the admin review state of a venue.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus validates a status string coming from the API.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return ApprovalStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Venue represents a sports facility owned by a facility owner.
// New venues start as pending and are only publicly listed once approved.
type Venue struct {
	ID           string
	OwnerID      string
	Name         string
	Description  string
	Address      string
	City         string
	Sports       []string
	Amenities    []string
	Status       ApprovalStatus
	AdminComment *string
	RatingAvg    float64
	RatingCount  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	OwnerID  string
	City     string
	Sport    string
	Status   string
	Keyword  string // Search in Name or Address
	Page     int
	PageSize int
}
