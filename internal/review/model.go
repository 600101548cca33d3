package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed = errors.New("venue already reviewed by this user")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrVenueNotOpen    = errors.New("venue is not open for reviews")
)

// Review is a user's rating of an approved venue. One review per (venue, user).
type Review struct {
	ID        string
	VenueID   string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing reviews.
type Filter struct {
	VenueID  string
	Page     int
	PageSize int
}
