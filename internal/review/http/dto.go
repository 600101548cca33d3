package http

import (
	"time"

	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
	"github.com/parth1928/quickcourt-backend/internal/review"
)

// ListReviewsRequest defines query parameters for listing venue reviews.
type ListReviewsRequest struct {
	request.ListParams
}

// Validate performs custom validation for ListReviewsRequest.
func (r *ListReviewsRequest) Validate() error {
	return nil
}

// ReviewResponse is the shape of review data returned in API responses.
type ReviewResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReviewResponse converts domain review.Review to ReviewResponse.
func NewReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        rv.ID,
		VenueID:   rv.VenueID,
		UserID:    rv.UserID,
		UserName:  rv.UserName,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
}

// CreateReviewRequest defines the payload for creating a review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Validate performs custom validation for CreateReviewRequest.
func (r *CreateReviewRequest) Validate() error {
	return nil
}
