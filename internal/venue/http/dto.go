package http

import (
	"time"

	"github.com/parth1928/quickcourt-backend/internal/pkg/request"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

// ListVenuesRequest defines query parameters for the public venue listing.
type ListVenuesRequest struct {
	request.ListParams
	City    string `form:"city"`
	Sport   string `form:"sport"`
	Keyword string `form:"q"`
}

// Validate performs custom validation for ListVenuesRequest.
func (r *ListVenuesRequest) Validate() error {
	return nil
}

// ListPendingVenuesRequest defines query parameters for the admin review queue.
type ListPendingVenuesRequest struct {
	request.ListParams
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// Validate performs custom validation for ListPendingVenuesRequest.
func (r *ListPendingVenuesRequest) Validate() error {
	return nil
}

// VenueResponse is the shape of venue data returned in API responses.
type VenueResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Sports       []string  `json:"sports"`
	Amenities    []string  `json:"amenities"`
	Status       string    `json:"status"`
	AdminComment *string   `json:"admin_comment,omitempty"`
	RatingAvg    float64   `json:"rating_avg"`
	RatingCount  int       `json:"rating_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VenueTag is a brief representation of a venue.
type VenueTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewVenueResponse converts domain venue.Venue to VenueResponse used by the API.
func NewVenueResponse(v *venue.Venue) VenueResponse {
	sports := v.Sports
	if sports == nil {
		sports = []string{}
	}
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return VenueResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Name:         v.Name,
		Description:  v.Description,
		Address:      v.Address,
		City:         v.City,
		Sports:       sports,
		Amenities:    amenities,
		Status:       string(v.Status),
		AdminComment: v.AdminComment,
		RatingAvg:    v.RatingAvg,
		RatingCount:  v.RatingCount,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// CreateVenueRequest defines the payload for creating a venue.
type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Sports      []string `json:"sports"`
	Amenities   []string `json:"amenities"`
}

// Validate performs custom validation for CreateVenueRequest.
func (r *CreateVenueRequest) Validate() error {
	return nil
}

// UpdateVenueRequest defines the payload for partial venue updates.
type UpdateVenueRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Sports      []string `json:"sports"`
	Amenities   []string `json:"amenities"`
}

// Validate performs custom validation for UpdateVenueRequest.
func (r *UpdateVenueRequest) Validate() error {
	return nil
}

// SetApprovalRequest defines the payload for the admin approval decision.
type SetApprovalRequest struct {
	Status  string  `json:"status" binding:"required,oneof=approved rejected"`
	Comment *string `json:"comment"`
}

// Validate performs custom validation for SetApprovalRequest.
func (r *SetApprovalRequest) Validate() error {
	return nil
}
