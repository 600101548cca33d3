package review

import (
	"context"
	"errors"
	"strings"

	"github.com/parth1928/quickcourt-backend/internal/venue"
)

// CreateRequest carries data to create a review.
type CreateRequest struct {
	VenueID string
	UserID  string
	Rating  int
	Comment string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	ListByVenue(ctx context.Context, filter Filter) ([]*Review, int, error)
}

type service struct {
	repo       Repository
	venService venue.Service
}

func NewService(repo Repository, venService venue.Service) Service {
	return &service{
		repo:       repo,
		venService: venService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	v, err := s.venService.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if v.Status != venue.StatusApproved {
		return nil, ErrVenueNotOpen
	}

	rv := &Review{
		VenueID: req.VenueID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListByVenue(ctx context.Context, filter Filter) ([]*Review, int, error) {
	return s.repo.List(ctx, filter)
}
