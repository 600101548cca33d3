package court

import (
	"context"
	"strings"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/venue"
)

// CreateRequest carries data to create a court.
type CreateRequest struct {
	VenueID      string
	OwnerID      string
	Name         string
	Sport        string
	HourlyRate   int64
	PeakRate     *int64
	PeakStart    *string
	PeakEnd      *string
	OpenTime     string
	CloseTime    string
	DayOverrides map[string]DayHours
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name         *string
	HourlyRate   *int64
	PeakRate     *int64
	PeakStart    *string
	PeakEnd      *string
	OpenTime     *string
	CloseTime    *string
	DayOverrides map[string]DayHours
	IsActive     *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Court, error)

	// IsOwnedBy reports whether the court's venue belongs to the given owner.
	IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error)
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

// parseClock validates an HH:mm string.
func parseClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func validateHours(open, close string) error {
	if !parseClock(open) || !parseClock(close) || open >= close {
		return ErrInvalidHours
	}
	return nil
}

func validPeakWindow(start, end *string) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return ErrInvalidPeak
	}
	if !parseClock(*start) || !parseClock(*end) || *start >= *end {
		return ErrInvalidPeak
	}
	return nil
}

func validateOverrides(overrides map[string]DayHours) error {
	for day, o := range overrides {
		switch day {
		case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		default:
			return ErrInvalidHours
		}
		if o.Closed {
			continue
		}
		if err := validateHours(o.Open, o.Close); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.VenueID == "" {
		return nil, ErrInvalidVenue
	}
	if req.HourlyRate <= 0 {
		return nil, ErrInvalidRate
	}
	if req.PeakRate != nil && *req.PeakRate <= 0 {
		return nil, ErrInvalidRate
	}

	validSport := false
	for _, sport := range ValidSports {
		if req.Sport == sport {
			validSport = true
			break
		}
	}
	if !validSport {
		return nil, ErrInvalidSport
	}

	if err := validateHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}
	if err := validPeakWindow(req.PeakStart, req.PeakEnd); err != nil {
		return nil, err
	}
	if err := validateOverrides(req.DayOverrides); err != nil {
		return nil, err
	}

	// Validation: the venue must exist and belong to the caller.
	owned, err := s.venService.IsOwnedBy(ctx, req.VenueID, req.OwnerID)
	if err != nil {
		return nil, ErrInvalidVenue
	}
	if !owned {
		return nil, ErrNotVenueOwner
	}

	c := &Court{
		VenueID:      req.VenueID,
		Name:         strings.TrimSpace(req.Name),
		Sport:        req.Sport,
		HourlyRate:   req.HourlyRate,
		PeakRate:     req.PeakRate,
		PeakStart:    req.PeakStart,
		PeakEnd:      req.PeakEnd,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		DayOverrides: req.DayOverrides,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owned, err := s.venService.IsOwnedBy(ctx, c.VenueID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotVenueOwner
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			return nil, ErrInvalidRate
		}
		c.HourlyRate = *req.HourlyRate
	}
	if req.PeakRate != nil {
		if *req.PeakRate <= 0 {
			return nil, ErrInvalidRate
		}
		c.PeakRate = req.PeakRate
	}
	if req.PeakStart != nil {
		c.PeakStart = req.PeakStart
	}
	if req.PeakEnd != nil {
		c.PeakEnd = req.PeakEnd
	}
	if err := validPeakWindow(c.PeakStart, c.PeakEnd); err != nil {
		return nil, err
	}

	if req.OpenTime != nil {
		c.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		c.CloseTime = *req.CloseTime
	}
	if err := validateHours(c.OpenTime, c.CloseTime); err != nil {
		return nil, err
	}

	if req.DayOverrides != nil {
		if err := validateOverrides(req.DayOverrides); err != nil {
			return nil, err
		}
		c.DayOverrides = req.DayOverrides
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return s.venService.IsOwnedBy(ctx, c.VenueID, ownerID)
}
