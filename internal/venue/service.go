package venue

import (
	"context"
	"strings"
)

// CreateRequest carries data to create a venue.
type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
	Sports      []string
	Amenities   []string
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Sports      []string
	Amenities   []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Venue, error)
	SetApproval(ctx context.Context, id string, status ApprovalStatus, comment *string) (*Venue, error)

	// IsOwnedBy reports whether the venue belongs to the given owner.
	IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	v := &Venue{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Sports:      req.Sports,
		Amenities:   req.Amenities,
		Status:      StatusPending,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.Sports != nil {
		v.Sports = req.Sports
	}
	if req.Amenities != nil {
		v.Amenities = req.Amenities
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) SetApproval(ctx context.Context, id string, status ApprovalStatus, comment *string) (*Venue, error) {
	if status == StatusRejected && (comment == nil || strings.TrimSpace(*comment) == "") {
		return nil, ErrCommentMissing
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetApproval(ctx, id, status, comment); err != nil {
		return nil, err
	}

	v.Status = status
	v.AdminComment = comment
	return v, nil
}

func (s *service) IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return v.OwnerID == ownerID, nil
}
