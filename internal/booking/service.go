package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/parth1928/quickcourt-backend/internal/slot"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

// CreateRequest carries data to book a slot.
type CreateRequest struct {
	UserID string
	SlotID string
}

type Service interface {
	// Create occupies an available slot for the user. The slot transition is a
	// single conditional update, so two users racing for the same slot cannot
	// both succeed.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Cancel reverts the booking and releases its slot back to available.
	// This is the only path that takes a slot out of the booked status.
	Cancel(ctx context.Context, id, callerID string, isAdmin bool) (*Booking, error)

	// ListForOwner lists bookings across a venue, for the venue's owner.
	ListForOwner(ctx context.Context, ownerID string, filter Filter) ([]*Booking, int, error)
}

type service struct {
	repo        Repository
	slotService slot.Service
	venService  venue.Service
}

func NewService(repo Repository, slotService slot.Service, venService venue.Service) Service {
	return &service{
		repo:        repo,
		slotService: slotService,
		venService:  venService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// The booking id is minted up front so the slot can carry the reference
	// from the moment it flips to booked.
	bookingID := uuid.NewString()

	sl, err := s.slotService.Book(ctx, req.SlotID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		case errors.Is(err, slot.ErrSlotUnavailable):
			return nil, ErrSlotUnavailable
		default:
			return nil, err
		}
	}

	b := &Booking{
		ID:     bookingID,
		UserID: req.UserID,
		SlotID: req.SlotID,
		Price:  sl.Price,
		Status: StatusConfirmed,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		// Compensate: give the slot back rather than leaving it booked with no
		// booking row behind it.
		_ = s.slotService.Release(ctx, req.SlotID)
		return nil, err
	}

	// Re-read for the joined display fields.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id, callerID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && b.UserID != callerID {
		return nil, ErrPermissionDenied
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.repo.SetStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}

	// Cancellation is the booked -> available path; a failure here leaves the
	// slot booked and is surfaced so the caller can retry.
	if err := s.slotService.Release(ctx, b.SlotID); err != nil && !errors.Is(err, slot.ErrSlotNotBooked) {
		return nil, err
	}

	b.Status = StatusCancelled
	return b, nil
}

func (s *service) ListForOwner(ctx context.Context, ownerID string, filter Filter) ([]*Booking, int, error) {
	owned, err := s.venService.IsOwnedBy(ctx, filter.VenueID, ownerID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	if !owned {
		return nil, 0, ErrPermissionDenied
	}
	return s.repo.List(ctx, filter)
}
