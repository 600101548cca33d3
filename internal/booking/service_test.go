package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/parth1928/quickcourt-backend/internal/slot"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

type fakeRepository struct {
	bookings map[string]*Booking
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: map[string]*Booking{}}
}

func (r *fakeRepository) Create(ctx context.Context, b *Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.VenueID != "" && b.VenueID != filter.VenueID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepository) SetStatus(ctx context.Context, id string, status Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

// fakeSlotService tracks a single slot's lifecycle.
type fakeSlotService struct {
	slotID    string
	status    slot.Status
	price     int64
	bookCalls int
}

func (f *fakeSlotService) Book(ctx context.Context, slotID, bookingID string) (*slot.TimeSlot, error) {
	f.bookCalls++
	if slotID != f.slotID {
		return nil, slot.ErrSlotUnavailable
	}
	if f.status != slot.StatusAvailable {
		return nil, slot.ErrSlotUnavailable
	}
	f.status = slot.StatusBooked
	return &slot.TimeSlot{
		ID:        slotID,
		CourtID:   "court-1",
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "19:00",
		Status:    slot.StatusBooked,
		Price:     800,
		BookingID: &bookingID,
	}, nil
}

func (f *fakeSlotService) Release(ctx context.Context, slotID string) error {
	if slotID != f.slotID || f.status != slot.StatusBooked {
		return slot.ErrSlotNotBooked
	}
	f.status = slot.StatusAvailable
	return nil
}

func (f *fakeSlotService) Generate(ctx context.Context, req slot.GenerateRequest) (*slot.GenerateResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSlotService) SetStatusBulk(ctx context.Context, req slot.MutateRequest) (*slot.MutateResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSlotService) ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*slot.TimeSlot, error) {
	return nil, errors.New("not implemented")
}

type fakeVenueService struct {
	venueID string
	ownerID string
}

func (f *fakeVenueService) IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	if id != f.venueID {
		return false, venue.ErrNotFound
	}
	return ownerID == f.ownerID, nil
}

func (f *fakeVenueService) Create(ctx context.Context, req venue.CreateRequest) (*venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeVenueService) GetByID(ctx context.Context, id string) (*venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeVenueService) List(ctx context.Context, filter venue.Filter) ([]*venue.Venue, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (f *fakeVenueService) Update(ctx context.Context, id, ownerID string, req venue.UpdateRequest) (*venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeVenueService) SetApproval(ctx context.Context, id string, status venue.ApprovalStatus, comment *string) (*venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func newTestService() (Service, *fakeRepository, *fakeSlotService) {
	repo := newFakeRepository()
	slots := &fakeSlotService{slotID: "slot-1", status: slot.StatusAvailable, price: 800}
	venues := &fakeVenueService{venueID: "venue-1", ownerID: "owner-1"}
	return NewService(repo, slots, venues), repo, slots
}

func TestCreateBooksSlot(t *testing.T) {
	svc, repo, slots := newTestService()

	b, err := svc.Create(context.Background(), CreateRequest{UserID: "user-1", SlotID: "slot-1"})
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, b.Status)
	require.Equal(t, int64(800), b.Price, "price is captured from the slot at booking time")
	require.Equal(t, slot.StatusBooked, slots.status)
	require.Len(t, repo.bookings, 1)
}

func TestCreateRaceLoserGetsConflict(t *testing.T) {
	svc, _, slots := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "user-1", SlotID: "slot-1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{UserID: "user-2", SlotID: "slot-1"})
	require.ErrorIs(t, err, ErrSlotUnavailable)
	require.Equal(t, 2, slots.bookCalls)
	require.Equal(t, slot.StatusBooked, slots.status, "winner keeps the slot")
}

func TestCancelReleasesSlot(t *testing.T) {
	svc, repo, slots := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{UserID: "user-1", SlotID: "slot-1"})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, b.ID, "user-1", false)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, cancelled.Status)
	require.Equal(t, slot.StatusAvailable, slots.status, "slot returns to the pool")
	require.Equal(t, StatusCancelled, repo.bookings[b.ID].Status)
}

func TestCancelPermissions(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{UserID: "user-1", SlotID: "slot-1"})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, "user-2", false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Admins may cancel on behalf of anyone.
	_, err = svc.Cancel(ctx, b.ID, "admin-1", true)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, b.ID, "user-1", false)
	require.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Cancel(context.Background(), "missing", "user-1", false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListForOwner(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.bookings["b-1"] = &Booking{ID: "b-1", UserID: "user-1", VenueID: "venue-1", Status: StatusConfirmed}

	bookings, total, err := svc.ListForOwner(ctx, "owner-1", Filter{VenueID: "venue-1"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, bookings, 1)

	_, _, err = svc.ListForOwner(ctx, "intruder", Filter{VenueID: "venue-1"})
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, _, err = svc.ListForOwner(ctx, "owner-1", Filter{VenueID: "missing"})
	require.ErrorIs(t, err, ErrNotFound)
}
