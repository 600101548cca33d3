package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parth1928/quickcourt-backend/internal/venue"
)

type fakeRepository struct {
	reviews []*Review
	seen    map[string]bool // venueID|userID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{seen: map[string]bool{}}
}

func (r *fakeRepository) Create(ctx context.Context, rv *Review) error {
	key := rv.VenueID + "|" + rv.UserID
	if r.seen[key] {
		return ErrAlreadyReviewed
	}
	r.seen[key] = true
	cp := *rv
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	var out []*Review
	for _, rv := range r.reviews {
		if filter.VenueID != "" && rv.VenueID != filter.VenueID {
			continue
		}
		cp := *rv
		out = append(out, &cp)
	}
	return out, len(out), nil
}

type fakeVenueService struct {
	venues map[string]*venue.Venue
}

func (f *fakeVenueService) GetByID(ctx context.Context, id string) (*venue.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venue.ErrNotFound
	}
	return v, nil
}

func (f *fakeVenueService) IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeVenueService) Create(ctx context.Context, req venue.CreateRequest) (*venue.Venue, error) {
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

func newTestService() Service {
	venues := &fakeVenueService{venues: map[string]*venue.Venue{
		"venue-1": {ID: "venue-1", Status: venue.StatusApproved},
		"venue-2": {ID: "venue-2", Status: venue.StatusPending},
	}}
	return NewService(newFakeRepository(), venues)
}

func TestCreateReview(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rv, err := svc.Create(ctx, CreateRequest{
		VenueID: "venue-1",
		UserID:  "user-1",
		Rating:  4,
		Comment: "  good lighting  ",
	})
	require.NoError(t, err)
	require.Equal(t, 4, rv.Rating)
	require.Equal(t, "good lighting", rv.Comment)
}

func TestCreateReviewValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{VenueID: "venue-1", UserID: "user-1", Rating: 0})
	require.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Create(ctx, CreateRequest{VenueID: "venue-1", UserID: "user-1", Rating: 6})
	require.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Create(ctx, CreateRequest{VenueID: "missing", UserID: "user-1", Rating: 3})
	require.ErrorIs(t, err, ErrVenueNotFound)

	// Only approved venues take reviews.
	_, err = svc.Create(ctx, CreateRequest{VenueID: "venue-2", UserID: "user-1", Rating: 3})
	require.ErrorIs(t, err, ErrVenueNotOpen)
}

func TestCreateReviewOncePerUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{VenueID: "venue-1", UserID: "user-1", Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{VenueID: "venue-1", UserID: "user-1", Rating: 2})
	require.ErrorIs(t, err, ErrAlreadyReviewed)

	_, err = svc.Create(ctx, CreateRequest{VenueID: "venue-1", UserID: "user-2", Rating: 2})
	require.NoError(t, err)

	reviews, total, err := svc.ListByVenue(ctx, Filter{VenueID: "venue-1"})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, reviews, 2)
}
