package slot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/parth1928/quickcourt-backend/internal/cache"
	"github.com/parth1928/quickcourt-backend/internal/court"
)

// fakeRepository is an in-memory Repository that mirrors the guards the
// SQL statements enforce, so the service classification can be tested
// without a database.
type fakeRepository struct {
	slots map[string]*TimeSlot // by id
	byKey map[string]string    // uniqueness tuple -> id
	seq   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		slots: map[string]*TimeSlot{},
		byKey: map[string]string{},
	}
}

func (r *fakeRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("slot-%d", r.seq)
}

func (r *fakeRepository) ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*TimeSlot, error) {
	var out []*TimeSlot
	for _, s := range r.slots {
		if s.CourtID == courtID && !s.Date.Before(from) && !s.Date.After(to) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *fakeRepository) GetByIDs(ctx context.Context, ids []string) ([]*TimeSlot, error) {
	var out []*TimeSlot
	for _, id := range ids {
		if s, ok := r.slots[id]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepository) InsertBatch(ctx context.Context, slots []*TimeSlot) (int, error) {
	inserted := 0
	for _, s := range slots {
		if _, exists := r.byKey[s.Key()]; exists {
			continue
		}
		cp := *s
		cp.ID = r.nextID()
		r.slots[cp.ID] = &cp
		r.byKey[cp.Key()] = cp.ID
		inserted++
	}
	return inserted, nil
}

func (r *fakeRepository) RefreshBatch(ctx context.Context, slots []*TimeSlot) (int, error) {
	refreshed := 0
	for _, s := range slots {
		id, exists := r.byKey[s.Key()]
		if !exists {
			cp := *s
			cp.ID = r.nextID()
			r.slots[cp.ID] = &cp
			r.byKey[cp.Key()] = cp.ID
			refreshed++
			continue
		}
		existing := r.slots[id]
		if existing.Status == StatusBooked {
			continue
		}
		existing.EndTime = s.EndTime
		existing.Status = StatusAvailable
		existing.Price = s.Price
		existing.BlockReason = nil
		refreshed++
	}
	return refreshed, nil
}

func (r *fakeRepository) UpdateStatusBulk(ctx context.Context, ids []string, status Status, reason *string) ([]string, error) {
	var modified []string
	for _, id := range ids {
		s, ok := r.slots[id]
		if !ok || s.Status == StatusBooked {
			continue
		}
		s.Status = status
		s.BlockReason = reason
		modified = append(modified, id)
	}
	return modified, nil
}

func (r *fakeRepository) Book(ctx context.Context, slotID, bookingID string) (*TimeSlot, error) {
	s, ok := r.slots[slotID]
	if !ok || s.Status != StatusAvailable {
		return nil, ErrSlotUnavailable
	}
	s.Status = StatusBooked
	s.BookingID = &bookingID
	cp := *s
	return &cp, nil
}

func (r *fakeRepository) Release(ctx context.Context, slotID string) error {
	s, ok := r.slots[slotID]
	if !ok || s.Status != StatusBooked {
		return ErrSlotNotBooked
	}
	s.Status = StatusAvailable
	s.BookingID = nil
	return nil
}

type fakeCourtService struct {
	courts  map[string]*court.Court
	ownerID string
}

func (f *fakeCourtService) GetByID(ctx context.Context, id string) (*court.Court, error) {
	c, ok := f.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourtService) IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	if _, ok := f.courts[id]; !ok {
		return false, court.ErrNotFound
	}
	return ownerID == f.ownerID, nil
}

func (f *fakeCourtService) Create(ctx context.Context, req court.CreateRequest) (*court.Court, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCourtService) List(ctx context.Context, filter court.Filter) ([]*court.Court, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (f *fakeCourtService) Update(ctx context.Context, id, ownerID string, req court.UpdateRequest) (*court.Court, error) {
	return nil, errors.New("not implemented")
}

func newTestService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	courts := &fakeCourtService{
		courts:  map[string]*court.Court{"court-1": testCourt()},
		ownerID: "owner-1",
	}
	return NewService(repo, courts, cache.NewNoop()), repo
}

func generateReq(clear bool) GenerateRequest {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return GenerateRequest{
		CourtID:       "court-1",
		OwnerID:       "owner-1",
		StartDate:     day,
		EndDate:       day,
		ClearExisting: clear,
	}
}

func TestGenerateCreatesSlots(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Generate(context.Background(), generateReq(false))
	require.NoError(t, err)
	require.Equal(t, 16, res.Created)
	require.Equal(t, 0, res.Updated)
	require.Equal(t, 0, res.SkippedBooked)
	require.Equal(t, 0, res.SkippedExisting)
	require.Len(t, res.Slots, 16)
}

func TestGenerateIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	res, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)
	require.Equal(t, 0, res.Created)
	require.Equal(t, 0, res.Updated)
	require.Equal(t, 16, res.SkippedExisting)
	require.Len(t, res.Slots, 16, "second run must not duplicate slots")
}

func TestGenerateNeverTouchesBookedSlots(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	// Book the 18:00 peak slot.
	var bookedID string
	for id, s := range repo.slots {
		if s.StartTime == "18:00" {
			bookedID = id
		}
	}
	require.NotEmpty(t, bookedID)
	_, err = svc.Book(ctx, bookedID, "booking-1")
	require.NoError(t, err)

	res, err := svc.Generate(ctx, generateReq(true))
	require.NoError(t, err)
	require.Equal(t, 0, res.Created)
	require.Equal(t, 15, res.Updated)
	require.Equal(t, 1, res.SkippedBooked)

	booked := repo.slots[bookedID]
	require.Equal(t, StatusBooked, booked.Status)
	require.NotNil(t, booked.BookingID)
	require.Equal(t, "booking-1", *booked.BookingID)
}

func TestGenerateRefreshRestoresBlockedSlots(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	var blockedID string
	for id := range repo.slots {
		blockedID = id
		break
	}
	reason := "resurfacing"
	_, err = svc.SetStatusBulk(ctx, MutateRequest{
		CourtID: "court-1",
		OwnerID: "owner-1",
		SlotIDs: []string{blockedID},
		Status:  StatusMaintenance,
		Reason:  &reason,
	})
	require.NoError(t, err)

	res, err := svc.Generate(ctx, generateReq(true))
	require.NoError(t, err)
	require.Equal(t, 16, res.Updated)

	refreshed := repo.slots[blockedID]
	require.Equal(t, StatusAvailable, refreshed.Status)
	require.Nil(t, refreshed.BlockReason)
}

func TestGenerateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("end before start", func(t *testing.T) {
		req := generateReq(false)
		req.EndDate = day.AddDate(0, 0, -1)
		_, err := svc.Generate(ctx, req)
		require.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("range too large", func(t *testing.T) {
		req := generateReq(false)
		req.EndDate = day.AddDate(0, 0, 91)
		_, err := svc.Generate(ctx, req)
		require.ErrorIs(t, err, ErrRangeTooLarge)
	})

	t.Run("unknown court", func(t *testing.T) {
		req := generateReq(false)
		req.CourtID = "missing"
		_, err := svc.Generate(ctx, req)
		require.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		req := generateReq(false)
		req.OwnerID = "someone-else"
		_, err := svc.Generate(ctx, req)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestGenerateInactiveCourt(t *testing.T) {
	repo := newFakeRepository()
	inactive := testCourt()
	inactive.IsActive = false
	courts := &fakeCourtService{
		courts:  map[string]*court.Court{"court-1": inactive},
		ownerID: "owner-1",
	}
	svc := NewService(repo, courts, cache.NewNoop())

	_, err := svc.Generate(context.Background(), generateReq(false))
	require.ErrorIs(t, err, ErrCourtInactive)
}

func TestSetStatusBulk(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	var ids []string
	for id := range repo.slots {
		ids = append(ids, id)
		if len(ids) == 3 {
			break
		}
	}
	_, err = svc.Book(ctx, ids[0], "booking-1")
	require.NoError(t, err)

	reason := "tournament"
	res, err := svc.SetStatusBulk(ctx, MutateRequest{
		CourtID: "court-1",
		OwnerID: "owner-1",
		SlotIDs: ids,
		Status:  StatusBlocked,
		Reason:  &reason,
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.ModifiedCount)
	require.Equal(t, []string{ids[0]}, res.Skipped, "booked slot must be reported, not modified")

	require.Equal(t, StatusBooked, repo.slots[ids[0]].Status)
	for _, id := range ids[1:] {
		require.Equal(t, StatusBlocked, repo.slots[id].Status)
		require.NotNil(t, repo.slots[id].BlockReason)
		require.Equal(t, "tournament", *repo.slots[id].BlockReason)
	}
}

func TestSetStatusBulkValidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	var anyID string
	for id := range repo.slots {
		anyID = id
		break
	}
	reason := "why"

	t.Run("booked is not a mutable target", func(t *testing.T) {
		_, err := svc.SetStatusBulk(ctx, MutateRequest{
			CourtID: "court-1", OwnerID: "owner-1",
			SlotIDs: []string{anyID}, Status: StatusBooked,
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("blocked requires a reason", func(t *testing.T) {
		_, err := svc.SetStatusBulk(ctx, MutateRequest{
			CourtID: "court-1", OwnerID: "owner-1",
			SlotIDs: []string{anyID}, Status: StatusBlocked,
		})
		require.ErrorIs(t, err, ErrReasonRequired)
	})

	t.Run("unknown slot id", func(t *testing.T) {
		_, err := svc.SetStatusBulk(ctx, MutateRequest{
			CourtID: "court-1", OwnerID: "owner-1",
			SlotIDs: []string{anyID, "missing"}, Status: StatusBlocked, Reason: &reason,
		})
		require.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("slot from another court", func(t *testing.T) {
		foreign := &TimeSlot{
			CourtID:   "court-2",
			Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			StartTime: "06:00",
			EndTime:   "07:00",
			Status:    StatusAvailable,
		}
		_, err := repo.InsertBatch(ctx, []*TimeSlot{foreign})
		require.NoError(t, err)
		foreignID := repo.byKey[foreign.Key()]

		_, err = svc.SetStatusBulk(ctx, MutateRequest{
			CourtID: "court-1", OwnerID: "owner-1",
			SlotIDs: []string{foreignID}, Status: StatusBlocked, Reason: &reason,
		})
		require.ErrorIs(t, err, ErrWrongCourt)
	})
}

func TestSetStatusBulkBackToAvailableClearsReason(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	var id string
	for k := range repo.slots {
		id = k
		break
	}
	reason := "painting lines"
	_, err = svc.SetStatusBulk(ctx, MutateRequest{
		CourtID: "court-1", OwnerID: "owner-1",
		SlotIDs: []string{id}, Status: StatusMaintenance, Reason: &reason,
	})
	require.NoError(t, err)

	// Reverting to available must drop the stale reason even if the
	// client still sends one.
	res, err := svc.SetStatusBulk(ctx, MutateRequest{
		CourtID: "court-1", OwnerID: "owner-1",
		SlotIDs: []string{id}, Status: StatusAvailable, Reason: &reason,
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.ModifiedCount)
	require.Equal(t, StatusAvailable, repo.slots[id].Status)
	require.Nil(t, repo.slots[id].BlockReason)
}

func TestBookAndRelease(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	var id string
	for k := range repo.slots {
		id = k
		break
	}

	booked, err := svc.Book(ctx, id, "booking-1")
	require.NoError(t, err)
	require.Equal(t, StatusBooked, booked.Status)

	// Double-booking the same slot must fail atomically.
	_, err = svc.Book(ctx, id, "booking-2")
	require.ErrorIs(t, err, ErrSlotUnavailable)

	require.NoError(t, svc.Release(ctx, id))
	require.Equal(t, StatusAvailable, repo.slots[id].Status)
	require.Nil(t, repo.slots[id].BookingID)

	require.ErrorIs(t, svc.Release(ctx, id), ErrSlotNotBooked)
	require.ErrorIs(t, svc.Release(ctx, "missing"), ErrSlotNotFound)
}

func TestListRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.Generate(ctx, generateReq(false))
	require.NoError(t, err)

	slots, err := svc.ListRange(ctx, "court-1", day, day)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	for i := 1; i < len(slots); i++ {
		require.LessOrEqual(t, slots[i-1].StartTime, slots[i].StartTime)
	}

	t.Run("unknown court yields empty result", func(t *testing.T) {
		slots, err := svc.ListRange(ctx, "missing", day, day)
		require.NoError(t, err)
		require.Empty(t, slots)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := svc.ListRange(ctx, "court-1", day, day.AddDate(0, 0, -1))
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}
