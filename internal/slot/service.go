package slot

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/cache"
	"github.com/parth1928/quickcourt-backend/internal/court"
)

// maxGenerateDays caps a single generation request so an owner cannot
// accidentally materialize years of slot rows in one call.
const maxGenerateDays = 90

// listCacheTTL keeps availability listings hot for a short window; every
// slot write for a court invalidates that court's entries.
const listCacheTTL = 30 * time.Second

// GenerateRequest carries parameters for a slot generation run.
type GenerateRequest struct {
	CourtID       string
	OwnerID       string
	StartDate     time.Time
	EndDate       time.Time
	ClearExisting bool
}

// MutateRequest carries parameters for a bulk status change.
type MutateRequest struct {
	CourtID string
	OwnerID string
	SlotIDs []string
	Status  Status
	Reason  *string
}

type Service interface {
	// Generate produces slots for a court over an inclusive date range.
	// Existing booked slots are never touched; existing non-booked slots are
	// refreshed only when ClearExisting is set.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// SetStatusBulk transitions the given slots to a new status, excluding and
	// reporting any slot that is currently booked.
	SetStatusBulk(ctx context.Context, req MutateRequest) (*MutateResult, error)

	// ListRange returns slots for a court ordered by date then start time.
	// An unknown court yields an empty result; court existence is the caller's
	// concern.
	ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*TimeSlot, error)

	// Book atomically occupies an available slot on behalf of a booking.
	Book(ctx context.Context, slotID, bookingID string) (*TimeSlot, error)

	// Release reverts a booked slot to available when its booking is cancelled.
	Release(ctx context.Context, slotID string) error
}

type service struct {
	repo         Repository
	courtService court.Service
	cache        cache.Cache
}

func NewService(repo Repository, courtService court.Service, c cache.Cache) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		cache:        c,
	}
}

func validateRange(start, end time.Time) (time.Time, time.Time, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return start, end, ErrInvalidRange
	}
	return start, end, nil
}

func (s *service) resolveCourt(ctx context.Context, courtID, ownerID string) (*court.Court, error) {
	ct, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	if !ct.IsActive {
		return nil, ErrCourtInactive
	}

	owned, err := s.courtService.IsOwnedBy(ctx, courtID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrPermissionDenied
	}
	return ct, nil
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	start, end, err := validateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Sub(start) > maxGenerateDays*24*time.Hour {
		return nil, ErrRangeTooLarge
	}

	ct, err := s.resolveCourt(ctx, req.CourtID, req.OwnerID)
	if err != nil {
		return nil, err
	}

	candidates, err := BuildCandidates(ct, start, end)
	if err != nil {
		return nil, err
	}

	// Read the current state once and classify every candidate explicitly,
	// instead of relying on duplicate-key exceptions as control flow.
	existing, err := s.repo.ListRange(ctx, req.CourtID, start, end)
	if err != nil {
		return nil, err
	}
	current := make(map[string]Status, len(existing))
	for _, e := range existing {
		current[e.Key()] = e.Status
	}

	var result GenerateResult
	var toInsert, toRefresh []*TimeSlot

	for _, cand := range candidates {
		status, found := current[cand.Key()]
		switch {
		case !found:
			toInsert = append(toInsert, cand)
		case status == StatusBooked:
			result.SkippedBooked++
		case req.ClearExisting:
			toRefresh = append(toRefresh, cand)
		default:
			result.SkippedExisting++
		}
	}

	if len(toInsert) > 0 {
		inserted, err := s.repo.InsertBatch(ctx, toInsert)
		if err != nil {
			return nil, err
		}
		result.Created = inserted
		// A concurrent generation run may have created some of these first;
		// the unique index turns that into a skip, not a duplicate.
		result.SkippedExisting += len(toInsert) - inserted
	}

	if len(toRefresh) > 0 {
		refreshed, err := s.repo.RefreshBatch(ctx, toRefresh)
		if err != nil {
			return nil, err
		}
		result.Updated = refreshed
		// Shortfall means a booking landed after our read; the statement guard
		// protected it.
		result.SkippedBooked += len(toRefresh) - refreshed
	}

	slots, err := s.repo.ListRange(ctx, req.CourtID, start, end)
	if err != nil {
		return nil, err
	}
	result.Slots = slots

	s.invalidate(ctx, req.CourtID)
	return &result, nil
}

func (s *service) SetStatusBulk(ctx context.Context, req MutateRequest) (*MutateResult, error) {
	if !req.Status.IsMutableTarget() {
		return nil, ErrInvalidStatus
	}

	reason := req.Reason
	if req.Status.NeedsReason() {
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return nil, ErrReasonRequired
		}
	} else {
		// Reason only makes sense on blocked/maintenance slots.
		reason = nil
	}

	if _, err := s.resolveCourt(ctx, req.CourtID, req.OwnerID); err != nil {
		return nil, err
	}

	slots, err := s.repo.GetByIDs(ctx, req.SlotIDs)
	if err != nil {
		return nil, err
	}
	if len(slots) != len(req.SlotIDs) {
		return nil, ErrSlotNotFound
	}

	var targets []string
	var skipped []string
	for _, sl := range slots {
		if sl.CourtID != req.CourtID {
			return nil, ErrWrongCourt
		}
		if sl.Status == StatusBooked {
			skipped = append(skipped, sl.ID)
			continue
		}
		targets = append(targets, sl.ID)
	}

	var modified []string
	if len(targets) > 0 {
		modified, err = s.repo.UpdateStatusBulk(ctx, targets, req.Status, reason)
		if err != nil {
			return nil, err
		}
		// Slots booked between the read and the update are guarded by the
		// statement itself; report them as skipped too.
		if len(modified) < len(targets) {
			modifiedSet := make(map[string]bool, len(modified))
			for _, id := range modified {
				modifiedSet[id] = true
			}
			for _, id := range targets {
				if !modifiedSet[id] {
					skipped = append(skipped, id)
				}
			}
		}
	}

	s.invalidate(ctx, req.CourtID)

	if skipped == nil {
		skipped = []string{}
	}
	return &MutateResult{
		ModifiedCount: len(modified),
		Skipped:       skipped,
	}, nil
}

func (s *service) ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*TimeSlot, error) {
	from, to, err := validateRange(from, to)
	if err != nil {
		return nil, err
	}

	key := listCacheKey(courtID, from, to)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached []*TimeSlot
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	slots, err := s.repo.ListRange(ctx, courtID, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(slots); err == nil {
		_ = s.cache.Set(ctx, key, data, listCacheTTL)
	}
	return slots, nil
}

func (s *service) Book(ctx context.Context, slotID, bookingID string) (*TimeSlot, error) {
	sl, err := s.repo.Book(ctx, slotID, bookingID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, sl.CourtID)
	return sl, nil
}

func (s *service) Release(ctx context.Context, slotID string) error {
	slots, err := s.repo.GetByIDs(ctx, []string{slotID})
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		return ErrSlotNotFound
	}

	if err := s.repo.Release(ctx, slotID); err != nil {
		return err
	}
	s.invalidate(ctx, slots[0].CourtID)
	return nil
}

func listCacheKey(courtID string, from, to time.Time) string {
	return "slots:" + courtID + ":" + from.Format("2006-01-02") + ":" + to.Format("2006-01-02")
}

func (s *service) invalidate(ctx context.Context, courtID string) {
	// Cache trouble must never fail a write path.
	_ = s.cache.DeleteByPrefix(ctx, "slots:"+courtID+":")
}
