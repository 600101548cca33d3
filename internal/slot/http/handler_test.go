package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/parth1928/quickcourt-backend/internal/court"
	"github.com/parth1928/quickcourt-backend/internal/slot"
)

const testCourtID = "3f1f9bd4-9a1b-4a5c-8f51-0f5c3a6a1a10"

type stubSlotService struct {
	slots []*slot.TimeSlot
}

func (s *stubSlotService) Generate(ctx context.Context, req slot.GenerateRequest) (*slot.GenerateResult, error) {
	return &slot.GenerateResult{Created: len(s.slots), Slots: s.slots}, nil
}

func (s *stubSlotService) SetStatusBulk(ctx context.Context, req slot.MutateRequest) (*slot.MutateResult, error) {
	return &slot.MutateResult{ModifiedCount: len(req.SlotIDs), Skipped: []string{}}, nil
}

func (s *stubSlotService) ListRange(ctx context.Context, courtID string, from, to time.Time) ([]*slot.TimeSlot, error) {
	return s.slots, nil
}

func (s *stubSlotService) Book(ctx context.Context, slotID, bookingID string) (*slot.TimeSlot, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSlotService) Release(ctx context.Context, slotID string) error {
	return errors.New("not implemented")
}

type stubCourtService struct {
	known map[string]bool
}

func (s *stubCourtService) GetByID(ctx context.Context, id string) (*court.Court, error) {
	if !s.known[id] {
		return nil, court.ErrNotFound
	}
	return &court.Court{ID: id, IsActive: true}, nil
}

func (s *stubCourtService) IsOwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	return true, nil
}

func (s *stubCourtService) Create(ctx context.Context, req court.CreateRequest) (*court.Court, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCourtService) List(ctx context.Context, filter court.Filter) ([]*court.Court, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubCourtService) Update(ctx context.Context, id, ownerID string, req court.UpdateRequest) (*court.Court, error) {
	return nil, errors.New("not implemented")
}

func newTestRouter(slots []*slot.TimeSlot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(
		&stubSlotService{slots: slots},
		&stubCourtService{known: map[string]bool{testCourtID: true}},
	)
	pass := func(c *gin.Context) { c.Next() }

	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, h, pass, pass)
	return r
}

func TestListSlotsEndpoint(t *testing.T) {
	sample := []*slot.TimeSlot{{
		ID:        "s-1",
		CourtID:   testCourtID,
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "06:00",
		EndTime:   "07:00",
		Status:    slot.StatusAvailable,
		Price:     500,
	}}
	r := newTestRouter(sample)

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/courts/"+testCourtID+"/slots?start_date=2026-03-02&end_date=2026-03-02", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"start_time":"06:00"`)
	})

	t.Run("grouped by date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/courts/"+testCourtID+"/slots?start_date=2026-03-02&end_date=2026-03-02&group_by_date=true", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"days"`)
	})

	t.Run("missing dates", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/courts/"+testCourtID+"/slots", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed court id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/courts/not-a-uuid/slots?start_date=2026-03-02&end_date=2026-03-02", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown court", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/courts/9b2f64de-63a1-4a0f-9d3e-b5a1c2d3e4f5/slots?start_date=2026-03-02&end_date=2026-03-02", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMutateSlotsEndpointBinding(t *testing.T) {
	r := newTestRouter(nil)

	t.Run("rejects booked as target", func(t *testing.T) {
		body := `{"slot_ids":["` + testCourtID + `"],"status":"booked"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch,
			"/v1/courts/"+testCourtID+"/slots", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects empty slot list", func(t *testing.T) {
		body := `{"slot_ids":[],"status":"blocked","reason":"repair"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch,
			"/v1/courts/"+testCourtID+"/slots", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("accepts a valid mutation", func(t *testing.T) {
		body := `{"slot_ids":["` + testCourtID + `"],"status":"blocked","reason":"repair"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch,
			"/v1/courts/"+testCourtID+"/slots", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"modified_count":1`)
	})
}

func TestGenerateSlotsEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	body := `{"start_date":"2026-03-02","end_date":"2026-03-08"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/v1/courts/"+testCourtID+"/slots", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"message":"slots generated"`)
}
