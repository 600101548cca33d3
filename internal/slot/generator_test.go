package slot

import (
	"errors"
	"testing"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/court"
)

func ptrInt64(v int64) *int64 { return &v }
func ptrStr(v string) *string { return &v }

func testCourt() *court.Court {
	return &court.Court{
		ID:         "court-1",
		VenueID:    "venue-1",
		Name:       "Court A",
		Sport:      "badminton",
		HourlyRate: 500,
		PeakRate:   ptrInt64(800),
		PeakStart:  ptrStr("18:00"),
		PeakEnd:    ptrStr("20:00"),
		OpenTime:   "06:00",
		CloseTime:  "22:00",
		IsActive:   true,
	}
}

func TestBuildCandidatesSingleDay(t *testing.T) {
	// Base date for testing: 2026-03-02 (a Monday)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots, err := BuildCandidates(testCourt(), day, day)
	if err != nil {
		t.Fatalf("BuildCandidates() error = %v", err)
	}

	// 06:00 to 22:00 yields 16 one-hour slots.
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}

	first, last := slots[0], slots[len(slots)-1]
	if first.StartTime != "06:00" || first.EndTime != "07:00" {
		t.Errorf("first slot = %s-%s, want 06:00-07:00", first.StartTime, first.EndTime)
	}
	if last.StartTime != "21:00" || last.EndTime != "22:00" {
		t.Errorf("last slot = %s-%s, want 21:00-22:00", last.StartTime, last.EndTime)
	}

	for _, s := range slots {
		if s.Status != StatusAvailable {
			t.Errorf("slot %s status = %s, want %s", s.StartTime, s.Status, StatusAvailable)
		}
		if s.CourtID != "court-1" {
			t.Errorf("slot %s court = %s, want court-1", s.StartTime, s.CourtID)
		}
	}
}

func TestBuildCandidatesPeakPricing(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots, err := BuildCandidates(testCourt(), day, day)
	if err != nil {
		t.Fatalf("BuildCandidates() error = %v", err)
	}

	for _, s := range slots {
		want := int64(500)
		// Peak window is [18:00, 20:00), so exactly the 18:00 and 19:00 starts.
		if s.StartTime == "18:00" || s.StartTime == "19:00" {
			want = 800
		}
		if s.Price != want {
			t.Errorf("slot %s price = %d, want %d", s.StartTime, s.Price, want)
		}
	}
}

func TestBuildCandidatesNoPeakRate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	c := testCourt()
	c.PeakRate = nil

	slots, err := BuildCandidates(c, day, day)
	if err != nil {
		t.Fatalf("BuildCandidates() error = %v", err)
	}
	for _, s := range slots {
		if s.Price != 500 {
			t.Errorf("slot %s price = %d, want standard rate 500", s.StartTime, s.Price)
		}
	}
}

func TestBuildCandidatesDayOverrides(t *testing.T) {
	c := testCourt()
	c.DayOverrides = map[string]court.DayHours{
		"sunday": {Closed: true},
		"monday": {Open: "10:00", Close: "14:00"},
	}

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	slots, err := BuildCandidates(c, sunday, tuesday)
	if err != nil {
		t.Fatalf("BuildCandidates() error = %v", err)
	}

	perDay := map[string]int{}
	for _, s := range slots {
		perDay[s.Date.Format("2006-01-02")]++
	}

	if got := perDay[sunday.Format("2006-01-02")]; got != 0 {
		t.Errorf("closed sunday produced %d slots, want 0", got)
	}
	if got := perDay[monday.Format("2006-01-02")]; got != 4 {
		t.Errorf("monday override produced %d slots, want 4", got)
	}
	if got := perDay[tuesday.Format("2006-01-02")]; got != 16 {
		t.Errorf("tuesday default hours produced %d slots, want 16", got)
	}
}

func TestBuildCandidatesInclusiveRange(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	slots, err := BuildCandidates(testCourt(), start, end)
	if err != nil {
		t.Fatalf("BuildCandidates() error = %v", err)
	}
	// 7 calendar days, 16 slots each.
	if len(slots) != 7*16 {
		t.Errorf("got %d slots, want %d", len(slots), 7*16)
	}
}

func TestBuildCandidatesInvalidRange(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	if _, err := BuildCandidates(testCourt(), start, end); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("BuildCandidates() error = %v, want ErrInvalidRange", err)
	}
}

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name     string
		court    *court.Court
		startMin int
		want     int64
	}{
		{"before peak", testCourt(), 17 * 60, 500},
		{"peak start boundary", testCourt(), 18 * 60, 800},
		{"inside peak", testCourt(), 19 * 60, 800},
		{"peak end is exclusive", testCourt(), 20 * 60, 500},
		{
			"no peak window configured",
			&court.Court{HourlyRate: 300},
			19 * 60,
			300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePrice(tt.court, tt.startMin); got != tt.want {
				t.Errorf("resolvePrice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"nonsense", 0, true},
	}

	for _, tt := range tests {
		got, err := minuteOfDay(tt.clock)
		if (err != nil) != tt.wantErr {
			t.Errorf("minuteOfDay(%q) error = %v, wantErr %v", tt.clock, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("minuteOfDay(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}
