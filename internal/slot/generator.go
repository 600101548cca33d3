package slot

import (
	"fmt"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/court"
)

// slotDuration is the fixed interval of one bookable slot.
const slotDurationMinutes = 60

// minuteOfDay converts an HH:mm string to minutes since midnight.
func minuteOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// resolvePrice returns the price for a slot starting at startMin.
// The peak rate applies when the start falls inside [peakStart, peakEnd);
// without a configured peak rate the standard rate is used.
func resolvePrice(c *court.Court, startMin int) int64 {
	if c.PeakStart == nil || c.PeakEnd == nil {
		return c.HourlyRate
	}
	peakStart, err := minuteOfDay(*c.PeakStart)
	if err != nil {
		return c.HourlyRate
	}
	peakEnd, err := minuteOfDay(*c.PeakEnd)
	if err != nil {
		return c.HourlyRate
	}
	if startMin >= peakStart && startMin < peakEnd {
		if c.PeakRate != nil {
			return *c.PeakRate
		}
	}
	return c.HourlyRate
}

// BuildCandidates computes one candidate slot per fixed interval between the
// court's operating hours, for every calendar date in the inclusive range
// [start, end]. Weekday overrides are honored; closed days produce no slots.
func BuildCandidates(c *court.Court, start, end time.Time) ([]*TimeSlot, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var candidates []*TimeSlot
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		open, close, ok := c.HoursFor(date)
		if !ok {
			continue
		}

		openMin, err := minuteOfDay(open)
		if err != nil {
			return nil, err
		}
		closeMin, err := minuteOfDay(close)
		if err != nil {
			return nil, err
		}

		for m := openMin; m+slotDurationMinutes <= closeMin; m += slotDurationMinutes {
			candidates = append(candidates, &TimeSlot{
				CourtID:   c.ID,
				Date:      date,
				StartTime: formatMinute(m),
				EndTime:   formatMinute(m + slotDurationMinutes),
				Status:    StatusAvailable,
				Price:     resolvePrice(c, m),
			})
		}
	}

	return candidates, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
