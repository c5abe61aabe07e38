package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

// Generate expands a ruleset into the flat, ordered slot list for the
// inclusive [start, end] date window. It is pure and deterministic: identical
// inputs always produce an identical, identically ordered sequence.
//
// Per-date precedence, highest first:
//  1. a DayOverride for the exact date emits its literal slots and nothing else
//  2. a CourtOverride whose window covers the date replaces that court's
//     weekly rules (other courts fall through to step 3 untouched)
//  3. weekly rules matching the weekday
//
// A date matched by nothing contributes zero slots.
func Generate(start, end time.Time, rs Ruleset) ([]Slot, error) {
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ruleset: %w", err)
	}
	if end.Before(start) {
		return nil, ErrInvalidWindow
	}

	dayIndex := make(map[string]DayOverride, len(rs.Days))
	for _, d := range rs.Days {
		dayIndex[d.Date] = d
	}

	var slots []Slot
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)

		if ov, ok := dayIndex[date]; ok {
			for _, t := range ov.Slots {
				slots = append(slots, newSlot(t.Court, date, t.Hour, t.CourtNumber, t.Confirmed))
			}
			continue
		}

		suppressed := make(map[string]bool)
		for _, co := range rs.Courts {
			if !co.covers(date) {
				continue
			}
			suppressed[string(co.Court)] = true
			hours := append([]int(nil), co.Hours[date]...)
			sort.Ints(hours)
			for _, h := range hours {
				slots = append(slots, newSlot(co.Court, date, h, co.CourtNumber, co.Confirmed))
			}
		}

		weekday := d.Weekday()
		for _, r := range rs.Weekly {
			if r.Weekday != weekday || suppressed[string(r.Court)] {
				continue
			}
			for h := r.StartHour; h < r.EndHour; h++ {
				slots = append(slots, newSlot(r.Court, date, h, r.CourtNumber, r.Confirmed))
			}
		}
	}

	return slots, nil
}

// newSlot builds a one-hour slot with its deterministic identity.
func newSlot(c court.Type, date string, hour int, courtNumber string, confirmed bool) Slot {
	return Slot{
		ID:          fmt.Sprintf("%s-%s-%02d", c.Code(), date, hour),
		Court:       c,
		Date:        date,
		StartTime:   fmt.Sprintf("%02d:00", hour),
		EndTime:     fmt.Sprintf("%02d:00", hour+1),
		CourtNumber: courtNumber,
		Confirmed:   confirmed,
	}
}
