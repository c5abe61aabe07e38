package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidWindow    = errors.New("schedule window end is before start")
	ErrUnknownCourt     = errors.New("unknown court type")
	ErrInvalidHourRange = errors.New("rule end hour must be after start hour")
	ErrHourOutOfRange   = errors.New("hour outside 0-23")
	ErrRuleOverlap      = errors.New("overlapping hour ranges for the same court and weekday")
	ErrDuplicateHour    = errors.New("duplicate hour for the same court and date")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDuplicateSlotID  = errors.New("duplicate slot id")
)

// Slot is one bookable hour block. Slots are created once at catalog build
// time and never mutated afterwards.
type Slot struct {
	ID          string     `json:"id"`
	Court       court.Type `json:"court"`
	Date        string     `json:"date"`       // YYYY-MM-DD
	StartTime   string     `json:"start_time"` // HH:MM
	EndTime     string     `json:"end_time"`   // HH:MM
	CourtNumber string     `json:"court_number,omitempty"`
	Confirmed   bool       `json:"confirmed"`
}

// WeeklyRule expands into one slot per hour on every matching weekday.
type WeeklyRule struct {
	Weekday     time.Weekday
	Court       court.Type
	StartHour   int // inclusive
	EndHour     int // exclusive
	CourtNumber string
	Confirmed   bool
}

// SlotTemplate describes a single hour block inside a day override.
type SlotTemplate struct {
	Court       court.Type
	Hour        int
	CourtNumber string
	Confirmed   bool
}

// DayOverride pins an exact date to a literal slot list. It is exclusive:
// a matching date emits these slots and nothing else, regardless of any
// weekly rule or court override.
type DayOverride struct {
	Date  string
	Slots []SlotTemplate
}

// CourtOverride replaces one court's weekly rules inside a date window with a
// hand-curated table of active dates. Dates in the window that are absent
// from Hours emit nothing for that court. Other courts are unaffected.
type CourtOverride struct {
	Court       court.Type
	From        string // inclusive, YYYY-MM-DD
	To          string // inclusive, YYYY-MM-DD
	Hours       map[string][]int
	CourtNumber string
	Confirmed   bool
}

// Ruleset is the full generator input. Precedence when a date matches more
// than one source: day override, then court override, then weekly rule.
type Ruleset struct {
	Weekly []WeeklyRule
	Days   []DayOverride
	Courts []CourtOverride
}

// Validate rejects malformed rule tables. It is meant to run once at catalog
// construction; a failure here is a fatal configuration error.
func (rs Ruleset) Validate() error {
	// Weekly rules: valid courts, sane hour ranges, no overlap per court+weekday.
	for i, r := range rs.Weekly {
		if !r.Court.Valid() {
			return fmt.Errorf("weekly rule %d: %w: %q", i, ErrUnknownCourt, r.Court)
		}
		if r.StartHour < 0 || r.StartHour > 23 || r.EndHour > 24 {
			return fmt.Errorf("weekly rule %d: %w", i, ErrHourOutOfRange)
		}
		if r.EndHour <= r.StartHour {
			return fmt.Errorf("weekly rule %d: %w", i, ErrInvalidHourRange)
		}
		for j := 0; j < i; j++ {
			prev := rs.Weekly[j]
			if prev.Weekday != r.Weekday || prev.Court != r.Court {
				continue
			}
			if r.StartHour < prev.EndHour && r.EndHour > prev.StartHour {
				return fmt.Errorf("weekly rules %d and %d: %w", j, i, ErrRuleOverlap)
			}
		}
	}

	// Day overrides: valid dates, valid courts, no duplicate court+hour per day.
	seenDay := make(map[string]bool)
	for i, d := range rs.Days {
		if _, err := time.Parse(DateLayout, d.Date); err != nil {
			return fmt.Errorf("day override %d: %w: %q", i, ErrInvalidDate, d.Date)
		}
		if seenDay[d.Date] {
			return fmt.Errorf("day override %d: duplicate override for %s", i, d.Date)
		}
		seenDay[d.Date] = true

		hours := make(map[string]bool)
		for _, t := range d.Slots {
			if !t.Court.Valid() {
				return fmt.Errorf("day override %s: %w: %q", d.Date, ErrUnknownCourt, t.Court)
			}
			if t.Hour < 0 || t.Hour > 23 {
				return fmt.Errorf("day override %s: %w", d.Date, ErrHourOutOfRange)
			}
			key := fmt.Sprintf("%s-%d", t.Court, t.Hour)
			if hours[key] {
				return fmt.Errorf("day override %s: %w", d.Date, ErrDuplicateHour)
			}
			hours[key] = true
		}
	}

	// Court overrides: valid court, valid window, valid hour lists.
	for i, co := range rs.Courts {
		if !co.Court.Valid() {
			return fmt.Errorf("court override %d: %w: %q", i, ErrUnknownCourt, co.Court)
		}
		if _, err := time.Parse(DateLayout, co.From); err != nil {
			return fmt.Errorf("court override %d: %w: %q", i, ErrInvalidDate, co.From)
		}
		if _, err := time.Parse(DateLayout, co.To); err != nil {
			return fmt.Errorf("court override %d: %w: %q", i, ErrInvalidDate, co.To)
		}
		if co.To < co.From {
			return fmt.Errorf("court override %d: %w", i, ErrInvalidWindow)
		}
		for date, hours := range co.Hours {
			if _, err := time.Parse(DateLayout, date); err != nil {
				return fmt.Errorf("court override %d: %w: %q", i, ErrInvalidDate, date)
			}
			seen := make(map[int]bool)
			for _, h := range hours {
				if h < 0 || h > 23 {
					return fmt.Errorf("court override %d (%s): %w", i, date, ErrHourOutOfRange)
				}
				if seen[h] {
					return fmt.Errorf("court override %d (%s): %w", i, date, ErrDuplicateHour)
				}
				seen[h] = true
			}
		}
	}

	return nil
}

// covers reports whether the override window contains the given date.
// Lexicographic comparison is exact for zero-padded ISO dates.
func (co CourtOverride) covers(date string) bool {
	return co.From <= date && date <= co.To
}

// ParseDate parses a YYYY-MM-DD string into a UTC wall-clock date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}
