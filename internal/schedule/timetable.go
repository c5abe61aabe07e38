package schedule

import (
	"time"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

// DefaultWindow returns the published scheduling window, 2026-01-01 through
// 2026-05-31 inclusive.
func DefaultWindow() (start, end time.Time) {
	start = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// DefaultRuleset returns the coach's published timetable.
//
// Weekly pattern:
//   - Mon: Meiti 18-21, court 3
//   - Tue/Wed: Shuangyuan 19-21, court 1 (suppressed during January, see below)
//   - Thu: Shezi 18-22
//   - Sat: Shezi 14-18
//   - Sun: pending 08-12, interest poll only
//
// January Shuangyuan runs on a hand-curated rental table instead of the
// Tue/Wed pattern. New Year's Day has its own fixed Shezi hours.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Days: []DayOverride{
			{
				Date: "2026-01-01",
				Slots: []SlotTemplate{
					{Court: court.Shezi, Hour: 15, Confirmed: true},
					{Court: court.Shezi, Hour: 16, Confirmed: true},
				},
			},
		},
		Courts: []CourtOverride{
			{
				Court: court.Shuangyuan,
				From:  "2026-01-01",
				To:    "2026-01-31",
				Hours: map[string][]int{
					"2026-01-18": {15, 16, 17},
					"2026-01-23": {18, 19, 20, 21},
					"2026-01-26": {18, 19},
					"2026-01-27": {18, 19, 20},
					"2026-01-28": {18, 19, 20, 21},
					"2026-01-30": {18, 19, 20, 21},
				},
				CourtNumber: "1",
				Confirmed:   true,
			},
		},
		Weekly: []WeeklyRule{
			{Weekday: time.Tuesday, Court: court.Shuangyuan, StartHour: 19, EndHour: 21, CourtNumber: "1", Confirmed: true},
			{Weekday: time.Wednesday, Court: court.Shuangyuan, StartHour: 19, EndHour: 21, CourtNumber: "1", Confirmed: true},
			{Weekday: time.Monday, Court: court.Meiti, StartHour: 18, EndHour: 21, CourtNumber: "3", Confirmed: true},
			{Weekday: time.Thursday, Court: court.Shezi, StartHour: 18, EndHour: 22, Confirmed: true},
			{Weekday: time.Saturday, Court: court.Shezi, StartHour: 14, EndHour: 18, Confirmed: true},
			{Weekday: time.Sunday, Court: court.Pending, StartHour: 8, EndHour: 12, Confirmed: false},
		},
	}
}
