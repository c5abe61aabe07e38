package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	start, end := DefaultWindow()
	c, err := NewCatalog(start, end, DefaultRuleset())
	require.NoError(t, err)
	return c
}

func hoursFor(slots []Slot, ct court.Type) []string {
	var out []string
	for _, s := range slots {
		if s.Court == ct {
			out = append(out, s.StartTime)
		}
	}
	return out
}

func TestDefaultTimetableNewYearsDay(t *testing.T) {
	// 2026-01-01 is a Thursday, but the holiday override replaces the usual
	// Thursday evening hours entirely.
	slots := defaultCatalog(t).ForDate("2026-01-01")

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, court.Shezi, s.Court)
		assert.True(t, s.Confirmed)
	}
	assert.Equal(t, []string{"15:00", "16:00"}, hoursFor(slots, court.Shezi))
}

func TestDefaultTimetableMondayMeiti(t *testing.T) {
	slots := defaultCatalog(t).ForDate("2026-01-05")

	require.Len(t, slots, 3)
	assert.Equal(t, []string{"18:00", "19:00", "20:00"}, hoursFor(slots, court.Meiti))
	for _, s := range slots {
		assert.Equal(t, "3", s.CourtNumber)
	}
}

func TestDefaultTimetableJanuaryShuangyuan(t *testing.T) {
	catalog := defaultCatalog(t)

	// A regular January Tuesday: the curated rental table has no entry, so
	// Shuangyuan stays silent.
	assert.Empty(t, hoursFor(catalog.ForDate("2026-01-06"), court.Shuangyuan))

	// A listed date emits exactly the table hours.
	assert.Equal(t, []string{"18:00", "19:00", "20:00", "21:00"},
		hoursFor(catalog.ForDate("2026-01-23"), court.Shuangyuan))

	// From February the Tue/Wed pattern resumes. 2026-02-03 is a Tuesday.
	assert.Equal(t, []string{"19:00", "20:00"},
		hoursFor(catalog.ForDate("2026-02-03"), court.Shuangyuan))
}

func TestDefaultTimetableOverrideAndWeeklyRuleCoexist(t *testing.T) {
	// 2026-01-18 is a Sunday listed in the Shuangyuan rental table. Both the
	// table hours and the ordinary Sunday interest-poll slots show up, each
	// driven by its own source.
	slots := defaultCatalog(t).ForDate("2026-01-18")

	assert.Equal(t, []string{"15:00", "16:00", "17:00"}, hoursFor(slots, court.Shuangyuan))
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, hoursFor(slots, court.Pending))

	for _, s := range slots {
		if s.Court == court.Pending {
			assert.False(t, s.Confirmed, "interest-poll slots are tentative")
		}
	}
}

func TestDefaultTimetableSaturdayShezi(t *testing.T) {
	// 2026-01-03 is a Saturday.
	slots := defaultCatalog(t).ForDate("2026-01-03")
	assert.Equal(t, []string{"14:00", "15:00", "16:00", "17:00"}, hoursFor(slots, court.Shezi))
}

func TestDefaultTimetableWindowBounds(t *testing.T) {
	catalog := defaultCatalog(t)

	assert.Empty(t, catalog.ForDate("2025-12-31"))
	assert.Empty(t, catalog.ForDate("2026-06-01"))
	assert.NotZero(t, catalog.Len())
}
