package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
)

func TestCatalogLookups(t *testing.T) {
	rs := Ruleset{
		Weekly: []WeeklyRule{
			{Weekday: time.Monday, Court: court.Meiti, StartHour: 18, EndHour: 20, Confirmed: true},
		},
	}
	catalog, err := NewCatalog(date(2026, time.January, 1), date(2026, time.January, 31), rs)
	require.NoError(t, err)

	slot, ok := catalog.Get("m-2026-01-05-18")
	require.True(t, ok)
	assert.Equal(t, "2026-01-05", slot.Date)
	assert.Equal(t, court.Meiti, slot.Court)

	_, ok = catalog.Get("nope")
	assert.False(t, ok)

	assert.Len(t, catalog.ForDate("2026-01-05"), 2)
	assert.Empty(t, catalog.ForDate("2026-01-06"))

	start, end := catalog.Window()
	assert.Equal(t, date(2026, time.January, 1), start)
	assert.Equal(t, date(2026, time.January, 31), end)
}

func TestCatalogRejectsDuplicateIdentity(t *testing.T) {
	// Two court overrides for the same court and date collide on slot ids.
	rs := Ruleset{
		Courts: []CourtOverride{
			{Court: court.Shezi, From: "2026-01-01", To: "2026-01-31",
				Hours: map[string][]int{"2026-01-10": {15}}},
			{Court: court.Shezi, From: "2026-01-01", To: "2026-01-31",
				Hours: map[string][]int{"2026-01-10": {15}}},
		},
	}

	_, err := NewCatalog(date(2026, time.January, 1), date(2026, time.January, 31), rs)
	require.ErrorIs(t, err, ErrDuplicateSlotID)
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	catalog := defaultCatalog(t)

	all := catalog.All()
	require.NotEmpty(t, all)
	all[0].ID = "mutated"

	again := catalog.All()
	assert.NotEqual(t, "mutated", again[0].ID)
}
