package schedule

import (
	"fmt"
	"time"
)

// Catalog is the immutable slot index built once at startup.
// Lookups never hit the generator again: the slot list is static for the
// whole process lifetime.
type Catalog struct {
	start  time.Time
	end    time.Time
	slots  []Slot
	byID   map[string]int
	byDate map[string][]int
}

// NewCatalog generates the slot list for the window and indexes it.
// A duplicate slot identity is a configuration error.
func NewCatalog(start, end time.Time, rs Ruleset) (*Catalog, error) {
	slots, err := Generate(start, end, rs)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		start:  start,
		end:    end,
		slots:  slots,
		byID:   make(map[string]int, len(slots)),
		byDate: make(map[string][]int),
	}
	for i, s := range slots {
		if _, exists := c.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlotID, s.ID)
		}
		c.byID[s.ID] = i
		c.byDate[s.Date] = append(c.byDate[s.Date], i)
	}
	return c, nil
}

// Get returns the slot with the given identity.
func (c *Catalog) Get(id string) (Slot, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Slot{}, false
	}
	return c.slots[i], true
}

// ForDate returns the slots on the given date in generation order.
// Unknown or unscheduled dates return an empty slice.
func (c *Catalog) ForDate(date string) []Slot {
	idx := c.byDate[date]
	out := make([]Slot, len(idx))
	for i, j := range idx {
		out[i] = c.slots[j]
	}
	return out
}

// All returns a copy of the full slot list in generation order.
func (c *Catalog) All() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Len returns the number of slots in the catalog.
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Window returns the inclusive date bounds the catalog was generated for.
func (c *Catalog) Window() (start, end time.Time) {
	return c.start, c.end
}
