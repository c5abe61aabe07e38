package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/court"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/notify"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/queue"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/schedule"
)

// AddressResolver supplies the venue address annotation used in calendar
// links. Implementations must be non-blocking and always return something
// usable (a fallback at worst).
type AddressResolver interface {
	Address(t court.Type) (address, mapURL string)
}

// EventPublisher pushes booking events to the message broker. Failures are
// the publisher's problem: the booking flow never observes them.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent)
}

// BookRequest carries a booking form submission.
type BookRequest struct {
	SlotID      string
	StudentName string
	Phone       string
}

// BookResult is a successful booking plus the side-channel artifacts the
// client needs to act on (mail client hand-off).
type BookResult struct {
	Booking   *Booking
	MailtoURI string
}

// SlotBooking pairs a slot with its booking, nil while the slot is open.
type SlotBooking struct {
	Slot    schedule.Slot
	Booking *Booking
}

// DaySummary is the per-day aggregate behind the calendar grid.
type DaySummary struct {
	Date        string
	SlotCount   int
	BookedCount int
	Courts      []court.Type
}

type Service interface {
	Book(ctx context.Context, req BookRequest) (*BookResult, error)
	ListForDate(ctx context.Context, date string) ([]SlotBooking, error)
	MonthSummary(ctx context.Context, year int, month time.Month) ([]DaySummary, error)
}

type service struct {
	catalog    *schedule.Catalog
	repo       Repository
	resolver   AddressResolver // optional
	publisher  EventPublisher  // optional
	coachEmail string

	// mu serializes the existence check and the insert. The repository
	// enforces slot uniqueness on its own, but the critical section keeps
	// the first-writer-wins outcome deterministic within one process.
	mu sync.Mutex
}

func NewService(catalog *schedule.Catalog, repo Repository, resolver AddressResolver, publisher EventPublisher, coachEmail string) Service {
	return &service{
		catalog:    catalog,
		repo:       repo,
		resolver:   resolver,
		publisher:  publisher,
		coachEmail: coachEmail,
	}
}

func (s *service) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	name := strings.TrimSpace(req.StudentName)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, ErrInvalidInput
	}

	slot, ok := s.catalog.Get(req.SlotID)
	if !ok {
		return nil, ErrSlotNotFound
	}
	if !slot.Court.Bookable() {
		return nil, ErrNotBookable
	}

	courtName := slot.Court.Name()
	address, _ := s.venueAddress(slot.Court)

	b := &Booking{
		ID:          uuid.NewString(),
		SlotID:      slot.ID,
		StudentName: name,
		Phone:       phone,
		CalendarLink: notify.CalendarLink(notify.CalendarEvent{
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			CourtName: courtName,
			Address:   address,
			Student:   name,
		}),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	existing, err := s.repo.GetBySlotID(ctx, slot.ID)
	if err == nil && existing != nil {
		err = ErrAlreadyBooked
	}
	if err == nil {
		err = s.repo.Insert(ctx, b)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingID:   b.ID,
			SlotID:      slot.ID,
			StudentName: name,
			Phone:       phone,
			CourtName:   courtName,
			CourtNumber: slot.CourtNumber,
			Date:        slot.Date,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}

	mailto := notify.MailtoURI(s.coachEmail, notify.BookingMail{
		StudentName: name,
		Phone:       phone,
		Date:        slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		CourtName:   courtName,
		CourtNumber: slot.CourtNumber,
	})

	return &BookResult{Booking: b, MailtoURI: mailto}, nil
}

func (s *service) ListForDate(ctx context.Context, date string) ([]SlotBooking, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}

	slots := s.catalog.ForDate(date)
	bySlot, err := s.bookingIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SlotBooking, len(slots))
	for i, slot := range slots {
		out[i] = SlotBooking{Slot: slot, Booking: bySlot[slot.ID]}
	}
	return out, nil
}

func (s *service) MonthSummary(ctx context.Context, year int, month time.Month) ([]DaySummary, error) {
	bySlot, err := s.bookingIndex(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var out []DaySummary
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(schedule.DateLayout)
		slots := s.catalog.ForDate(date)
		if len(slots) == 0 {
			continue
		}

		sum := DaySummary{Date: date, SlotCount: len(slots)}
		seen := make(map[court.Type]bool)
		for _, slot := range slots {
			if bySlot[slot.ID] != nil {
				sum.BookedCount++
			}
			if !seen[slot.Court] {
				seen[slot.Court] = true
				sum.Courts = append(sum.Courts, slot.Court)
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

// bookingIndex loads all bookings keyed by slot id for O(1) joins.
func (s *service) bookingIndex(ctx context.Context) (map[string]*Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	bySlot := make(map[string]*Booking, len(bookings))
	for _, b := range bookings {
		bySlot[b.SlotID] = b
	}
	return bySlot, nil
}

// venueAddress asks the resolver when one is wired, falling back to the bare
// venue name otherwise.
func (s *service) venueAddress(t court.Type) (address, mapURL string) {
	if s.resolver != nil {
		return s.resolver.Address(t)
	}
	return t.Name(), ""
}
