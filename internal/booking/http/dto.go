package http

import (
	"time"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/booking"
)

// CreateBookingBody is the payload for POST /v1/bookings.
type CreateBookingBody struct {
	SlotID      string `json:"slot_id" binding:"required"`
	StudentName string `json:"student_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

// MonthQuery selects the calendar month for GET /v1/schedule.
type MonthQuery struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// BookingDetail is the coach-visible booking record. Public responses never
// include it; they only see the booked flag.
type BookingDetail struct {
	ID           string    `json:"id"`
	StudentName  string    `json:"student_name"`
	Phone        string    `json:"phone"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBookingDetail(b *booking.Booking) BookingDetail {
	return BookingDetail{
		ID:           b.ID,
		StudentName:  b.StudentName,
		Phone:        b.Phone,
		CalendarLink: b.CalendarLink,
		CreatedAt:    b.CreatedAt,
	}
}

// SlotResponse is one slot in the day view.
type SlotResponse struct {
	ID          string         `json:"id"`
	Court       string         `json:"court"`
	CourtName   string         `json:"court_name"`
	CourtNumber string         `json:"court_number,omitempty"`
	Date        string         `json:"date"`
	StartTime   string         `json:"start_time"`
	EndTime     string         `json:"end_time"`
	Confirmed   bool           `json:"confirmed"`
	Bookable    bool           `json:"bookable"`
	Booked      bool           `json:"booked"`
	Booking     *BookingDetail `json:"booking,omitempty"` // coach only
}

// NewSlotResponse renders a slot/booking pair, attaching contact details
// only for the coach.
func NewSlotResponse(sb booking.SlotBooking, coach bool) SlotResponse {
	resp := SlotResponse{
		ID:          sb.Slot.ID,
		Court:       string(sb.Slot.Court),
		CourtName:   sb.Slot.Court.Name(),
		CourtNumber: sb.Slot.CourtNumber,
		Date:        sb.Slot.Date,
		StartTime:   sb.Slot.StartTime,
		EndTime:     sb.Slot.EndTime,
		Confirmed:   sb.Slot.Confirmed,
		Bookable:    sb.Slot.Court.Bookable() && sb.Booking == nil,
		Booked:      sb.Booking != nil,
	}
	if coach && sb.Booking != nil {
		detail := NewBookingDetail(sb.Booking)
		resp.Booking = &detail
	}
	return resp
}

// DaySummaryResponse is one day of the month grid.
type DaySummaryResponse struct {
	Date        string   `json:"date"`
	SlotCount   int      `json:"slot_count"`
	BookedCount int      `json:"booked_count"`
	Courts      []string `json:"courts"`
}

func NewDaySummaryResponse(d booking.DaySummary) DaySummaryResponse {
	courts := make([]string, len(d.Courts))
	for i, c := range d.Courts {
		courts[i] = string(c)
	}
	return DaySummaryResponse{
		Date:        d.Date,
		SlotCount:   d.SlotCount,
		BookedCount: d.BookedCount,
		Courts:      courts,
	}
}

// CreateBookingResponse is returned on a successful booking. The client is
// expected to navigate to MailtoURI to hand off the coach notification mail.
type CreateBookingResponse struct {
	Booking   BookingDetail `json:"booking"`
	MailtoURI string        `json:"mailto_uri"`
}
