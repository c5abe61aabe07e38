package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/pkg/apperror"
)

var (
	ErrAlreadyBooked = apperror.New(http.StatusConflict, "slot already booked")
	ErrSlotNotFound  = apperror.New(http.StatusNotFound, "slot not found")
	ErrNotBookable   = apperror.New(http.StatusUnprocessableEntity, "slot does not accept bookings")
	ErrInvalidInput  = apperror.New(http.StatusBadRequest, "student name and phone are required")
)

// Booking is a student's claim on exactly one slot. A booking is written once
// and never updated; cancellation is intentionally unsupported.
//
// JSON tags follow the persisted store format: a flat array of
// {id, slotId, studentName, phone, calendarLink?} records.
type Booking struct {
	ID           string    `json:"id"`
	SlotID       string    `json:"slotId"`
	StudentName  string    `json:"studentName"`
	Phone        string    `json:"phone"`
	CalendarLink string    `json:"calendarLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}
