// Package queue publishes and consumes booking events over AMQP. The broker
// is optional: deployments without one simply skip the wiring, and publish
// failures never reach the booking flow.
package queue

// BookingCreatedEvent is published whenever a student claims a slot. It
// carries enough for downstream consumers to notify or log without touching
// the booking store.
type BookingCreatedEvent struct {
	BookingID   string `json:"booking_id"`
	SlotID      string `json:"slot_id"`
	StudentName string `json:"student_name"`
	Phone       string `json:"phone"`
	CourtName   string `json:"court_name"`
	CourtNumber string `json:"court_number,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	CreatedAt   string `json:"created_at"`
}

// bookingQueueName is the durable queue both sides declare.
const bookingQueueName = "booking.created"
