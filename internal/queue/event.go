// Package queue defines message payloads exchanged over the message
// broker and the background consumer that logs them.
package queue

// BookingCreatedEvent is published when a booking is successfully
// created.  It carries enough denormalized information for downstream
// consumers to notify or log without querying the primary database.
type BookingCreatedEvent struct {
	BookingID string `json:"booking_id"`
	SeatID    string `json:"seat_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at"`
}
