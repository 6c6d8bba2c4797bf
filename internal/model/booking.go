package model

// Booking status values.  A booking enters at ACTIVE and may only
// move to CANCELLED; CANCELLED is terminal.
const (
	BookingActive    = "ACTIVE"
	BookingCancelled = "CANCELLED"
)

// Booking reserves one seat for one date/time slot on behalf of one
// user.  The slot (SeatID, Date, StartTime) must be unique among
// ACTIVE bookings; that check happens at creation time in the handler.
// Date and the time fields are plain strings ("2024-05-01", "10:00")
// because the backend only ever compares them for equality.
//
// Fields:
//
//	ID        – unique identifier (client-assigned, generated when absent).
//	SeatID    – referenced seat (not enforced by the store).
//	UserID    – referenced user.
//	UserName  – denormalized display name of the user.
//	Date      – calendar date string.
//	StartTime – slot start, time-of-day string.
//	EndTime   – slot end, time-of-day string.
//	Timestamp – creation instant in unix milliseconds.
//	Status    – ACTIVE or CANCELLED.
type Booking struct {
	ID        string `json:"id"`
	SeatID    string `json:"seatId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
}
