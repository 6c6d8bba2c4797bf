package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/libbook/seat-reservation/internal/model"
)

const bookingColumns = "id, seat_id, user_id, user_name, date, start_time, end_time, timestamp, status"

// BookingRepo provides methods to work with bookings in the database.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// List returns every booking record, in no particular order.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+bookingColumns+" FROM bookings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows.Scan, &b); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindByID fetches a booking by id, or ErrBookingNotFound.
func (r *BookingRepo) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = ? LIMIT 1", id)
	var b model.Booking
	if err := scanBooking(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindActiveBySlot returns the ACTIVE booking occupying the given
// (seatID, date, startTime) slot, or ErrBookingNotFound when the slot
// is free.  This is the existence check behind booking creation.
func (r *BookingRepo) FindActiveBySlot(ctx context.Context, seatID, date, startTime string) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+` FROM bookings
		 WHERE seat_id = ? AND date = ? AND start_time = ? AND status = ? LIMIT 1`,
		seatID, date, startTime, model.BookingActive)
	var b model.Booking
	if err := scanBooking(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Upsert inserts the booking or replaces all fields of an existing
// row with the same id.  Cancellation reuses this with the status
// field flipped.
func (r *BookingRepo) Upsert(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (` + bookingColumns + `)
	           VALUES (?,?,?,?,?,?,?,?,?)
	           ON DUPLICATE KEY UPDATE
	             seat_id = VALUES(seat_id), user_id = VALUES(user_id), user_name = VALUES(user_name),
	             date = VALUES(date), start_time = VALUES(start_time), end_time = VALUES(end_time),
	             timestamp = VALUES(timestamp), status = VALUES(status)`
	_, err := r.db.ExecContext(ctx, q, b.ID, b.SeatID, b.UserID, b.UserName,
		b.Date, b.StartTime, b.EndTime, b.Timestamp, b.Status)
	return err
}

func scanBooking(scan func(dest ...any) error, b *model.Booking) error {
	return scan(&b.ID, &b.SeatID, &b.UserID, &b.UserName,
		&b.Date, &b.StartTime, &b.EndTime, &b.Timestamp, &b.Status)
}
