package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/libbook/seat-reservation/internal/model"
)

const seatColumns = "id, label, seat_type, is_maintenance, x, y, rotation"

// SeatRepo provides methods to work with seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// List returns every seat record, in no particular order.
func (r *SeatRepo) List(ctx context.Context) ([]model.Seat, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+seatColumns+" FROM seats")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.Label, &s.Type, &s.IsMaintenance, &s.X, &s.Y, &s.Rotation); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindByID fetches a seat by id, or ErrSeatNotFound.
func (r *SeatRepo) FindByID(ctx context.Context, id string) (*model.Seat, error) {
	var s model.Seat
	err := r.db.QueryRowContext(ctx,
		"SELECT "+seatColumns+" FROM seats WHERE id = ? LIMIT 1", id).
		Scan(&s.ID, &s.Label, &s.Type, &s.IsMaintenance, &s.X, &s.Y, &s.Rotation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Upsert inserts the seat or replaces all fields of an existing row
// with the same id.
func (r *SeatRepo) Upsert(ctx context.Context, s *model.Seat) error {
	const q = `INSERT INTO seats (` + seatColumns + `)
	           VALUES (?,?,?,?,?,?,?)
	           ON DUPLICATE KEY UPDATE
	             label = VALUES(label), seat_type = VALUES(seat_type),
	             is_maintenance = VALUES(is_maintenance),
	             x = VALUES(x), y = VALUES(y), rotation = VALUES(rotation)`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.Label, s.Type, s.IsMaintenance, s.X, s.Y, s.Rotation)
	return err
}

// DeleteNotIn removes every seat whose id is not in ids and returns
// the number of deleted rows.  An empty ids slice deletes all seats;
// the layout-replace operation relies on that to clear the floor when
// given an empty layout.
func (r *SeatRepo) DeleteNotIn(ctx context.Context, ids []string) (int64, error) {
	query := "DELETE FROM seats"
	args := make([]interface{}, 0, len(ids))
	if len(ids) > 0 {
		query += " WHERE id NOT IN (?" + strings.Repeat(",?", len(ids)-1) + ")"
		for _, id := range ids {
			args = append(args, id)
		}
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
