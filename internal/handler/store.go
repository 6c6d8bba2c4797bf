package handler

import (
	"context"

	"github.com/libbook/seat-reservation/internal/model"
)

// The handlers consume these narrow store interfaces rather than the
// concrete MySQL repositories, so tests can substitute in-memory
// fakes.  The repository types in internal/repository satisfy them.

// UserStore persists User records keyed by their caller-assigned id.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Upsert(ctx context.Context, u *model.User) error
}

// SeatStore persists Seat records and supports the layout
// reconciliation delete.
type SeatStore interface {
	List(ctx context.Context) ([]model.Seat, error)
	FindByID(ctx context.Context, id string) (*model.Seat, error)
	Upsert(ctx context.Context, s *model.Seat) error
	DeleteNotIn(ctx context.Context, ids []string) (int64, error)
}

// BookingStore persists Booking records and answers the slot
// existence check used at creation time.
type BookingStore interface {
	List(ctx context.Context) ([]model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindActiveBySlot(ctx context.Context, seatID, date, startTime string) (*model.Booking, error)
	Upsert(ctx context.Context, b *model.Booking) error
}
