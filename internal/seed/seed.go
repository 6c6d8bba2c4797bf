// Package seed populates an empty store with the fixed library floor
// layout and the two bootstrap accounts.
package seed

import (
	"context"
	"log"

	"github.com/libbook/seat-reservation/internal/model"
)

// SeatStore is the slice of seat persistence the seeder needs.
type SeatStore interface {
	List(ctx context.Context) ([]model.Seat, error)
	Upsert(ctx context.Context, s *model.Seat) error
}

// UserStore is the slice of user persistence the seeder needs.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Upsert(ctx context.Context, u *model.User) error
}

// InitialSeats is the 24-seat floor layout across four zones: a PC
// corner, two quiet-zone group tables and three rows of study carrels.
var InitialSeats = []model.Seat{
	// PC corner
	{ID: "s-pc1", Label: "PC1", Type: model.SeatTypePCStation, X: 9, Y: 0, Rotation: 180},
	{ID: "s-pc2", Label: "PC2", Type: model.SeatTypePCStation, X: 10, Y: 0, Rotation: 180},
	{ID: "s-pc3", Label: "PC3", Type: model.SeatTypePCStation, X: 11, Y: 0, Rotation: 180},
	{ID: "s-pc4", Label: "PC4", Type: model.SeatTypePCStation, X: 13, Y: 1, Rotation: 225},
	// Group table 1
	{ID: "s-t1-1", Label: "T1-A", Type: model.SeatTypeQuietZone, X: 11, Y: 3, Rotation: 180},
	{ID: "s-t1-2", Label: "T1-B", Type: model.SeatTypeQuietZone, X: 11, Y: 5, Rotation: 0},
	{ID: "s-t1-3", Label: "T1-C", Type: model.SeatTypeQuietZone, X: 10, Y: 4, Rotation: 90},
	{ID: "s-t1-4", Label: "T1-D", Type: model.SeatTypeQuietZone, X: 12, Y: 4, Rotation: 270},
	// Group table 2
	{ID: "s-t2-1", Label: "T2-A", Type: model.SeatTypeQuietZone, X: 11, Y: 7, Rotation: 180},
	{ID: "s-t2-2", Label: "T2-B", Type: model.SeatTypeQuietZone, X: 11, Y: 9, Rotation: 0},
	{ID: "s-t2-3", Label: "T2-C", Type: model.SeatTypeQuietZone, X: 10, Y: 8, Rotation: 90},
	{ID: "s-t2-4", Label: "T2-D", Type: model.SeatTypeQuietZone, X: 12, Y: 8, Rotation: 270},
	// Carrels
	{ID: "s-c1", Label: "C1", Type: model.SeatTypeStandard, X: 1, Y: 4, Rotation: 90},
	{ID: "s-c2", Label: "C2", Type: model.SeatTypeStandard, X: 2, Y: 4, Rotation: 90},
	{ID: "s-c3", Label: "C3", Type: model.SeatTypeStandard, X: 3, Y: 4, Rotation: 90},
	{ID: "s-c4", Label: "C4", Type: model.SeatTypeStandard, X: 4, Y: 4, Rotation: 90},
	{ID: "s-c5", Label: "C5", Type: model.SeatTypeStandard, X: 1, Y: 6, Rotation: 90},
	{ID: "s-c6", Label: "C6", Type: model.SeatTypeStandard, X: 2, Y: 6, Rotation: 90},
	{ID: "s-c7", Label: "C7", Type: model.SeatTypeStandard, X: 3, Y: 6, Rotation: 90},
	{ID: "s-c8", Label: "C8", Type: model.SeatTypeStandard, X: 4, Y: 6, Rotation: 90},
	{ID: "s-c9", Label: "C9", Type: model.SeatTypeStandard, X: 1, Y: 8, Rotation: 90},
	{ID: "s-c10", Label: "C10", Type: model.SeatTypeStandard, X: 2, Y: 8, Rotation: 90},
	{ID: "s-c11", Label: "C11", Type: model.SeatTypeStandard, X: 3, Y: 8, Rotation: 90},
	{ID: "s-c12", Label: "C12", Type: model.SeatTypeStandard, X: 4, Y: 8, Rotation: 90},
}

// InitialUsers holds the bootstrap admin and a demo student account.
var InitialUsers = []model.User{
	{
		ID:       "admin-1",
		Name:     "Library Admin",
		Email:    "admin@library.edu",
		Password: "admin",
		Role:     model.RoleAdmin,
	},
	{
		ID:          "student-1",
		Name:        "John Doe",
		Email:       "john@student.edu",
		Password:    "pass",
		Role:        model.RoleStudent,
		StudentID:   "CS2024001",
		Department:  "Computer Science",
		YearSection: "3-A",
		Mobile:      "5550123456",
	},
}

// Run seeds seats and users independently: each kind is inserted only
// when its collection is empty, so re-running is a no-op once any
// data exists.  Errors are returned for the caller to log; seeding
// failure must not stop the server.
func Run(ctx context.Context, seats SeatStore, users UserStore) error {
	existing, err := seats.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		log.Println("seeding seats...")
		for i := range InitialSeats {
			if err := seats.Upsert(ctx, &InitialSeats[i]); err != nil {
				return err
			}
		}
	}

	current, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(current) == 0 {
		log.Println("seeding users...")
		for i := range InitialUsers {
			if err := users.Upsert(ctx, &InitialUsers[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
