// Package repository implements MySQL persistence for the three
// record kinds.  Each repository exposes the same small contract:
// List (every record), FindBy* (first match or a not-found sentinel),
// Upsert (insert-or-replace keyed by id, atomic per key) and, for
// seats, DeleteNotIn.  Sentinel errors let handlers distinguish a
// missing record from a store failure.
package repository

import "errors"

// ErrUserNotFound is returned when a user lookup yields no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrBookingNotFound is returned when a booking lookup yields no rows.
var ErrBookingNotFound = errors.New("booking not found")
