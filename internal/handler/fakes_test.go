package handler

import (
	"context"

	"github.com/libbook/seat-reservation/internal/model"
	"github.com/libbook/seat-reservation/internal/repository"
)

// In-memory store fakes backing the handler tests.  Each keeps its
// records in a map keyed by id and can be primed with a forced error
// to exercise the store-failure paths.

type fakeUserStore struct {
	users map[string]model.User
	err   error
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]model.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) List(context.Context) ([]model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) Upsert(_ context.Context, u *model.User) error {
	if s.err != nil {
		return s.err
	}
	s.users[u.ID] = *u
	return nil
}

type fakeSeatStore struct {
	seats map[string]model.Seat
	err   error
}

func newFakeSeatStore(seats ...model.Seat) *fakeSeatStore {
	s := &fakeSeatStore{seats: make(map[string]model.Seat)}
	for _, seat := range seats {
		s.seats[seat.ID] = seat
	}
	return s
}

func (s *fakeSeatStore) List(context.Context) ([]model.Seat, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Seat, 0, len(s.seats))
	for _, seat := range s.seats {
		out = append(out, seat)
	}
	return out, nil
}

func (s *fakeSeatStore) FindByID(_ context.Context, id string) (*model.Seat, error) {
	if s.err != nil {
		return nil, s.err
	}
	seat, ok := s.seats[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	return &seat, nil
}

func (s *fakeSeatStore) Upsert(_ context.Context, seat *model.Seat) error {
	if s.err != nil {
		return s.err
	}
	s.seats[seat.ID] = *seat
	return nil
}

func (s *fakeSeatStore) DeleteNotIn(_ context.Context, ids []string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	var n int64
	for id := range s.seats {
		if _, ok := keep[id]; !ok {
			delete(s.seats, id)
			n++
		}
	}
	return n, nil
}

type fakeBookingStore struct {
	bookings map[string]model.Booking
	err      error
}

func newFakeBookingStore(bookings ...model.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: make(map[string]model.Booking)}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *fakeBookingStore) List(context.Context) ([]model.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeBookingStore) FindByID(_ context.Context, id string) (*model.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	return &b, nil
}

func (s *fakeBookingStore) FindActiveBySlot(_ context.Context, seatID, date, startTime string) (*model.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, b := range s.bookings {
		if b.SeatID == seatID && b.Date == date && b.StartTime == startTime && b.Status == model.BookingActive {
			return &b, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (s *fakeBookingStore) Upsert(_ context.Context, b *model.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.bookings[b.ID] = *b
	return nil
}

func (s *fakeBookingStore) activeCount(seatID, date, startTime string) int {
	n := 0
	for _, b := range s.bookings {
		if b.SeatID == seatID && b.Date == date && b.StartTime == startTime && b.Status == model.BookingActive {
			n++
		}
	}
	return n
}
