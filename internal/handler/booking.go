package handler // handler contains booking handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/libbook/seat-reservation/internal/model"
	"github.com/libbook/seat-reservation/internal/queue"
	"github.com/libbook/seat-reservation/internal/repository"
)

// BookingHandler bundles the booking store and the optional event
// publisher.  Events is nil when no message broker is configured;
// publish failures never affect the request outcome.
type BookingHandler struct {
	Bookings BookingStore
	Events   *queue.Publisher
}

// NewBookingHandler constructs a BookingHandler.  The publisher may
// be nil; the store must not be.
func NewBookingHandler(bookings BookingStore, events *queue.Publisher) *BookingHandler {
	if bookings == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Events: events}
}

// ListBookings handles GET /api/bookings and returns every booking,
// cancelled ones included.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /api/bookings.  It first checks whether
// an ACTIVE booking already occupies the (seatId, date, startTime)
// slot and rejects with 409 when one does; otherwise the booking is
// persisted with status ACTIVE and returned with 201.
//
// The existence check and the insert are two separate store calls,
// not a compare-and-swap: two concurrent creates for the same slot
// can both pass the check.  Consistency stronger than that would
// need a conditional insert on a composite slot key.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var b model.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	existing, err := h.Bookings.FindActiveBySlot(ctx, b.SeatID, b.Date, b.StartTime)
	if err != nil && err != repository.ErrBookingNotFound {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if existing != nil { // slot already held by an ACTIVE booking
		return c.JSON(http.StatusConflict, echo.Map{"error": "Seat already booked"})
	}

	if b.ID == "" { // backfill an id when the client did not assign one
		b.ID = uuid.NewString()
	}
	if b.Timestamp == 0 {
		b.Timestamp = time.Now().UnixMilli()
	}
	b.Status = model.BookingActive // bookings always enter at ACTIVE

	if err := h.Bookings.Upsert(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if h.Events != nil { // best effort, errors already logged by the publisher
		if err := h.Events.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingID: b.ID,
			SeatID:    b.SeatID,
			UserID:    b.UserID,
			UserName:  b.UserName,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			CreatedAt: time.UnixMilli(b.Timestamp).UTC().Format(time.RFC3339),
		}); err != nil {
			log.Printf("booking event publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, b)
}

// CancelBooking handles PUT /api/bookings/:id/cancel.  It sets the
// booking status to CANCELLED and returns the updated record.  A
// missing id responds 200 with a null body, same as user update.
// Cancelling an already-cancelled booking rewrites the same state.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	ctx := c.Request().Context()
	b, err := h.Bookings.FindByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	b.Status = model.BookingCancelled
	if err := h.Bookings.Upsert(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}
