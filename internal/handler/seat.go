package handler // handler contains seat layout handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/libbook/seat-reservation/internal/model"
	"github.com/libbook/seat-reservation/internal/repository"
)

// SeatHandler bundles the seat store for the seat endpoints.
type SeatHandler struct {
	Seats SeatStore
}

// NewSeatHandler constructs a SeatHandler and panics if the store is nil.
func NewSeatHandler(seats SeatStore) *SeatHandler {
	if seats == nil {
		panic("nil store passed to NewSeatHandler")
	}
	return &SeatHandler{Seats: seats}
}

// ListSeats handles GET /api/seats and returns every seat record.
func (h *SeatHandler) ListSeats(c echo.Context) error {
	seats, err := h.Seats.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return c.JSON(http.StatusOK, seats)
}

// ReplaceLayout handles POST /api/seats and reconciles the stored
// seat set against the supplied layout: seats absent from the payload
// are deleted, then every payload seat is upserted by id.  The two
// phases are separate statements, so a concurrent reader can observe
// a transient layout that is neither the old nor the new one.  An
// empty payload deletes every seat.
func (h *SeatHandler) ReplaceLayout(c echo.Context) error {
	var seats []model.Seat
	if err := c.Bind(&seats); err != nil { // bind JSON array body
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ids := make([]string, 0, len(seats)) // ids present in the new layout
	for _, s := range seats {
		ids = append(ids, s.ID)
	}

	ctx := c.Request().Context()
	if _, err := h.Seats.DeleteNotIn(ctx, ids); err != nil { // drop seats missing from the payload
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	for i := range seats { // upsert each seat keyed by its id
		if err := h.Seats.Upsert(ctx, &seats[i]); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ToggleMaintenance handles POST /api/seats/toggle-maintenance/:id.
// It flips the seat's maintenance flag and returns the updated seat,
// or 404 when no seat has the given id.
func (h *SeatHandler) ToggleMaintenance(c echo.Context) error {
	ctx := c.Request().Context()
	seat, err := h.Seats.FindByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrSeatNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	seat.IsMaintenance = !seat.IsMaintenance
	if err := h.Seats.Upsert(ctx, seat); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, seat)
}
