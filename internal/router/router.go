package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/libbook/seat-reservation/internal/handler"
)

// Register wires every API route onto the provided Echo instance.
// The surface is deliberately flat: three collections under /api plus
// a health check, no versioning and no authentication, matching what
// the frontend expects.
func Register(e *echo.Echo, users *handler.UserHandler, seats *handler.SeatHandler, bookings *handler.BookingHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Users: list, create, partial update.  Users are never deleted.
	api.GET("/users", users.ListUsers)
	api.POST("/users", users.CreateUser)
	api.PUT("/users/:id", users.UpdateUser)

	// Seats: list, whole-layout replace, maintenance toggle.
	api.GET("/seats", seats.ListSeats)
	api.POST("/seats", seats.ReplaceLayout)
	api.POST("/seats/toggle-maintenance/:id", seats.ToggleMaintenance)

	// Bookings: list, create with slot conflict check, cancel.
	api.GET("/bookings", bookings.ListBookings)
	api.POST("/bookings", bookings.CreateBooking)
	api.PUT("/bookings/:id/cancel", bookings.CancelBooking)
}
