package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterClient registers guest self-service endpoints under /v1.
// All routes require a valid JWT with the CLIENT role. Clients book
// rooms for themselves, list and cancel their own bookings, and leave
// feedback on them.
func RegisterClient(e *echo.Echo, h *handler.ClientHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(string(model.RoleClient)),
	)
	g.POST("/bookings", h.CreateBooking)
	g.GET("/my-bookings", h.MyBookings)
	g.POST("/bookings/:id/cancel", h.CancelBooking)
	g.POST("/bookings/:id/feedback", h.SubmitFeedback)
	g.GET("/bookings/:id/feedback", h.GetFeedback)
}
