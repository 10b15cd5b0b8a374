package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterAgent registers front-desk endpoints under /v1/agent.
// Routes require the AGENT or ADMIN role: admins can always do what
// an agent can. Agents create walk-in bookings (auto-approved),
// drive check-in/check-out/no-show transitions, record consumptions
// and pull invoices.
func RegisterAgent(e *echo.Echo, h *handler.AgentHandler, jwtSecret string) {
	g := e.Group(
		"/v1/agent",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(string(model.RoleAgent), string(model.RoleAdmin)),
	)
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.HotelBookings)
	g.POST("/bookings/:id/status", h.UpdateStatus)
	g.POST("/bookings/:id/cancel", h.CancelBooking)
	g.POST("/bookings/:id/consumptions", h.AddConsumption)
	g.GET("/bookings/:id/invoice", h.Invoice)
}
