package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterAdmin registers back-office endpoints under /v1/admin,
// restricted to the ADMIN role: catalogue management (hotels,
// seasons, tariffs, rooms), the booking validation queue, the stats
// dashboard, and feedback/user listings.
func RegisterAdmin(e *echo.Echo, hotels *handler.AdminHotelHandler, bookings *handler.AdminBookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(string(model.RoleAdmin)),
	)

	// Catalogue
	g.POST("/hotels", hotels.CreateHotel)
	g.PUT("/hotels/:id", hotels.UpdateHotel)
	g.DELETE("/hotels/:id", hotels.DeleteHotel)
	g.POST("/hotels/:id/seasons", hotels.AddSeason)
	g.PUT("/hotels/:id/seasons/:seasonID", hotels.UpdateSeason)
	g.DELETE("/hotels/:id/seasons/:seasonID", hotels.DeleteSeason)
	g.PUT("/hotels/:id/seasons/:seasonID/tariffs", hotels.SetTariff)
	g.POST("/rooms", hotels.AddRoom)

	// Validation queue
	g.GET("/validations", bookings.PendingValidations)
	g.POST("/bookings/:id/approve", bookings.Approve)
	g.POST("/bookings/:id/reject", bookings.Reject)

	// Dashboard
	g.GET("/stats", bookings.Stats)
	g.GET("/feedback", bookings.ListFeedback)
	g.GET("/users", bookings.ListUsers)
}
