package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

// AdminBookingHandler serves the back-office surface: the validation
// queue for client bookings, the statistics dashboard, feedback and
// user listings.
type AdminBookingHandler struct {
	Engine *engine.Engine
	Users  store.UserStore
}

func NewAdminBookingHandler(eng *engine.Engine, users store.UserStore) *AdminBookingHandler {
	return &AdminBookingHandler{Engine: eng, Users: users}
}

type rejectReq struct {
	Reason string `json:"reason"`
}

// PendingValidations lists client bookings awaiting an admin
// decision, oldest stay first.
// GET /v1/admin/validations
func (h *AdminBookingHandler) PendingValidations(c echo.Context) error {
	f := engine.BookingFilters{ValidationStatus: model.ValidationPending}
	out, err := h.Engine.GetBookingsForHotel(c.Request().Context(), c.QueryParam("hotel_id"), f)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out, "count": len(out)})
}

// Approve confirms a pending booking.
// POST /v1/admin/bookings/:id/approve
func (h *AdminBookingHandler) Approve(c echo.Context) error {
	uid, _ := currentUser(c)
	d, err := h.Engine.AdminApprove(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return engineError(c, err)
	}
	publishBookingEvent(queue.EventBookingConfirmed, d)
	return c.JSON(http.StatusOK, d)
}

// Reject declines a pending booking. A reason is mandatory.
// POST /v1/admin/bookings/:id/reject
func (h *AdminBookingHandler) Reject(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	uid, _ := currentUser(c)
	d, err := h.Engine.AdminReject(c.Request().Context(), c.Param("id"), uid, req.Reason)
	if err != nil {
		return engineError(c, err)
	}
	publishBookingEvent(queue.EventBookingRejected, d)
	return c.JSON(http.StatusOK, d)
}

// Stats returns the dashboard aggregate: bookings, revenue,
// occupancy and feedback counts.
// GET /v1/admin/stats
func (h *AdminBookingHandler) Stats(c echo.Context) error {
	st, err := h.Engine.Stats(c.Request().Context())
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

// ListFeedback returns every feedback entry.
// GET /v1/admin/feedback
func (h *AdminBookingHandler) ListFeedback(c echo.Context) error {
	fb, err := h.Engine.ListFeedback(c.Request().Context())
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"feedback": fb, "count": len(fb)})
}

// ListUsers returns all accounts without password hashes.
// GET /v1/admin/users
func (h *AdminBookingHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]userPart, 0, len(users))
	for _, u := range users {
		out = append(out, userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out, "count": len(out)})
}
