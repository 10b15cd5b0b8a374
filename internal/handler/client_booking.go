package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// ClientHandler serves the guest self-service surface: creating and
// cancelling own bookings, listing them, and leaving feedback.
type ClientHandler struct {
	Engine *engine.Engine
}

func NewClientHandler(eng *engine.Engine) *ClientHandler {
	return &ClientHandler{Engine: eng}
}

type createBookingReq struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type feedbackReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateBooking books a room for the authenticated client. The
// booking starts pending admin approval.
// POST /v1/bookings
func (h *ClientHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	uid, role := currentUser(c)
	d, err := h.Engine.CreateBooking(c.Request().Context(), req.RoomID, uid, req.StartDate, req.EndDate, role, uid)
	if err != nil {
		return engineError(c, err)
	}
	publishBookingEvent(queue.EventBookingCreated, d)
	return c.JSON(http.StatusCreated, d)
}

// MyBookings lists the client's bookings, newest first.
// GET /v1/my-bookings
func (h *ClientHandler) MyBookings(c echo.Context) error {
	uid, _ := currentUser(c)
	out, err := h.Engine.GetUserBookings(c.Request().Context(), uid)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out, "count": len(out)})
}

// CancelBooking cancels one of the client's own bookings.
// POST /v1/bookings/:id/cancel
func (h *ClientHandler) CancelBooking(c echo.Context) error {
	uid, role := currentUser(c)
	d, err := h.Engine.CancelBooking(c.Request().Context(), c.Param("id"), uid, role)
	if err != nil {
		return engineError(c, err)
	}
	publishBookingEvent(queue.EventBookingCancelled, d)
	return c.JSON(http.StatusOK, d)
}

// SubmitFeedback stores a 1..5 rating for one of the client's
// bookings; resubmitting replaces the earlier entry.
// POST /v1/bookings/:id/feedback
func (h *ClientHandler) SubmitFeedback(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	uid, _ := currentUser(c)
	f, err := h.Engine.SubmitFeedback(c.Request().Context(), c.Param("id"), uid, req.Rating, req.Comment)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

// GetFeedback returns the client's feedback for a booking.
// GET /v1/bookings/:id/feedback
func (h *ClientHandler) GetFeedback(c echo.Context) error {
	uid, _ := currentUser(c)
	f, err := h.Engine.GetFeedback(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}
