package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// AgentHandler serves the front-desk surface: walk-in bookings on
// behalf of clients, operational status changes, consumptions and
// invoices. Agent-created bookings skip admin validation.
type AgentHandler struct {
	Engine *engine.Engine
}

func NewAgentHandler(eng *engine.Engine) *AgentHandler {
	return &AgentHandler{Engine: eng}
}

type agentCreateBookingReq struct {
	RoomID    string `json:"room_id"`
	ClientID  string `json:"client_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type statusReq struct {
	Status string `json:"status"` // Checked-in | Checked-out | No-show
}

type consumptionReq struct {
	ItemName   string `json:"item_name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// CreateBooking books a room for a client at the desk. The booking is
// auto-approved and starts Confirmed.
// POST /v1/agent/bookings
func (h *AgentHandler) CreateBooking(c echo.Context) error {
	var req agentCreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	uid, role := currentUser(c)
	d, err := h.Engine.CreateBooking(c.Request().Context(), req.RoomID, req.ClientID, req.StartDate, req.EndDate, role, uid)
	if err != nil {
		return engineError(c, err)
	}
	publishBookingEvent(queue.EventBookingConfirmed, d)
	return c.JSON(http.StatusCreated, d)
}

// HotelBookings lists bookings, optionally scoped to one hotel via
// the hotel_id query param and narrowed by status,
// validation_status, date (stay covers that day) and q (search term).
// GET /v1/agent/bookings
func (h *AgentHandler) HotelBookings(c echo.Context) error {
	f := engine.BookingFilters{
		Status:           model.BookingStatus(c.QueryParam("status")),
		ValidationStatus: model.ValidationStatus(c.QueryParam("validation_status")),
		Date:             c.QueryParam("date"),
		SearchTerm:       c.QueryParam("q"),
	}
	out, err := h.Engine.GetBookingsForHotel(c.Request().Context(), c.QueryParam("hotel_id"), f)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out, "count": len(out)})
}

// UpdateStatus applies a front-desk transition: check-in, check-out
// or no-show.
// POST /v1/agent/bookings/:id/status
func (h *AgentHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status required"})
	}
	uid, _ := currentUser(c)
	d, err := h.Engine.UpdateBookingStatus(c.Request().Context(), c.Param("id"), model.BookingStatus(req.Status), uid)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// CancelBooking cancels any booking on a guest's behalf.
// POST /v1/agent/bookings/:id/cancel
func (h *AgentHandler) CancelBooking(c echo.Context) error {
	uid, role := currentUser(c)
	d, err := h.Engine.CancelBooking(c.Request().Context(), c.Param("id"), uid, role)
	if err != nil {
		return engineError(c, err)
	}
	publishBookingEvent(queue.EventBookingCancelled, d)
	return c.JSON(http.StatusOK, d)
}

// AddConsumption appends a billable item to a checked-in booking.
// POST /v1/agent/bookings/:id/consumptions
func (h *AgentHandler) AddConsumption(c echo.Context) error {
	var req consumptionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	d, err := h.Engine.AddConsumption(c.Request().Context(), c.Param("id"), req.ItemName, req.PriceCents, req.Quantity)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

// Invoice returns the bill for a booking: room nights at the
// snapshotted rate plus consumptions.
// GET /v1/agent/bookings/:id/invoice
func (h *AgentHandler) Invoice(c echo.Context) error {
	inv, err := h.Engine.BuildInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, inv)
}
