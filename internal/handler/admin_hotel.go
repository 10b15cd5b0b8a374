package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
)

// AdminHotelHandler manages the catalogue: hotels, their seasons and
// tariffs, and room registration.
type AdminHotelHandler struct {
	Engine *engine.Engine
}

func NewAdminHotelHandler(eng *engine.Engine) *AdminHotelHandler {
	return &AdminHotelHandler{Engine: eng}
}

type tariffReq struct {
	RoomType   string `json:"room_type"`
	PriceCents int64  `json:"price_cents"`
}

// CreateHotel registers a hotel. The code must be unique and is
// immutable afterwards.
// POST /v1/admin/hotels
func (h *AdminHotelHandler) CreateHotel(c echo.Context) error {
	var in engine.HotelInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	hotel, err := h.Engine.AddHotel(c.Request().Context(), in)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel edits a hotel's descriptive fields.
// PUT /v1/admin/hotels/:id
func (h *AdminHotelHandler) UpdateHotel(c echo.Context) error {
	var in engine.HotelInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	hotel, err := h.Engine.UpdateHotel(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// DeleteHotel removes a hotel from the catalogue.
// DELETE /v1/admin/hotels/:id
func (h *AdminHotelHandler) DeleteHotel(c echo.Context) error {
	if err := h.Engine.DeleteHotel(c.Request().Context(), c.Param("id")); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddSeason appends a pricing season to a hotel. Season order
// matters: the first season covering a date wins.
// POST /v1/admin/hotels/:id/seasons
func (h *AdminHotelHandler) AddSeason(c echo.Context) error {
	var in engine.SeasonInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s, err := h.Engine.AddSeason(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// UpdateSeason edits a season in place, keeping its list position.
// PUT /v1/admin/hotels/:id/seasons/:seasonID
func (h *AdminHotelHandler) UpdateSeason(c echo.Context) error {
	var in engine.SeasonInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s, err := h.Engine.UpdateSeason(c.Request().Context(), c.Param("id"), c.Param("seasonID"), in)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteSeason removes a season from a hotel.
// DELETE /v1/admin/hotels/:id/seasons/:seasonID
func (h *AdminHotelHandler) DeleteSeason(c echo.Context) error {
	if err := h.Engine.DeleteSeason(c.Request().Context(), c.Param("id"), c.Param("seasonID")); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetTariff sets the nightly override price for one room type inside
// a season. Existing bookings keep their snapshotted rate.
// PUT /v1/admin/hotels/:id/seasons/:seasonID/tariffs
func (h *AdminHotelHandler) SetTariff(c echo.Context) error {
	var req tariffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	tariffs, err := h.Engine.SetTariff(c.Request().Context(), c.Param("id"), c.Param("seasonID"), req.RoomType, req.PriceCents)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tariffs": tariffs})
}

// AddRoom registers a room under a hotel.
// POST /v1/admin/rooms
func (h *AdminHotelHandler) AddRoom(c echo.Context) error {
	var in engine.RoomInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	room, err := h.Engine.AddRoom(c.Request().Context(), in)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}
