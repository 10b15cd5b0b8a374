package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
)

// BrowseHandler serves the unauthenticated catalogue: hotels with
// their seasons, and rooms with prices resolved through the season
// tariffs.
type BrowseHandler struct {
	Engine *engine.Engine
}

func NewBrowseHandler(eng *engine.Engine) *BrowseHandler {
	return &BrowseHandler{Engine: eng}
}

// ListHotels returns all hotels.
// GET /v1/hotels
func (h *BrowseHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Engine.GetHotels(c.Request().Context())
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"hotels": hotels})
}

// GetHotel returns one hotel with its season list.
// GET /v1/hotels/:id
func (h *BrowseHandler) GetHotel(c echo.Context) error {
	hotel, err := h.Engine.GetHotelByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// ListRooms searches rooms. Optional query params: hotel_id, type,
// start_date, end_date (both dates needed to exclude booked rooms;
// prices resolve at start_date, or today when absent).
// GET /v1/rooms
func (h *BrowseHandler) ListRooms(c echo.Context) error {
	f := engine.RoomFilters{
		HotelID:   c.QueryParam("hotel_id"),
		RoomType:  c.QueryParam("type"),
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	}
	rooms, err := h.Engine.GetAvailableRooms(c.Request().Context(), f)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// GetRoom returns one room with its price resolved at the optional
// pricing_date query param.
// GET /v1/rooms/:id
func (h *BrowseHandler) GetRoom(c echo.Context) error {
	room, err := h.Engine.GetRoomByID(c.Request().Context(), c.Param("id"), c.QueryParam("pricing_date"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}
