package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomView is a room with its nightly price resolved for a concrete
// date.  Search results never expose the bookings of other guests.
type RoomView struct {
	ID         string         `json:"id"`
	HotelID    string         `json:"hotel_id"`
	Name       string         `json:"name"`
	Type       model.RoomType `json:"type"`
	Location   string         `json:"location"`
	PriceCents int64          `json:"price_cents"` // resolved for the pricing date
	Available  bool           `json:"available"`
	Amenities  []string       `json:"amenities"`
}

// RoomFilters narrows the available-room search.  When both StartDate
// and EndDate are set, rooms with an overlapping booking in that
// range are excluded; prices are resolved at StartDate, or at "now"
// when it is absent.
type RoomFilters struct {
	HotelID   string
	RoomType  string
	StartDate string
	EndDate   string
}

// RoomInput carries the writable fields of a room.
type RoomInput struct {
	HotelID        string   `json:"hotel_id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	BasePriceCents int64    `json:"base_price_cents"`
	Amenities      []string `json:"amenities"`
}

// GetAvailableRooms lists rooms matching the filters with prices
// resolved per season tariffs.  This is a pure read; concurrent
// searches may run while bookings are being created, each seeing a
// consistent store snapshot.
func (e *Engine) GetAvailableRooms(ctx context.Context, f RoomFilters) ([]RoomView, error) {
	rooms, err := e.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	pricingDate := day(e.now())
	if f.StartDate != "" {
		d, err := parseDay(f.StartDate)
		if err != nil {
			return nil, err
		}
		pricingDate = d
	}
	var start, end time.Time
	checkRange := f.StartDate != "" && f.EndDate != ""
	if checkRange {
		start, err = parseDay(f.StartDate)
		if err != nil {
			return nil, err
		}
		end, err = parseDay(f.EndDate)
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			return nil, fmt.Errorf("%w: end date must be after start date", ErrValidation)
		}
	}

	out := []RoomView{}
	for _, room := range rooms {
		if f.HotelID != "" && room.HotelID != f.HotelID {
			continue
		}
		if f.RoomType != "" && string(room.Type) != f.RoomType {
			continue
		}
		if checkRange && !isRangeFree(room, start, end, "") {
			continue
		}
		out = append(out, e.roomView(ctx, room, pricingDate))
	}
	return out, nil
}

// GetRoomByID returns one room with its price resolved at
// pricingDate (YYYY-MM-DD), or at "now" when empty.
func (e *Engine) GetRoomByID(ctx context.Context, id, pricingDate string) (RoomView, error) {
	room, err := e.rooms.GetRoomByID(ctx, id)
	if err != nil {
		return RoomView{}, fmt.Errorf("%w: room %s not found", ErrNotFound, id)
	}
	date := day(e.now())
	if pricingDate != "" {
		d, err := parseDay(pricingDate)
		if err != nil {
			return RoomView{}, err
		}
		date = d
	}
	return e.roomView(ctx, room, date), nil
}

// AddRoom registers a new room under an existing hotel.  The room
// name is denormalized with the hotel name for display in search
// results and booking lists.
func (e *Engine) AddRoom(ctx context.Context, in RoomInput) (model.Room, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Room{}, fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if !model.ValidRoomType(in.Type) {
		return model.Room{}, fmt.Errorf("%w: unknown room type %q", ErrValidation, in.Type)
	}
	if in.BasePriceCents < 0 {
		return model.Room{}, fmt.Errorf("%w: base price must be non-negative", ErrValidation)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	hotel, err := e.hotels.GetHotelByID(ctx, in.HotelID)
	if err != nil {
		return model.Room{}, fmt.Errorf("%w: hotel %s not found", ErrNotFound, in.HotelID)
	}
	r := model.Room{
		ID:             e.newID(),
		HotelID:        hotel.ID,
		Name:           in.Name,
		Type:           model.RoomType(in.Type),
		Location:       hotel.Name,
		BasePriceCents: in.BasePriceCents,
		Available:      true,
		Amenities:      in.Amenities,
		Bookings:       []model.Booking{},
	}
	if err := e.rooms.InsertRoom(ctx, r); err != nil {
		return model.Room{}, err
	}
	return r, nil
}

func (e *Engine) roomView(ctx context.Context, room model.Room, date time.Time) RoomView {
	return RoomView{
		ID:         room.ID,
		HotelID:    room.HotelID,
		Name:       room.Name,
		Type:       room.Type,
		Location:   room.Location,
		PriceCents: e.ResolvePrice(ctx, room, date),
		Available:  room.Available,
		Amenities:  room.Amenities,
	}
}
