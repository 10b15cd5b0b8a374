package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

// HotelInput carries the writable fields of a hotel.
type HotelInput struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Stars   int    `json:"stars"`
}

// SeasonInput carries the writable fields of a season.  Tariffs may
// be nil; they can be set individually later via SetTariff.
type SeasonInput struct {
	Name      string           `json:"name"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Tariffs   map[string]int64 `json:"tariffs"`
}

// GetHotels returns all hotels with their seasons.
func (e *Engine) GetHotels(ctx context.Context) ([]model.Hotel, error) {
	return e.hotels.ListHotels(ctx)
}

// GetHotelByID returns one hotel or NotFound.
func (e *Engine) GetHotelByID(ctx context.Context, id string) (model.Hotel, error) {
	h, err := e.hotels.GetHotelByID(ctx, id)
	if err != nil {
		return model.Hotel{}, fmt.Errorf("%w: hotel %s not found", ErrNotFound, id)
	}
	return h, nil
}

// AddHotel creates a hotel.  Name, code, address, city and a star
// rating between 1 and 5 are required; the code must be unique.
func (e *Engine) AddHotel(ctx context.Context, in HotelInput) (model.Hotel, error) {
	if err := validateHotelInput(in); err != nil {
		return model.Hotel{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.hotels.GetHotelByCode(ctx, in.Code); err == nil {
		return model.Hotel{}, fmt.Errorf("%w: hotel code %s must be unique", ErrConflict, in.Code)
	}
	h := model.Hotel{
		ID:      e.newID(),
		Code:    in.Code,
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		Stars:   in.Stars,
		Seasons: []model.Season{},
	}
	if err := e.hotels.InsertHotel(ctx, h); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return model.Hotel{}, fmt.Errorf("%w: hotel code %s must be unique", ErrConflict, in.Code)
		}
		return model.Hotel{}, err
	}
	return h, nil
}

// UpdateHotel edits a hotel's name, address, city and stars.  The
// code is immutable after creation; a differing code in the input is
// rejected rather than silently ignored.
func (e *Engine) UpdateHotel(ctx context.Context, id string, in HotelInput) (model.Hotel, error) {
	if err := validateHotelInput(in); err != nil {
		return model.Hotel{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	h, err := e.hotels.GetHotelByID(ctx, id)
	if err != nil {
		return model.Hotel{}, fmt.Errorf("%w: hotel %s not found for update", ErrNotFound, id)
	}
	if in.Code != h.Code {
		return model.Hotel{}, fmt.Errorf("%w: hotel code cannot be changed after creation", ErrValidation)
	}
	h.Name = in.Name
	h.Address = in.Address
	h.City = in.City
	h.Stars = in.Stars
	if err := e.hotels.UpdateHotel(ctx, h); err != nil {
		return model.Hotel{}, err
	}
	return h, nil
}

// DeleteHotel removes a hotel.  Rooms referencing it are left in
// place; the dangling reference is only logged, matching the
// historical behavior of the system.
func (e *Engine) DeleteHotel(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.hotels.GetHotelByID(ctx, id); err != nil {
		return fmt.Errorf("%w: hotel %s not found for deletion", ErrNotFound, id)
	}
	if rooms, err := e.rooms.ListRoomsByHotel(ctx, id); err == nil && len(rooms) > 0 {
		log.Printf("deleting hotel %s while %d rooms still reference it", id, len(rooms))
	}
	return e.hotels.DeleteHotel(ctx, id)
}

// AddSeason appends a season to the hotel's list.  Season order is
// significant: the pricing resolver honors it.
func (e *Engine) AddSeason(ctx context.Context, hotelID string, in SeasonInput) (model.Season, error) {
	if err := validateSeasonInput(in); err != nil {
		return model.Season{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	h, err := e.hotels.GetHotelByID(ctx, hotelID)
	if err != nil {
		return model.Season{}, fmt.Errorf("%w: hotel %s not found", ErrNotFound, hotelID)
	}
	s := model.Season{
		ID:        e.newID(),
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Tariffs:   in.Tariffs,
	}
	if s.Tariffs == nil {
		s.Tariffs = map[string]int64{}
	}
	h.Seasons = append(h.Seasons, s)
	if err := e.hotels.UpdateHotel(ctx, h); err != nil {
		return model.Season{}, err
	}
	return s, nil
}

// UpdateSeason edits a season in place, keeping its position in the
// list.  Passing nil tariffs keeps the existing tariff map.
func (e *Engine) UpdateSeason(ctx context.Context, hotelID, seasonID string, in SeasonInput) (model.Season, error) {
	if err := validateSeasonInput(in); err != nil {
		return model.Season{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	h, err := e.hotels.GetHotelByID(ctx, hotelID)
	if err != nil {
		return model.Season{}, fmt.Errorf("%w: hotel %s not found", ErrNotFound, hotelID)
	}
	for i := range h.Seasons {
		if h.Seasons[i].ID != seasonID {
			continue
		}
		h.Seasons[i].Name = in.Name
		h.Seasons[i].StartDate = in.StartDate
		h.Seasons[i].EndDate = in.EndDate
		if in.Tariffs != nil {
			h.Seasons[i].Tariffs = in.Tariffs
		}
		if err := e.hotels.UpdateHotel(ctx, h); err != nil {
			return model.Season{}, err
		}
		return h.Seasons[i], nil
	}
	return model.Season{}, fmt.Errorf("%w: season %s not found", ErrNotFound, seasonID)
}

// DeleteSeason removes a season from the hotel's list.
func (e *Engine) DeleteSeason(ctx context.Context, hotelID, seasonID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, err := e.hotels.GetHotelByID(ctx, hotelID)
	if err != nil {
		return fmt.Errorf("%w: hotel %s not found", ErrNotFound, hotelID)
	}
	for i := range h.Seasons {
		if h.Seasons[i].ID == seasonID {
			h.Seasons = append(h.Seasons[:i], h.Seasons[i+1:]...)
			return e.hotels.UpdateHotel(ctx, h)
		}
	}
	return fmt.Errorf("%w: season %s not found for deletion", ErrNotFound, seasonID)
}

// SetTariff sets the nightly override price for one room type inside
// a season.  Existing bookings are unaffected: their rate was
// snapshotted at creation.
func (e *Engine) SetTariff(ctx context.Context, hotelID, seasonID, roomType string, priceCents int64) (map[string]int64, error) {
	if !model.ValidRoomType(roomType) {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrValidation, roomType)
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("%w: tariff price must be non-negative", ErrValidation)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	h, err := e.hotels.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: hotel %s not found", ErrNotFound, hotelID)
	}
	for i := range h.Seasons {
		if h.Seasons[i].ID != seasonID {
			continue
		}
		if h.Seasons[i].Tariffs == nil {
			h.Seasons[i].Tariffs = map[string]int64{}
		}
		h.Seasons[i].Tariffs[roomType] = priceCents
		if err := e.hotels.UpdateHotel(ctx, h); err != nil {
			return nil, err
		}
		return h.Seasons[i].Tariffs, nil
	}
	return nil, fmt.Errorf("%w: season %s not found", ErrNotFound, seasonID)
}

func validateHotelInput(in HotelInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" ||
		strings.TrimSpace(in.Address) == "" || strings.TrimSpace(in.City) == "" {
		return fmt.Errorf("%w: hotel name, code, address and city are required", ErrValidation)
	}
	if in.Stars < 1 || in.Stars > 5 {
		return fmt.Errorf("%w: star rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

func validateSeasonInput(in SeasonInput) error {
	if strings.TrimSpace(in.Name) == "" || in.StartDate == "" || in.EndDate == "" {
		return fmt.Errorf("%w: season name, start date and end date are required", ErrValidation)
	}
	start, err := parseDay(in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDay(in.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: season end date cannot be before its start date", ErrValidation)
	}
	for rt, p := range in.Tariffs {
		if !model.ValidRoomType(rt) {
			return fmt.Errorf("%w: unknown room type %q in tariffs", ErrValidation, rt)
		}
		if p < 0 {
			return fmt.Errorf("%w: tariff price must be non-negative", ErrValidation)
		}
	}
	return nil
}
