package engine

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ResolvePrice determines the effective nightly rate in cents for a
// room on a given date.  The date is normalized to its calendar day,
// then the owning hotel's seasons are walked in stored order; the
// first season whose inclusive [start, end] range contains the day
// and whose tariff map has an entry for the room's type wins.  When
// no season matches, or the hotel cannot be found, the room's base
// price applies.
//
// The resolver is a pure read and always yields a price.  It runs
// once per booking, at creation time against the start date; a stay
// spanning a season boundary is billed entirely at the start-date
// rate.
func (e *Engine) ResolvePrice(ctx context.Context, room model.Room, date time.Time) int64 {
	hotel, err := e.hotels.GetHotelByID(ctx, room.HotelID)
	if err != nil {
		return room.BasePriceCents
	}
	return priceForRoomType(hotel.Seasons, room, date)
}

// priceForRoomType is the season walk shared by ResolvePrice and the
// room search.  Seasons with unparseable dates are skipped rather
// than failing the lookup; write-time validation keeps them out of
// the store in the first place.
func priceForRoomType(seasons []model.Season, room model.Room, date time.Time) int64 {
	target := day(date)
	for _, s := range seasons {
		start, err := parseDay(s.StartDate)
		if err != nil {
			continue
		}
		end, err := parseDay(s.EndDate)
		if err != nil {
			continue
		}
		if target.Before(start) || target.After(end) {
			continue
		}
		if tariff, ok := s.Tariffs[string(room.Type)]; ok {
			return tariff
		}
	}
	return room.BasePriceCents
}
