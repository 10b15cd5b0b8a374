package store

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// SeedDemo loads the demo catalogue and three accounts into an empty
// memory store: one hotel with overlapping seasons to exercise the
// pricing resolver, one seaside hotel with a single peak season, and
// one bare hotel with no seasons at all.
//
// Accounts (password "password123"): admin@example.com,
// agent@example.com, client@example.com.
func SeedDemo(ctx context.Context, m *Memory, bcryptCost int) error {
	hotels := []model.Hotel{
		{
			ID: "h1", Code: "DTHTL", Name: "Grand Downtown", Address: "12 Main Street", City: "Lisbon", Stars: 4,
			Seasons: []model.Season{
				{
					ID: "h1-summer", Name: "Summer High", StartDate: "2024-06-01", EndDate: "2024-08-31",
					Tariffs: map[string]int64{
						string(model.RoomSingle): 9000,
						string(model.RoomDouble): 12000,
						string(model.RoomSuite):  25000,
					},
				},
				{
					ID: "h1-winter", Name: "Winter Low", StartDate: "2024-11-01", EndDate: "2025-02-28",
					Tariffs: map[string]int64{
						string(model.RoomSingle): 5500,
						string(model.RoomDouble): 7500,
					},
				},
			},
		},
		{
			ID: "h2", Code: "SVRST", Name: "Sea View Resort", Address: "1 Ocean Drive", City: "Faro", Stars: 5,
			Seasons: []model.Season{
				{
					ID: "h2-peak", Name: "Peak Season", StartDate: "2024-07-01", EndDate: "2024-09-15",
					Tariffs: map[string]int64{
						string(model.RoomDouble):        18000,
						string(model.RoomDoubleConfort): 21000,
						string(model.RoomSuite):         40000,
					},
				},
			},
		},
		{
			ID: "h3", Code: "AIRPW", Name: "Airport Wing", Address: "Terminal Road 3", City: "Porto", Stars: 3,
			Seasons: []model.Season{},
		},
	}
	for _, h := range hotels {
		if err := m.InsertHotel(ctx, h); err != nil {
			return err
		}
	}

	rooms := []model.Room{
		{ID: "r101", HotelID: "h1", Name: "Room 101", Type: model.RoomSingle, Location: "Grand Downtown", BasePriceCents: 7000, Available: true, Amenities: []string{"wifi", "tv"}},
		{ID: "r102", HotelID: "h1", Name: "Room 102", Type: model.RoomDouble, Location: "Grand Downtown", BasePriceCents: 10000, Available: true, Amenities: []string{"wifi", "tv", "minibar"}},
		{ID: "r103", HotelID: "h1", Name: "Suite 103", Type: model.RoomSuite, Location: "Grand Downtown", BasePriceCents: 20000, Available: true, Amenities: []string{"wifi", "tv", "minibar", "balcony"}},
		{ID: "r201", HotelID: "h2", Name: "Room 201", Type: model.RoomDouble, Location: "Sea View Resort", BasePriceCents: 14000, Available: true, Amenities: []string{"wifi", "sea view"}},
		{ID: "r202", HotelID: "h2", Name: "Room 202", Type: model.RoomDoubleConfort, Location: "Sea View Resort", BasePriceCents: 16000, Available: true, Amenities: []string{"wifi", "sea view", "minibar"}},
		{ID: "r301", HotelID: "h3", Name: "Room 301", Type: model.RoomSingle, Location: "Airport Wing", BasePriceCents: 4500, Available: true, Amenities: []string{"wifi"}},
	}
	for _, r := range rooms {
		r.Bookings = []model.Booking{}
		if err := m.InsertRoom(ctx, r); err != nil {
			return err
		}
	}

	hash, err := utils.HashPassword("password123", bcryptCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	users := []model.User{
		{ID: "u-admin", Name: "Ada Admin", Email: "admin@example.com", PasswordHash: hash, Role: model.RoleAdmin, CreatedAt: now},
		{ID: "u-agent", Name: "Avery Agent", Email: "agent@example.com", PasswordHash: hash, Role: model.RoleAgent, CreatedAt: now},
		{ID: "u-client", Name: "Casey Client", Email: "client@example.com", PasswordHash: hash, Role: model.RoleClient, CreatedAt: now},
	}
	for _, u := range users {
		if err := m.InsertUser(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
