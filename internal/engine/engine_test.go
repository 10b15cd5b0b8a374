package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

// testEngine builds an engine over a fresh memory store with a fixed
// clock and sequential IDs so assertions stay deterministic.
func testEngine(t *testing.T) (*Engine, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	e := New(m, m, m, m)
	var n int
	e.newID = func() string { n++; return fmt.Sprintf("id-%03d", n) }
	e.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return e, m
}

// seedCatalogue loads a hotel with overlapping seasons, a season-less
// hotel, rooms and three users.
func seedCatalogue(t *testing.T, m *store.Memory) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, m.InsertHotel(ctx, model.Hotel{
		ID: "h1", Code: "DTHTL", Name: "Grand Downtown", Address: "12 Main Street", City: "Lisbon", Stars: 4,
		Seasons: []model.Season{
			{
				ID: "summer", Name: "Summer High", StartDate: "2024-06-01", EndDate: "2024-08-31",
				Tariffs: map[string]int64{string(model.RoomDouble): 12000, string(model.RoomSuite): 25000},
			},
			{
				// Deliberately overlaps Summer High; stored later, so it
				// only applies where the first season has no tariff entry.
				ID: "promo", Name: "July Promo", StartDate: "2024-07-01", EndDate: "2024-07-31",
				Tariffs: map[string]int64{string(model.RoomDouble): 9900, string(model.RoomSingle): 6000},
			},
		},
	}))
	require.NoError(t, m.InsertHotel(ctx, model.Hotel{
		ID: "h3", Code: "AIRPW", Name: "Airport Wing", Address: "Terminal Road 3", City: "Porto", Stars: 3,
		Seasons: []model.Season{},
	}))

	rooms := []model.Room{
		{ID: "r101", HotelID: "h1", Name: "Room 101", Type: model.RoomSingle, Location: "Grand Downtown", BasePriceCents: 7000, Available: true},
		{ID: "r102", HotelID: "h1", Name: "Room 102", Type: model.RoomDouble, Location: "Grand Downtown", BasePriceCents: 10000, Available: true},
		{ID: "r301", HotelID: "h3", Name: "Room 301", Type: model.RoomSingle, Location: "Airport Wing", BasePriceCents: 4500, Available: true},
	}
	for _, r := range rooms {
		r.Bookings = []model.Booking{}
		require.NoError(t, m.InsertRoom(ctx, r))
	}

	users := []model.User{
		{ID: "u-admin", Name: "Ada Admin", Email: "admin@example.com", Role: model.RoleAdmin},
		{ID: "u-agent", Name: "Avery Agent", Email: "agent@example.com", Role: model.RoleAgent},
		{ID: "u-client", Name: "Casey Client", Email: "client@example.com", Role: model.RoleClient},
		{ID: "u-other", Name: "Olive Other", Email: "other@example.com", Role: model.RoleClient},
	}
	for _, u := range users {
		require.NoError(t, m.InsertUser(ctx, u))
	}
}
