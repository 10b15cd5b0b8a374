package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestAddHotelValidation(t *testing.T) {
	e, _ := testEngine(t)
	ctx := context.Background()

	valid := HotelInput{Code: "NEWH", Name: "New Hotel", Address: "1 Street", City: "Braga", Stars: 3}

	h, err := e.AddHotel(ctx, valid)
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Empty(t, h.Seasons)

	cases := []HotelInput{
		{Code: "", Name: "X", Address: "A", City: "C", Stars: 3},
		{Code: "X", Name: "", Address: "A", City: "C", Stars: 3},
		{Code: "X", Name: "N", Address: "", City: "C", Stars: 3},
		{Code: "X", Name: "N", Address: "A", City: "", Stars: 3},
		{Code: "X", Name: "N", Address: "A", City: "C", Stars: 0},
		{Code: "X", Name: "N", Address: "A", City: "C", Stars: 6},
	}
	for _, in := range cases {
		_, err := e.AddHotel(ctx, in)
		require.ErrorIs(t, err, ErrValidation)
	}

	// Duplicate code.
	_, err = e.AddHotel(ctx, valid)
	require.ErrorIs(t, err, ErrConflict)
}

func TestUpdateHotelCodeImmutable(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	updated, err := e.UpdateHotel(ctx, "h1", HotelInput{Code: "DTHTL", Name: "Grander Downtown", Address: "12 Main Street", City: "Lisbon", Stars: 5})
	require.NoError(t, err)
	assert.Equal(t, "Grander Downtown", updated.Name)
	assert.Equal(t, 5, updated.Stars)

	_, err = e.UpdateHotel(ctx, "h1", HotelInput{Code: "OTHER", Name: "Grander Downtown", Address: "12 Main Street", City: "Lisbon", Stars: 5})
	require.ErrorIs(t, err, ErrValidation)

	// Seasons survive a descriptive update.
	h, err := e.GetHotelByID(ctx, "h1")
	require.NoError(t, err)
	assert.Len(t, h.Seasons, 2)
}

func TestSeasonCRUDKeepsOrder(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	s, err := e.AddSeason(ctx, "h1", SeasonInput{Name: "Autumn", StartDate: "2024-09-01", EndDate: "2024-10-31"})
	require.NoError(t, err)
	assert.NotNil(t, s.Tariffs)

	h, err := e.GetHotelByID(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, h.Seasons, 3)
	assert.Equal(t, "Summer High", h.Seasons[0].Name)
	assert.Equal(t, "July Promo", h.Seasons[1].Name)
	assert.Equal(t, "Autumn", h.Seasons[2].Name)

	// Updating the middle season keeps its position.
	_, err = e.UpdateSeason(ctx, "h1", "promo", SeasonInput{Name: "July Promo v2", StartDate: "2024-07-01", EndDate: "2024-07-31"})
	require.NoError(t, err)
	h, err = e.GetHotelByID(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "July Promo v2", h.Seasons[1].Name)
	// Nil tariffs on update keep the existing map.
	assert.EqualValues(t, 9900, h.Seasons[1].Tariffs[string(model.RoomDouble)])

	require.NoError(t, e.DeleteSeason(ctx, "h1", "promo"))
	h, err = e.GetHotelByID(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, h.Seasons, 2)
	assert.Equal(t, "Autumn", h.Seasons[1].Name)

	require.ErrorIs(t, e.DeleteSeason(ctx, "h1", "promo"), ErrNotFound)
}

func TestSeasonValidation(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	_, err := e.AddSeason(ctx, "h1", SeasonInput{Name: "", StartDate: "2024-09-01", EndDate: "2024-10-31"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddSeason(ctx, "h1", SeasonInput{Name: "Backwards", StartDate: "2024-10-31", EndDate: "2024-09-01"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddSeason(ctx, "h1", SeasonInput{Name: "Bad tariff", StartDate: "2024-09-01", EndDate: "2024-10-31", Tariffs: map[string]int64{"Penthouse": 100}})
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddSeason(ctx, "h1", SeasonInput{Name: "Negative", StartDate: "2024-09-01", EndDate: "2024-10-31", Tariffs: map[string]int64{string(model.RoomDouble): -1}})
	require.ErrorIs(t, err, ErrValidation)

	// Single-day season is allowed.
	_, err = e.AddSeason(ctx, "h1", SeasonInput{Name: "One Day", StartDate: "2024-12-31", EndDate: "2024-12-31"})
	require.NoError(t, err)
}

func TestSetTariff(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	tariffs, err := e.SetTariff(ctx, "h1", "summer", string(model.RoomSingle), 8000)
	require.NoError(t, err)
	assert.EqualValues(t, 8000, tariffs[string(model.RoomSingle)])

	room, err := m.GetRoomByID(ctx, "r101")
	require.NoError(t, err)
	assert.EqualValues(t, 8000, e.ResolvePrice(ctx, room, mustDay(t, "2024-06-15")))

	_, err = e.SetTariff(ctx, "h1", "summer", "Penthouse", 8000)
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.SetTariff(ctx, "h1", "summer", string(model.RoomSingle), -1)
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.SetTariff(ctx, "h1", "missing", string(model.RoomSingle), 8000)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = e.SetTariff(ctx, "missing", "summer", string(model.RoomSingle), 8000)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteHotelLeavesRooms(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	require.NoError(t, e.DeleteHotel(ctx, "h1"))
	_, err := e.GetHotelByID(ctx, "h1")
	require.ErrorIs(t, err, ErrNotFound)

	// Rooms keep existing and fall back to base price.
	room, err := m.GetRoomByID(ctx, "r102")
	require.NoError(t, err)
	assert.EqualValues(t, 10000, e.ResolvePrice(ctx, room, mustDay(t, "2024-07-15")))

	require.ErrorIs(t, e.DeleteHotel(ctx, "h1"), ErrNotFound)
}
