package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestGetAvailableRoomsFilters(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	all, err := e.GetAvailableRooms(ctx, RoomFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byHotel, err := e.GetAvailableRooms(ctx, RoomFilters{HotelID: "h1"})
	require.NoError(t, err)
	require.Len(t, byHotel, 2)

	byType, err := e.GetAvailableRooms(ctx, RoomFilters{RoomType: string(model.RoomDouble)})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "r102", byType[0].ID)
}

func TestGetAvailableRoomsPricesAtStartDate(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	out, err := e.GetAvailableRooms(ctx, RoomFilters{HotelID: "h1", RoomType: string(model.RoomDouble), StartDate: "2024-07-15", EndDate: "2024-07-18"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.EqualValues(t, 12000, out[0].PriceCents)

	out, err = e.GetAvailableRooms(ctx, RoomFilters{HotelID: "h1", RoomType: string(model.RoomDouble), StartDate: "2024-09-15", EndDate: "2024-09-18"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.EqualValues(t, 10000, out[0].PriceCents)
}

func TestGetAvailableRoomsExcludesBookedRanges(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	_, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-14", model.RoleClient, "u-client")
	require.NoError(t, err)

	// Overlapping search excludes the booked room.
	out, err := e.GetAvailableRooms(ctx, RoomFilters{HotelID: "h1", StartDate: "2024-07-12", EndDate: "2024-07-16"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "r101", out[0].ID)

	// Back-to-back search starting on the checkout day includes it.
	out, err = e.GetAvailableRooms(ctx, RoomFilters{HotelID: "h1", StartDate: "2024-07-14", EndDate: "2024-07-16"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Without a date range every room is listed.
	out, err = e.GetAvailableRooms(ctx, RoomFilters{HotelID: "h1"})
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestGetAvailableRoomsBadRange(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)

	_, err := e.GetAvailableRooms(context.Background(), RoomFilters{StartDate: "2024-07-14", EndDate: "2024-07-14"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetRoomByIDPricingDate(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	rv, err := e.GetRoomByID(ctx, "r102", "2024-07-15")
	require.NoError(t, err)
	assert.EqualValues(t, 12000, rv.PriceCents)

	// Empty pricing date resolves at the engine clock (May 1st, off
	// season).
	rv, err = e.GetRoomByID(ctx, "r102", "")
	require.NoError(t, err)
	assert.EqualValues(t, 10000, rv.PriceCents)

	_, err = e.GetRoomByID(ctx, "missing", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddRoom(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	r, err := e.AddRoom(ctx, RoomInput{HotelID: "h1", Name: "Room 104", Type: string(model.RoomSuite), BasePriceCents: 30000, Amenities: []string{"jacuzzi"}})
	require.NoError(t, err)
	assert.Equal(t, "Grand Downtown", r.Location)
	assert.True(t, r.Available)

	_, err = e.AddRoom(ctx, RoomInput{HotelID: "h1", Name: "", Type: string(model.RoomSuite), BasePriceCents: 100})
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddRoom(ctx, RoomInput{HotelID: "h1", Name: "Room X", Type: "Penthouse", BasePriceCents: 100})
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddRoom(ctx, RoomInput{HotelID: "h1", Name: "Room X", Type: string(model.RoomSingle), BasePriceCents: -1})
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddRoom(ctx, RoomInput{HotelID: "missing", Name: "Room X", Type: string(model.RoomSingle), BasePriceCents: 100})
	require.ErrorIs(t, err, ErrNotFound)
}
