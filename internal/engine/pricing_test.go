package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := parseDay(s)
	require.NoError(t, err)
	return d
}

func TestResolvePriceSeasonTariff(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	room, err := m.GetRoomByID(ctx, "r102") // Double, base 10000
	require.NoError(t, err)

	// Inside Summer High the Double tariff applies.
	require.EqualValues(t, 12000, e.ResolvePrice(ctx, room, mustDay(t, "2024-07-15")))
	// Outside any season the base price applies.
	require.EqualValues(t, 10000, e.ResolvePrice(ctx, room, mustDay(t, "2024-09-15")))
}

func TestResolvePriceSeasonBoundariesInclusive(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	room, err := m.GetRoomByID(ctx, "r102")
	require.NoError(t, err)

	require.EqualValues(t, 12000, e.ResolvePrice(ctx, room, mustDay(t, "2024-06-01")))
	require.EqualValues(t, 12000, e.ResolvePrice(ctx, room, mustDay(t, "2024-08-31")))
	require.EqualValues(t, 10000, e.ResolvePrice(ctx, room, mustDay(t, "2024-05-31")))
	require.EqualValues(t, 10000, e.ResolvePrice(ctx, room, mustDay(t, "2024-09-01")))
}

func TestResolvePriceFirstMatchingSeasonWins(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	// July is covered by both Summer High (12000) and July Promo
	// (9900) for a Double.  The season stored first wins.
	double, err := m.GetRoomByID(ctx, "r102")
	require.NoError(t, err)
	require.EqualValues(t, 12000, e.ResolvePrice(ctx, double, mustDay(t, "2024-07-10")))

	// A Single has no tariff in Summer High, so the walk falls
	// through to July Promo.
	single, err := m.GetRoomByID(ctx, "r101")
	require.NoError(t, err)
	require.EqualValues(t, 6000, e.ResolvePrice(ctx, single, mustDay(t, "2024-07-10")))
	// Outside the promo it reverts to base.
	require.EqualValues(t, 7000, e.ResolvePrice(ctx, single, mustDay(t, "2024-06-10")))
}

func TestResolvePriceMissingTariffFallsBackToBase(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	// r301 belongs to a hotel with no seasons at all.
	room, err := m.GetRoomByID(ctx, "r301")
	require.NoError(t, err)
	require.EqualValues(t, 4500, e.ResolvePrice(ctx, room, mustDay(t, "2024-07-15")))
}

func TestResolvePriceUnknownHotel(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)

	orphan := model.Room{ID: "ghost", HotelID: "nope", Type: model.RoomDouble, BasePriceCents: 8800}
	require.EqualValues(t, 8800, e.ResolvePrice(context.Background(), orphan, mustDay(t, "2024-07-15")))
}

func TestResolvePriceNormalizesTimeOfDay(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	room, err := m.GetRoomByID(ctx, "r102")
	require.NoError(t, err)

	// 23:59 local on the last season day still counts as that day.
	late := time.Date(2024, 8, 31, 23, 59, 0, 0, time.UTC)
	require.EqualValues(t, 12000, e.ResolvePrice(ctx, room, late))
}
