package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestSubmitFeedback(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)

	_, err = e.SubmitFeedback(ctx, d.BookingID, "u-client", 0, "meh")
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.SubmitFeedback(ctx, d.BookingID, "u-client", 6, "great")
	require.ErrorIs(t, err, ErrValidation)

	// Only the booking owner may rate it.
	_, err = e.SubmitFeedback(ctx, d.BookingID, "u-other", 4, "not mine")
	require.ErrorIs(t, err, ErrForbidden)

	f, err := e.SubmitFeedback(ctx, d.BookingID, "u-client", 4, "  nice stay  ")
	require.NoError(t, err)
	assert.Equal(t, "nice stay", f.Comment)

	// Resubmitting replaces rather than duplicates.
	_, err = e.SubmitFeedback(ctx, d.BookingID, "u-client", 5, "upgraded opinion")
	require.NoError(t, err)

	got, err := e.GetFeedback(ctx, d.BookingID, "u-client")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "upgraded opinion", got.Comment)

	all, err := e.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestGetFeedbackMissing(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)

	_, err = e.GetFeedback(ctx, d.BookingID, "u-client")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = e.SubmitFeedback(ctx, "missing", "u-client", 3, "x")
	require.ErrorIs(t, err, ErrNotFound)
}
