package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestCreateBookingClientPendingWithSnapshot(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPendingApproval, d.Status)
	assert.Equal(t, model.ValidationPending, d.ValidationStatus)
	assert.Empty(t, d.ValidatedBy)
	assert.Empty(t, d.AgentID)
	assert.EqualValues(t, 12000, d.BookedPriceCents) // Summer High tariff at the start date
	assert.Equal(t, "Room 102", d.RoomName)
	assert.Equal(t, "Casey Client", d.ClientName)
}

func TestCreateBookingSnapshotSurvivesTariffEdit(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)
	require.EqualValues(t, 12000, d.BookedPriceCents)

	_, err = e.SetTariff(ctx, "h1", "summer", string(model.RoomDouble), 19999)
	require.NoError(t, err)

	_, b, err := m.FindBooking(ctx, d.BookingID)
	require.NoError(t, err)
	assert.EqualValues(t, 12000, b.BookedPriceCents)
}

func TestCreateBookingAgentAutoApproved(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleAgent, "u-agent")
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, d.Status)
	assert.Equal(t, model.ValidationApproved, d.ValidationStatus)
	assert.Equal(t, "auto-approved-agent", d.ValidatedBy)
	assert.Equal(t, "u-agent", d.AgentID)
}

func TestCreateBookingAdminAutoApprovedNoAgent(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)

	d, err := e.CreateBooking(context.Background(), "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleAdmin, "u-admin")
	require.NoError(t, err)

	assert.Equal(t, "auto-approved-admin", d.ValidatedBy)
	assert.Empty(t, d.AgentID)
}

func TestCreateBookingConflicts(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	_, err := e.CreateBooking(ctx, "r102", "u-client", "2024-03-01", "2024-03-05", model.RoleClient, "u-client")
	require.NoError(t, err)

	// Overlapping range on the same room is rejected.
	_, err = e.CreateBooking(ctx, "r102", "u-other", "2024-03-04", "2024-03-06", model.RoleClient, "u-other")
	require.ErrorIs(t, err, ErrConflict)

	// Pending bookings block the range too.
	_, err = e.CreateBooking(ctx, "r102", "u-other", "2024-03-01", "2024-03-05", model.RoleClient, "u-other")
	require.ErrorIs(t, err, ErrConflict)

	// A different room is unaffected.
	_, err = e.CreateBooking(ctx, "r101", "u-other", "2024-03-04", "2024-03-06", model.RoleClient, "u-other")
	require.NoError(t, err)
}

func TestCreateBookingSharedBoundaryAllowed(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	_, err := e.CreateBooking(ctx, "r102", "u-client", "2024-03-01", "2024-03-03", model.RoleClient, "u-client")
	require.NoError(t, err)

	// Half-open ranges: one guest leaves on the 3rd, the next arrives
	// the same day.
	_, err = e.CreateBooking(ctx, "r102", "u-other", "2024-03-03", "2024-03-05", model.RoleClient, "u-other")
	require.NoError(t, err)
}

func TestCreateBookingCancelledFreesRange(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-03-01", "2024-03-05", model.RoleClient, "u-client")
	require.NoError(t, err)
	_, err = e.CancelBooking(ctx, d.BookingID, "u-client", model.RoleClient)
	require.NoError(t, err)

	_, err = e.CreateBooking(ctx, "r102", "u-other", "2024-03-02", "2024-03-04", model.RoleClient, "u-other")
	require.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	_, err := e.CreateBooking(ctx, "r102", "u-client", "2024-03-05", "2024-03-05", model.RoleClient, "u-client")
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.CreateBooking(ctx, "r102", "u-client", "2024-03-05", "2024-03-01", model.RoleClient, "u-client")
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.CreateBooking(ctx, "r102", "u-client", "not-a-date", "2024-03-05", model.RoleClient, "u-client")
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.CreateBooking(ctx, "missing", "u-client", "2024-03-01", "2024-03-05", model.RoleClient, "u-client")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApproveRejectLifecycle(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)

	approved, err := e.AdminApprove(ctx, d.BookingID, "u-admin")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, approved.Status)
	assert.Equal(t, model.ValidationApproved, approved.ValidationStatus)
	assert.Equal(t, "u-admin", approved.ValidatedBy)

	// A second decision on the same booking fails either way.
	_, err = e.AdminApprove(ctx, d.BookingID, "u-admin")
	require.ErrorIs(t, err, ErrAlreadyDecided)
	_, err = e.AdminReject(ctx, d.BookingID, "u-admin", "changed my mind")
	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestRejectRequiresReason(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)

	_, err = e.AdminReject(ctx, d.BookingID, "u-admin", "   ")
	require.ErrorIs(t, err, ErrReasonRequired)

	rejected, err := e.AdminReject(ctx, d.BookingID, "u-admin", "no availability for maintenance")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, rejected.Status)
	assert.Equal(t, model.ValidationRejected, rejected.ValidationStatus)
	assert.Equal(t, "no availability for maintenance", rejected.ValidationReason)
}

func TestCancelBookingRules(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleClient, "u-client")
	require.NoError(t, err)

	// A different client cannot cancel someone else's booking.
	_, err = e.CancelBooking(ctx, d.BookingID, "u-other", model.RoleClient)
	require.ErrorIs(t, err, ErrForbidden)

	// An agent can.
	cancelled, err := e.CancelBooking(ctx, d.BookingID, "u-agent", model.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.Equal(t, model.ValidationNA, cancelled.ValidationStatus)

	// Cancelling twice fails.
	_, err = e.CancelBooking(ctx, d.BookingID, "u-agent", model.RoleAgent)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelAfterCheckoutRejected(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleAgent, "u-agent")
	require.NoError(t, err)
	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedIn, "u-agent")
	require.NoError(t, err)
	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedOut, "u-agent")
	require.NoError(t, err)

	_, err = e.CancelBooking(ctx, d.BookingID, "u-agent", model.RoleAgent)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStatusTransitions(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleAgent, "u-agent")
	require.NoError(t, err)

	// Pending-shaped transitions are illegal from Confirmed.
	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedOut, "u-agent")
	require.ErrorIs(t, err, ErrInvalidTransition)

	in, err := e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedIn, "u-agent")
	require.NoError(t, err)
	require.NotNil(t, in.CheckedInTime)

	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedIn, "u-agent")
	require.ErrorIs(t, err, ErrInvalidTransition)

	out, err := e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedOut, "u-agent")
	require.NoError(t, err)
	require.NotNil(t, out.CheckedOutTime)

	// Checked-out is terminal for this entry point.
	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedIn, "u-agent")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNoShowTransition(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleAgent, "u-agent")
	require.NoError(t, err)

	ns, err := e.UpdateBookingStatus(ctx, d.BookingID, model.StatusNoShow, "u-agent")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNoShow, ns.Status)
	assert.Nil(t, ns.CheckedInTime)

	_, err = e.UpdateBookingStatus(ctx, ns.BookingID, model.StatusCheckedIn, "u-agent")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConsumptionsOnlyWhileCheckedIn(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	d, err := e.CreateBooking(ctx, "r102", "u-client", "2024-07-10", "2024-07-12", model.RoleAgent, "u-agent")
	require.NoError(t, err)

	// Confirmed but not checked in yet.
	_, err = e.AddConsumption(ctx, d.BookingID, "minibar water", 350, 2)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedIn, "u-agent")
	require.NoError(t, err)

	withOne, err := e.AddConsumption(ctx, d.BookingID, "minibar water", 350, 2)
	require.NoError(t, err)
	withTwo, err := e.AddConsumption(ctx, d.BookingID, "room service", 1500, 1)
	require.NoError(t, err)

	require.Len(t, withTwo.Consumptions, 2)
	assert.Equal(t, "minibar water", withTwo.Consumptions[0].ItemName)
	assert.Equal(t, "room service", withTwo.Consumptions[1].ItemName)
	assert.Len(t, withOne.Consumptions, 1)

	// Validation still applies while checked in.
	_, err = e.AddConsumption(ctx, d.BookingID, "  ", 100, 1)
	require.ErrorIs(t, err, ErrValidation)
	_, err = e.AddConsumption(ctx, d.BookingID, "spa", -5, 1)
	require.ErrorIs(t, err, ErrValidation)

	// After checkout the booking is closed for extras.
	_, err = e.UpdateBookingStatus(ctx, d.BookingID, model.StatusCheckedOut, "u-agent")
	require.NoError(t, err)
	_, err = e.AddConsumption(ctx, d.BookingID, "late snack", 500, 1)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestGetUserBookingsNewestFirst(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	times := []string{"2024-05-01T10:00:00Z", "2024-05-02T10:00:00Z", "2024-05-03T10:00:00Z"}
	i := 0
	e.now = func() time.Time {
		ts, _ := time.Parse(time.RFC3339, times[i%len(times)])
		i++
		return ts
	}

	first, err := e.CreateBooking(ctx, "r101", "u-client", "2024-03-01", "2024-03-02", model.RoleClient, "u-client")
	require.NoError(t, err)
	_, err = e.CreateBooking(ctx, "r102", "u-other", "2024-03-01", "2024-03-02", model.RoleClient, "u-other")
	require.NoError(t, err)
	last, err := e.CreateBooking(ctx, "r301", "u-client", "2024-03-01", "2024-03-02", model.RoleClient, "u-client")
	require.NoError(t, err)

	out, err := e.GetUserBookings(ctx, "u-client")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, last.BookingID, out[0].BookingID)
	assert.Equal(t, first.BookingID, out[1].BookingID)
}

func TestGetBookingsForHotelFilters(t *testing.T) {
	e, m := testEngine(t)
	seedCatalogue(t, m)
	ctx := context.Background()

	pending, err := e.CreateBooking(ctx, "r102", "u-client", "2024-03-01", "2024-03-05", model.RoleClient, "u-client")
	require.NoError(t, err)
	confirmed, err := e.CreateBooking(ctx, "r101", "u-other", "2024-03-10", "2024-03-12", model.RoleAgent, "u-agent")
	require.NoError(t, err)
	other, err := e.CreateBooking(ctx, "r301", "u-client", "2024-03-01", "2024-03-02", model.RoleClient, "u-client")
	require.NoError(t, err)

	// Scope to hotel h1.
	out, err := e.GetBookingsForHotel(ctx, "h1", BookingFilters{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// All hotels.
	out, err = e.GetBookingsForHotel(ctx, "", BookingFilters{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	_ = other

	// Status filter.
	out, err = e.GetBookingsForHotel(ctx, "h1", BookingFilters{Status: model.StatusConfirmed})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, confirmed.BookingID, out[0].BookingID)

	// Validation filter.
	out, err = e.GetBookingsForHotel(ctx, "h1", BookingFilters{ValidationStatus: model.ValidationPending})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, pending.BookingID, out[0].BookingID)

	// Date filter: the stay covers the day, end date excluded.
	out, err = e.GetBookingsForHotel(ctx, "h1", BookingFilters{Date: "2024-03-04"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	out, err = e.GetBookingsForHotel(ctx, "h1", BookingFilters{Date: "2024-03-05"})
	require.NoError(t, err)
	require.Len(t, out, 0)

	// Search matches client name case-insensitively.
	out, err = e.GetBookingsForHotel(ctx, "h1", BookingFilters{SearchTerm: "casey"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, pending.BookingID, out[0].BookingID)
}
