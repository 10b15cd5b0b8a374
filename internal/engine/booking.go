package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

// BookingDetail is a booking merged with denormalized room and client
// information for display.  RoomPriceCents mirrors the snapshotted
// nightly rate so list views never have to re-resolve pricing.
type BookingDetail struct {
	model.Booking
	RoomName       string `json:"room_name"`
	RoomType       string `json:"room_type,omitempty"`
	RoomLocation   string `json:"room_location"`
	RoomPriceCents int64  `json:"room_price_cents"`
	ClientName     string `json:"client_name,omitempty"`
	ClientEmail    string `json:"client_email,omitempty"`
}

// BookingFilters narrows hotel booking listings.  Zero values mean
// "no filter".  Date keeps bookings whose stay covers that calendar
// day; SearchTerm matches client name, client email, booking ID or
// room name, case-insensitively.
type BookingFilters struct {
	Status           model.BookingStatus
	ValidationStatus model.ValidationStatus
	Date             string
	SearchTerm       string
}

// CreateBooking reserves a room for the half-open range
// [startDate, endDate).  creatorID identifies who is creating the
// booking and creatorRole how: bookings created by an agent or admin
// are auto-approved and start Confirmed, client self-service bookings
// start pending admin approval.  userID is the client who will stay.
//
// The availability check and the insert run under the engine mutex as
// one atomic unit, and the nightly rate is snapshotted from the
// pricing resolver at the start date before the booking is stored.
func (e *Engine) CreateBooking(ctx context.Context, roomID, userID, startDate, endDate string, creatorRole model.Role, creatorID string) (BookingDetail, error) {
	start, err := parseDay(startDate)
	if err != nil {
		return BookingDetail{}, err
	}
	end, err := parseDay(endDate)
	if err != nil {
		return BookingDetail{}, err
	}
	if !end.After(start) {
		return BookingDetail{}, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if userID == "" {
		return BookingDetail{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.rooms.GetRoomByID(ctx, roomID)
	if err != nil {
		return BookingDetail{}, fmt.Errorf("%w: room %s not found for booking", ErrNotFound, roomID)
	}
	if !isRangeFree(room, start, end, "") {
		return BookingDetail{}, fmt.Errorf("%w: selected dates conflict with an existing booking", ErrConflict)
	}

	price := e.ResolvePrice(ctx, room, start)
	auto := creatorRole == model.RoleAgent || creatorRole == model.RoleAdmin

	b := model.Booking{
		BookingID:        e.newID(),
		RoomID:           room.ID,
		UserID:           userID,
		HotelID:          room.HotelID,
		StartDate:        startDate,
		EndDate:          endDate,
		BookedAt:         e.now(),
		BookedPriceCents: price,
		Status:           model.StatusPendingApproval,
		ValidationStatus: model.ValidationPending,
		Consumptions:     []model.Consumption{},
	}
	if auto {
		b.Status = model.StatusConfirmed
		b.ValidationStatus = model.ValidationApproved
		b.ValidatedBy = "auto-approved-" + strings.ToLower(string(creatorRole))
	}
	if creatorRole == model.RoleAgent {
		b.AgentID = creatorID
	}

	if err := e.rooms.AppendBooking(ctx, room.ID, b); err != nil {
		return BookingDetail{}, err
	}
	return e.detail(ctx, room, b), nil
}

// GetUserBookings returns every booking belonging to the client,
// newest first.
func (e *Engine) GetUserBookings(ctx context.Context, userID string) ([]BookingDetail, error) {
	rooms, err := e.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	out := []BookingDetail{}
	for _, room := range rooms {
		for _, b := range room.Bookings {
			if b.UserID == userID {
				out = append(out, e.detail(ctx, room, b))
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].BookedAt.After(out[j].BookedAt) })
	return out, nil
}

// GetBookingsForHotel lists bookings for one hotel, or for all hotels
// when hotelID is empty, applying the given filters.  Results are
// sorted by start date ascending.
func (e *Engine) GetBookingsForHotel(ctx context.Context, hotelID string, f BookingFilters) ([]BookingDetail, error) {
	rooms, err := e.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	var filterDay string
	if f.Date != "" {
		d, err := parseDay(f.Date)
		if err != nil {
			return nil, err
		}
		filterDay = d.Format(dayLayout)
	}
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	out := []BookingDetail{}
	for _, room := range rooms {
		if hotelID != "" && room.HotelID != hotelID {
			continue
		}
		for _, b := range room.Bookings {
			if f.Status != "" && b.Status != f.Status {
				continue
			}
			if f.ValidationStatus != "" && b.ValidationStatus != f.ValidationStatus {
				continue
			}
			d := e.detail(ctx, room, b)
			if filterDay != "" && !stayCovers(b, filterDay) {
				continue
			}
			if term != "" && !matchesTerm(d, term) {
				continue
			}
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

// CancelBooking moves a booking to Cancelled.  Clients may cancel
// only their own bookings; agents and admins may cancel any.
// Bookings already in a terminal state reject cancellation.
func (e *Engine) CancelBooking(ctx context.Context, bookingID, actingUserID string, actingRole model.Role) (BookingDetail, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	if actingRole == model.RoleClient && b.UserID != actingUserID {
		return BookingDetail{}, fmt.Errorf("%w: clients can only cancel their own bookings", ErrForbidden)
	}
	if b.Status == model.StatusCancelled || b.Status == model.StatusRejected {
		return BookingDetail{}, fmt.Errorf("%w: this booking is already cancelled or rejected", ErrInvalidTransition)
	}
	if b.Status.Terminal() {
		return BookingDetail{}, fmt.Errorf("%w: cannot cancel a booking in state %s", ErrInvalidTransition, b.Status)
	}
	b.Status = model.StatusCancelled
	b.ValidationStatus = model.ValidationNA
	if err := e.rooms.UpdateBooking(ctx, b); err != nil {
		return BookingDetail{}, err
	}
	return e.detail(ctx, room, b), nil
}

// UpdateBookingStatus applies an operational transition performed by
// an agent: Confirmed to Checked-in or No-show, and Checked-in to
// Checked-out.  Check-in and check-out stamp their timestamps.  Every
// other combination fails without mutating the booking.
func (e *Engine) UpdateBookingStatus(ctx context.Context, bookingID string, newStatus model.BookingStatus, agentID string) (BookingDetail, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	if !legalTransition(b.Status, newStatus) {
		return BookingDetail{}, fmt.Errorf("%w: cannot change status from %s to %s", ErrInvalidTransition, b.Status, newStatus)
	}
	b.Status = newStatus
	if agentID != "" {
		b.AgentID = agentID
	}
	switch newStatus {
	case model.StatusCheckedIn:
		t := e.now()
		b.CheckedInTime = &t
	case model.StatusCheckedOut:
		t := e.now()
		b.CheckedOutTime = &t
	}
	if err := e.rooms.UpdateBooking(ctx, b); err != nil {
		return BookingDetail{}, err
	}
	return e.detail(ctx, room, b), nil
}

// legalTransition encodes the agent-driven part of the booking state
// machine.  Approval, rejection and cancellation have their own
// entry points and are not reachable from here.
func legalTransition(from, to model.BookingStatus) bool {
	switch from {
	case model.StatusConfirmed:
		return to == model.StatusCheckedIn || to == model.StatusNoShow
	case model.StatusCheckedIn:
		return to == model.StatusCheckedOut
	}
	return false
}

// AddConsumption appends a billable item to a checked-in booking.
// The engine validates presence and sign only; form-level range
// checks belong to the caller.
func (e *Engine) AddConsumption(ctx context.Context, bookingID, itemName string, priceCents int64, quantity int) (BookingDetail, error) {
	if strings.TrimSpace(itemName) == "" {
		return BookingDetail{}, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if priceCents < 0 || quantity < 0 {
		return BookingDetail{}, fmt.Errorf("%w: price and quantity must be non-negative", ErrValidation)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	room, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	if b.Status != model.StatusCheckedIn {
		return BookingDetail{}, fmt.Errorf("%w: consumptions can only be added to checked-in bookings", ErrInvalidState)
	}
	b.Consumptions = append(b.Consumptions, model.Consumption{
		ID:         e.newID(),
		ItemName:   itemName,
		PriceCents: priceCents,
		Quantity:   quantity,
		AddedAt:    e.now(),
	})
	if err := e.rooms.UpdateBooking(ctx, b); err != nil {
		return BookingDetail{}, err
	}
	return e.detail(ctx, room, b), nil
}

// AdminApprove confirms a pending client booking.  Approving a
// booking that has already been decided fails.
func (e *Engine) AdminApprove(ctx context.Context, bookingID, adminID string) (BookingDetail, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	if b.ValidationStatus != model.ValidationPending {
		return BookingDetail{}, fmt.Errorf("%w: booking is already %s", ErrAlreadyDecided, strings.ToLower(string(b.ValidationStatus)))
	}
	b.ValidationStatus = model.ValidationApproved
	b.Status = model.StatusConfirmed
	b.ValidatedBy = adminID
	b.ValidationReason = ""
	if err := e.rooms.UpdateBooking(ctx, b); err != nil {
		return BookingDetail{}, err
	}
	return e.detail(ctx, room, b), nil
}

// AdminReject declines a pending client booking.  A non-empty reason
// is mandatory and is stored on the booking.
func (e *Engine) AdminReject(ctx context.Context, bookingID, adminID, reason string) (BookingDetail, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return BookingDetail{}, err
	}
	if b.ValidationStatus != model.ValidationPending {
		return BookingDetail{}, fmt.Errorf("%w: booking is already %s", ErrAlreadyDecided, strings.ToLower(string(b.ValidationStatus)))
	}
	if strings.TrimSpace(reason) == "" {
		return BookingDetail{}, fmt.Errorf("%w: a reason is required for rejecting a booking", ErrReasonRequired)
	}
	b.ValidationStatus = model.ValidationRejected
	b.Status = model.StatusRejected
	b.ValidatedBy = adminID
	b.ValidationReason = reason
	if err := e.rooms.UpdateBooking(ctx, b); err != nil {
		return BookingDetail{}, err
	}
	return e.detail(ctx, room, b), nil
}

// findBooking wraps the store lookup with the engine's NotFound kind.
func (e *Engine) findBooking(ctx context.Context, bookingID string) (model.Room, model.Booking, error) {
	room, b, err := e.rooms.FindBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Room{}, model.Booking{}, fmt.Errorf("%w: booking %s not found", ErrNotFound, bookingID)
		}
		return model.Room{}, model.Booking{}, err
	}
	return room, b, nil
}

// stayCovers reports whether the calendar day d (YYYY-MM-DD) falls
// within the booking's half-open stay.
func stayCovers(b model.Booking, d string) bool {
	return b.StartDate <= d && d < b.EndDate
}

// matchesTerm implements the agent search box: booking ID, room name,
// client name or client email, lower-cased substring match.
func matchesTerm(d BookingDetail, term string) bool {
	return strings.Contains(strings.ToLower(d.ClientName), term) ||
		strings.Contains(strings.ToLower(d.ClientEmail), term) ||
		strings.Contains(strings.ToLower(d.BookingID), term) ||
		strings.Contains(strings.ToLower(d.RoomName), term)
}

// detail merges a booking with its room and client denormalizations.
func (e *Engine) detail(ctx context.Context, room model.Room, b model.Booking) BookingDetail {
	d := BookingDetail{
		Booking:        b,
		RoomName:       room.Name,
		RoomType:       string(room.Type),
		RoomLocation:   room.Location,
		RoomPriceCents: b.BookedPriceCents,
	}
	if d.RoomPriceCents == 0 {
		d.RoomPriceCents = room.BasePriceCents
	}
	if u, err := e.users.GetUserByID(ctx, b.UserID); err == nil {
		d.ClientName = u.Name
		d.ClientEmail = u.Email
	}
	return d
}
