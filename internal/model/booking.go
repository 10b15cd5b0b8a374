package model

import "time"

// BookingStatus is the operational lifecycle state of a booking.
type BookingStatus string

const (
	StatusPendingApproval BookingStatus = "Pending Admin Approval"
	StatusConfirmed       BookingStatus = "Confirmed"
	StatusCheckedIn       BookingStatus = "Checked-in"
	StatusCheckedOut      BookingStatus = "Checked-out"
	StatusCancelled       BookingStatus = "Cancelled"
	StatusRejected        BookingStatus = "Rejected"
	StatusNoShow          BookingStatus = "No-show"
)

// Terminal reports whether no further operational transitions are
// allowed out of s.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusCancelled, StatusRejected, StatusCheckedOut, StatusNoShow:
		return true
	}
	return false
}

// ValidationStatus is the admin approval state of a client-initiated
// booking, tracked separately from the operational status.
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "Pending"
	ValidationApproved ValidationStatus = "Approved"
	ValidationRejected ValidationStatus = "Rejected"
	ValidationNA       ValidationStatus = "N/A"
)

// Booking records a guest's stay in a room over a half-open date
// range: the room is occupied from StartDate up to but not including
// EndDate, so a booking ending on a day and another starting the same
// day do not conflict.
//
// BookedPriceCents is snapshotted from the pricing resolver at
// creation time and never recomputed, so later tariff edits do not
// change what an existing booking is charged.  Bookings are never
// deleted; cancellation is a status.
type Booking struct {
	BookingID        string           `json:"booking_id"` // globally unique
	RoomID           string           `json:"room_id"`
	UserID           string           `json:"user_id"`            // the staying client
	HotelID          string           `json:"hotel_id"`           // denormalized from room
	StartDate        string           `json:"start_date"`         // inclusive, YYYY-MM-DD
	EndDate          string           `json:"end_date"`           // exclusive, YYYY-MM-DD
	BookedAt         time.Time        `json:"booked_at"`
	BookedPriceCents int64            `json:"booked_price_per_night_cents"` // immutable once set
	Status           BookingStatus    `json:"status"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	ValidatedBy      string           `json:"validated_by_admin_id,omitempty"`
	ValidationReason string           `json:"validation_reason,omitempty"` // required when rejected
	AgentID          string           `json:"agent_id,omitempty"`          // set when created or handled by an agent
	CheckedInTime    *time.Time       `json:"checked_in_time,omitempty"`
	CheckedOutTime   *time.Time       `json:"checked_out_time,omitempty"`
	Consumptions     []Consumption    `json:"consumptions"` // append order
}

// Consumption is a billable extra (minibar item, room service, ...)
// attached to a booking while the guest is checked in.
type Consumption struct {
	ID         string    `json:"id"`
	ItemName   string    `json:"item_name"`
	PriceCents int64     `json:"price_cents"` // unit price
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

// Feedback is a guest's rating and comment for a completed booking.
// At most one entry exists per (booking, user); resubmitting replaces
// the rating, comment and timestamp.
type Feedback struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
