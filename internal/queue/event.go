// Package queue defines message payloads exchanged over the message broker.
package queue

// Booking event kinds published to the booking.events queue.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingRejected  = "booking.rejected"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published on every booking lifecycle change a guest
// would normally be emailed about. It contains enough information for
// downstream consumers to notify, log, or trigger analytics without
// querying the primary store.
type BookingEvent struct {
	Kind             string `json:"kind"` // one of the Event* constants
	BookingID        string `json:"booking_id"`
	UserID           string `json:"user_id"`
	ClientEmail      string `json:"client_email,omitempty"`
	HotelID          string `json:"hotel_id"`
	RoomName         string `json:"room_name"`
	RoomLocation     string `json:"room_location"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	Status           string `json:"status"`
	Reason           string `json:"reason,omitempty"` // set on rejections
	OccurredAt       string `json:"occurred_at"`
}
