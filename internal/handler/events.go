package handler

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
)

// publishBookingEvent fires a lifecycle event to the broker without
// blocking the request. Delivery is best effort; the booking is
// already stored and the consumer only drives notifications.
func publishBookingEvent(kind string, d engine.BookingDetail) {
	ev := queue.BookingEvent{
		Kind:             kind,
		BookingID:        d.BookingID,
		UserID:           d.UserID,
		ClientEmail:      d.ClientEmail,
		HotelID:          d.HotelID,
		RoomName:         d.RoomName,
		RoomLocation:     d.RoomLocation,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		NightlyRateCents: d.BookedPriceCents,
		Status:           string(d.Status),
		Reason:           d.ValidationReason,
		OccurredAt:       time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingEvent(ctx, ev)
	}()
}
