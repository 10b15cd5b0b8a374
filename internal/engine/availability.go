package engine

import (
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// isRangeFree reports whether the half-open range [start, end) is
// free on the room.  Cancelled and rejected bookings never block a
// date range; excludeBookingID, when non-empty, skips one existing
// booking so that a booking can be re-checked against its peers.
//
// A booking that starts exactly on another's end date is not a
// conflict: the departing guest leaves the night before.
func isRangeFree(room model.Room, start, end time.Time, excludeBookingID string) bool {
	for _, b := range room.Bookings {
		if b.Status == model.StatusCancelled || b.Status == model.StatusRejected {
			continue
		}
		if excludeBookingID != "" && b.BookingID == excludeBookingID {
			continue
		}
		bStart, err := parseDay(b.StartDate)
		if err != nil {
			continue
		}
		bEnd, err := parseDay(b.EndDate)
		if err != nil {
			continue
		}
		if overlaps(start, end, bStart, bEnd) {
			return false
		}
	}
	return true
}
