package engine

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Statistics is the admin dashboard snapshot.  Revenue and nights are
// computed over bookings that actually contribute, i.e. everything
// except Cancelled and Rejected.  Occupancy is measured against a
// rolling 30-day window across all rooms in the system.
type Statistics struct {
	TotalBookings      int              `json:"total_bookings"`
	TotalRevenueCents  int64            `json:"total_revenue_cents"`
	UniqueClients      int              `json:"unique_clients"`
	OccupancyRatePct   float64          `json:"occupancy_rate_pct"`
	AvgStayNights      float64          `json:"avg_stay_nights"`
	BookingsByStatus   map[string]int   `json:"bookings_by_status"`
	RevenueByHotel     map[string]int64 `json:"revenue_by_hotel_cents"`
	FeedbackEntries    int              `json:"feedback_entries"`
}

const occupancyWindowDays = 30

// Stats aggregates booking and revenue figures across all rooms.
// Pure read over a consistent store snapshot.
func (e *Engine) Stats(ctx context.Context) (Statistics, error) {
	rooms, err := e.rooms.ListRooms(ctx)
	if err != nil {
		return Statistics{}, err
	}
	st := Statistics{
		BookingsByStatus: map[string]int{},
		RevenueByHotel:   map[string]int64{},
	}
	clients := map[string]struct{}{}
	var totalNights, revenueBookings int64

	for _, room := range rooms {
		for _, b := range room.Bookings {
			st.TotalBookings++
			st.BookingsByStatus[string(b.Status)]++
			if b.Status == model.StatusCancelled || b.Status == model.StatusRejected {
				continue
			}
			clients[b.UserID] = struct{}{}
			n := int64(1)
			if start, err1 := parseDay(b.StartDate); err1 == nil {
				if end, err2 := parseDay(b.EndDate); err2 == nil {
					n = nights(start, end)
				}
			}
			amount := n * b.BookedPriceCents
			for _, c := range b.Consumptions {
				amount += c.PriceCents * int64(c.Quantity)
			}
			st.TotalRevenueCents += amount
			st.RevenueByHotel[b.HotelID] += amount
			totalNights += n
			revenueBookings++
		}
	}

	st.UniqueClients = len(clients)
	if revenueBookings > 0 {
		st.AvgStayNights = float64(totalNights) / float64(revenueBookings)
	}
	if available := int64(len(rooms)) * occupancyWindowDays; available > 0 {
		st.OccupancyRatePct = float64(totalNights) / float64(available) * 100
	}
	if fb, err := e.feedback.ListFeedback(ctx); err == nil {
		st.FeedbackEntries = len(fb)
	}
	return st, nil
}
