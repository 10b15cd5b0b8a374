package model

// RoomType is the fixed enumeration of room categories.  Tariffs are
// keyed by these values.
type RoomType string

const (
	RoomSingle        RoomType = "Single"
	RoomDouble        RoomType = "Double"
	RoomDoubleConfort RoomType = "Double Confort"
	RoomSuite         RoomType = "Suite"
)

// ValidRoomType reports whether s names a known room type.
func ValidRoomType(s string) bool {
	switch RoomType(s) {
	case RoomSingle, RoomDouble, RoomDoubleConfort, RoomSuite:
		return true
	}
	return false
}

// Room is a bookable unit belonging to a hotel.  BasePriceCents is the
// nightly rate charged outside of any season tariff.  The Available
// flag is advisory only: the authoritative answer to "can this room be
// booked for these dates" always comes from the booking overlap check.
//
// Bookings are stored on the room in insertion order (creation order).
type Room struct {
	ID             string    `json:"id"`               // rooms.id
	HotelID        string    `json:"hotel_id"`         // owning hotel
	Name           string    `json:"name"`             // rooms.name
	Type           RoomType  `json:"type"`             // rooms.type
	Location       string    `json:"location"`         // denormalized hotel name for display
	BasePriceCents int64     `json:"base_price_cents"` // nightly base rate
	Available      bool      `json:"available"`        // advisory flag
	Amenities      []string  `json:"amenities"`        // ordered list
	Bookings       []Booking `json:"bookings,omitempty"`
}
