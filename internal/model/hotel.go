package model

// Hotel is a property that owns rooms and an ordered list of pricing
// seasons.  The code is a short unique identifier that never changes
// after creation; the numeric id is the primary key used everywhere
// else.
type Hotel struct {
	ID      string   `json:"id"`      // hotels.id
	Code    string   `json:"code"`    // hotels.code (unique, immutable)
	Name    string   `json:"name"`    // hotels.name
	Address string   `json:"address"` // hotels.address
	City    string   `json:"city"`    // hotels.city
	Stars   int      `json:"stars"`   // hotels.stars (1..5)
	Seasons []Season `json:"seasons"` // ordered; resolution order matters
}

// Season is a named inclusive date range on a hotel carrying optional
// per-room-type tariff overrides.  Tariff prices are nightly rates in
// cents.  A missing entry for a room type means the room's base price
// applies during the season.
//
// Seasons on the same hotel may overlap; the pricing resolver walks
// them in stored order and the first match wins.
type Season struct {
	ID        string           `json:"id"`         // seasons.id (unique within hotel)
	Name      string           `json:"name"`       // seasons.name
	StartDate string           `json:"start_date"` // inclusive, YYYY-MM-DD
	EndDate   string           `json:"end_date"`   // inclusive, YYYY-MM-DD, >= StartDate
	Tariffs   map[string]int64 `json:"tariffs"`    // room type -> nightly cents
}

// CloneSeasons returns a deep copy of the hotel's season list so that
// callers can hand data out without exposing internal maps.
func (h *Hotel) CloneSeasons() []Season {
	out := make([]Season, len(h.Seasons))
	for i, s := range h.Seasons {
		cp := s
		cp.Tariffs = make(map[string]int64, len(s.Tariffs))
		for k, v := range s.Tariffs {
			cp.Tariffs[k] = v
		}
		out[i] = cp
	}
	return out
}
