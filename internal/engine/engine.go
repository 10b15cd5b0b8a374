package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/store"
)

// Engine wires the stores together and serializes every mutating
// operation behind a single mutex.  Operations that read then write,
// such as the availability check followed by the booking insert, run
// as one critical section so that two concurrent creates for the same
// room cannot interleave into a double booking.  Read-only queries
// take no engine lock; the stores guarantee consistent snapshots.
type Engine struct {
	mu sync.Mutex // guards all read-then-write sequences

	hotels   store.HotelStore
	rooms    store.RoomStore
	users    store.UserStore
	feedback store.FeedbackStore

	now   func() time.Time // injectable clock for tests
	newID func() string    // injectable ID source for tests
}

// New constructs an Engine over the given stores.  All stores must be
// non-nil; a single object implementing every interface (such as
// store.Memory) may be passed for each.
func New(hotels store.HotelStore, rooms store.RoomStore, users store.UserStore, feedback store.FeedbackStore) *Engine {
	if hotels == nil || rooms == nil || users == nil || feedback == nil {
		panic("nil store passed to engine.New")
	}
	return &Engine{
		hotels:   hotels,
		rooms:    rooms,
		users:    users,
		feedback: feedback,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}
