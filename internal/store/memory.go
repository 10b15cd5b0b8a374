package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Memory is an in-process implementation of all store interfaces,
// guarded by a single RWMutex.  Readers take the read lock and copy
// out values, so they never observe a half-written booking; writers
// serialize behind the write lock.
//
// Insertion order of hotels, rooms and bookings is preserved by
// keeping slices of IDs next to the lookup maps.
type Memory struct {
	mu sync.RWMutex

	hotels     map[string]model.Hotel
	hotelOrder []string

	rooms     map[string]model.Room
	roomOrder []string

	users     map[string]model.User
	userOrder []string

	refresh map[string]refreshSession

	feedback []model.Feedback
}

type refreshSession struct {
	userID  string
	expires time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		hotels:  make(map[string]model.Hotel),
		rooms:   make(map[string]model.Room),
		users:   make(map[string]model.User),
		refresh: make(map[string]refreshSession),
	}
}

// ----- hotels -----

func (m *Memory) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Hotel, 0, len(m.hotelOrder))
	for _, id := range m.hotelOrder {
		h := m.hotels[id]
		h.Seasons = h.CloneSeasons()
		out = append(out, h)
	}
	return out, nil
}

func (m *Memory) GetHotelByID(ctx context.Context, id string) (model.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hotels[id]
	if !ok {
		return model.Hotel{}, ErrNotFound
	}
	h.Seasons = h.CloneSeasons()
	return h, nil
}

func (m *Memory) GetHotelByCode(ctx context.Context, code string) (model.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, h := range m.hotels {
		if h.Code == code {
			h.Seasons = h.CloneSeasons()
			return h, nil
		}
	}
	return model.Hotel{}, ErrNotFound
}

func (m *Memory) InsertHotel(ctx context.Context, h model.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hotels[h.ID]; ok {
		return ErrDuplicate
	}
	for _, existing := range m.hotels {
		if existing.Code == h.Code {
			return ErrDuplicate
		}
	}
	h.Seasons = h.CloneSeasons()
	m.hotels[h.ID] = h
	m.hotelOrder = append(m.hotelOrder, h.ID)
	return nil
}

func (m *Memory) UpdateHotel(ctx context.Context, h model.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hotels[h.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range m.hotels {
		if id != h.ID && existing.Code == h.Code {
			return ErrDuplicate
		}
	}
	h.Seasons = h.CloneSeasons()
	m.hotels[h.ID] = h
	return nil
}

func (m *Memory) DeleteHotel(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hotels[id]; !ok {
		return ErrNotFound
	}
	delete(m.hotels, id)
	for i, hid := range m.hotelOrder {
		if hid == id {
			m.hotelOrder = append(m.hotelOrder[:i], m.hotelOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ----- rooms and bookings -----

func (m *Memory) ListRooms(ctx context.Context) ([]model.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Room, 0, len(m.roomOrder))
	for _, id := range m.roomOrder {
		out = append(out, cloneRoom(m.rooms[id]))
	}
	return out, nil
}

func (m *Memory) ListRoomsByHotel(ctx context.Context, hotelID string) ([]model.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Room
	for _, id := range m.roomOrder {
		if r := m.rooms[id]; r.HotelID == hotelID {
			out = append(out, cloneRoom(r))
		}
	}
	return out, nil
}

func (m *Memory) GetRoomByID(ctx context.Context, id string) (model.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	if !ok {
		return model.Room{}, ErrNotFound
	}
	return cloneRoom(r), nil
}

func (m *Memory) InsertRoom(ctx context.Context, r model.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[r.ID]; ok {
		return ErrDuplicate
	}
	m.rooms[r.ID] = cloneRoom(r)
	m.roomOrder = append(m.roomOrder, r.ID)
	return nil
}

func (m *Memory) UpdateRoom(ctx context.Context, r model.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rooms[r.ID]
	if !ok {
		return ErrNotFound
	}
	// Bookings change only through AppendBooking/UpdateBooking.
	r.Bookings = cur.Bookings
	r.Amenities = append([]string(nil), r.Amenities...)
	m.rooms[r.ID] = r
	return nil
}

func (m *Memory) AppendBooking(ctx context.Context, roomID string, b model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[roomID]
	if !ok {
		return ErrNotFound
	}
	b.Consumptions = append([]model.Consumption(nil), b.Consumptions...)
	r.Bookings = append(r.Bookings, b)
	m.rooms[roomID] = r
	return nil
}

func (m *Memory) FindBooking(ctx context.Context, bookingID string) (model.Room, model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.roomOrder {
		r := m.rooms[id]
		for _, b := range r.Bookings {
			if b.BookingID == bookingID {
				return cloneRoom(r), cloneBooking(b), nil
			}
		}
	}
	return model.Room{}, model.Booking{}, ErrNotFound
}

func (m *Memory) UpdateBooking(ctx context.Context, b model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[b.RoomID]
	if !ok {
		return ErrNotFound
	}
	for i := range r.Bookings {
		if r.Bookings[i].BookingID == b.BookingID {
			r.Bookings[i] = cloneBooking(b)
			m.rooms[b.RoomID] = r
			return nil
		}
	}
	return ErrNotFound
}

// ----- users and refresh sessions -----

func (m *Memory) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (m *Memory) InsertUser(ctx context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; ok {
		return ErrDuplicate
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	m.users[u.ID] = u
	m.userOrder = append(m.userOrder, u.ID)
	return nil
}

func (m *Memory) UpdateUser(ctx context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) SaveRefresh(ctx context.Context, hash, userID string, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refresh[hash] = refreshSession{userID: userID, expires: expires}
	return nil
}

func (m *Memory) LookupRefresh(ctx context.Context, hash string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.refresh[hash]
	if !ok || time.Now().UTC().After(s.expires) {
		return "", ErrNotFound
	}
	return s.userID, nil
}

func (m *Memory) DeleteRefresh(ctx context.Context, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.refresh[hash]; !ok {
		return ErrNotFound
	}
	delete(m.refresh, hash)
	return nil
}

// ----- feedback -----

func (m *Memory) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]model.Feedback(nil), m.feedback...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *Memory) GetFeedbackByBookingAndUser(ctx context.Context, bookingID, userID string) (model.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.feedback {
		if f.BookingID == bookingID && f.UserID == userID {
			return f, nil
		}
	}
	return model.Feedback{}, ErrNotFound
}

func (m *Memory) UpsertFeedback(ctx context.Context, f model.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.feedback {
		if m.feedback[i].BookingID == f.BookingID && m.feedback[i].UserID == f.UserID {
			f.ID = m.feedback[i].ID
			m.feedback[i] = f
			return nil
		}
	}
	m.feedback = append(m.feedback, f)
	return nil
}

func cloneRoom(r model.Room) model.Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	bs := make([]model.Booking, len(r.Bookings))
	for i, b := range r.Bookings {
		bs[i] = cloneBooking(b)
	}
	r.Bookings = bs
	return r
}

func cloneBooking(b model.Booking) model.Booking {
	b.Consumptions = append([]model.Consumption(nil), b.Consumptions...)
	if b.CheckedInTime != nil {
		t := *b.CheckedInTime
		b.CheckedInTime = &t
	}
	if b.CheckedOutTime != nil {
		t := *b.CheckedOutTime
		b.CheckedOutTime = &t
	}
	return b
}
