// Package store defines the persistence interfaces consumed by the
// booking engine together with sentinel errors shared by all
// implementations.  Two implementations exist: a mutex-guarded
// in-memory store (authoritative for tests and single-node runs) and
// a MySQL-backed store under store/mysql for production deployments.
//
// All methods deal in value copies.  A caller never receives a
// pointer into a store's internal state, so concurrent readers always
// observe a consistent snapshot and mutations go through Insert or
// Update calls only.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert would violate a uniqueness
// constraint, such as a hotel code or a user email that is already
// taken.
var ErrDuplicate = errors.New("duplicate")

// HotelStore owns hotels and, through them, their ordered season
// lists and per-room-type tariffs.
type HotelStore interface {
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	GetHotelByID(ctx context.Context, id string) (model.Hotel, error)
	GetHotelByCode(ctx context.Context, code string) (model.Hotel, error)
	InsertHotel(ctx context.Context, h model.Hotel) error
	// UpdateHotel replaces the stored hotel, including its season
	// list, preserving season order as given.
	UpdateHotel(ctx context.Context, h model.Hotel) error
	DeleteHotel(ctx context.Context, id string) error
}

// RoomStore owns rooms and the bookings attached to each room.
// Bookings live inside their room and keep insertion order.
type RoomStore interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	ListRoomsByHotel(ctx context.Context, hotelID string) ([]model.Room, error)
	GetRoomByID(ctx context.Context, id string) (model.Room, error)
	InsertRoom(ctx context.Context, r model.Room) error
	// UpdateRoom replaces the stored room's own fields but leaves its
	// booking list untouched; bookings change only through
	// AppendBooking and UpdateBooking.
	UpdateRoom(ctx context.Context, r model.Room) error
	AppendBooking(ctx context.Context, roomID string, b model.Booking) error
	// FindBooking locates a booking by its globally unique ID across
	// all rooms and returns it together with the owning room.
	FindBooking(ctx context.Context, bookingID string) (model.Room, model.Booking, error)
	UpdateBooking(ctx context.Context, b model.Booking) error
}

// UserStore owns user accounts and their refresh-token sessions.
// Refresh tokens are stored hashed; the raw value never reaches the
// store.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	InsertUser(ctx context.Context, u model.User) error
	UpdateUser(ctx context.Context, u model.User) error
	SaveRefresh(ctx context.Context, hash, userID string, expires time.Time) error
	// LookupRefresh returns the user ID for an unexpired refresh hash.
	LookupRefresh(ctx context.Context, hash string) (string, error)
	DeleteRefresh(ctx context.Context, hash string) error
}

// FeedbackStore owns guest feedback entries, at most one per
// (booking, user) pair.
type FeedbackStore interface {
	ListFeedback(ctx context.Context) ([]model.Feedback, error)
	GetFeedbackByBookingAndUser(ctx context.Context, bookingID, userID string) (model.Feedback, error)
	UpsertFeedback(ctx context.Context, f model.Feedback) error
}
