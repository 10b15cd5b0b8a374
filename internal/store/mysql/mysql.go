// Package mysql implements the store interfaces on top of MySQL with
// plain database/sql queries.  The schema lives in schema.sql at the
// repository root.
//
// Hotels keep their seasons in a child table ordered by a position
// column, so the first-match season resolution order survives a round
// trip.  Consumptions are stored as a JSON column on the booking row;
// they are only ever read and written as a whole.
package mysql

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/store"
)

// Store implements store.HotelStore, store.RoomStore, store.UserStore
// and store.FeedbackStore against a single *sql.DB.
type Store struct{ DB *sql.DB }

func New(db *sql.DB) *Store { return &Store{DB: db} }

// mapErr converts driver-level errors to the shared sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	// MySQL error 1062: duplicate entry for a unique key.
	if strings.Contains(strings.ToLower(err.Error()), "1062") {
		return store.ErrDuplicate
	}
	return err
}
