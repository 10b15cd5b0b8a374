package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

const selectRoom = "SELECT id, hotel_id, name, type, location, base_price_cents, available, amenities FROM rooms"

const selectBooking = `SELECT id, room_id, user_id, hotel_id, start_date, end_date, booked_at,
booked_price_cents, status, validation_status, validated_by, validation_reason, agent_id,
checked_in_at, checked_out_at, consumptions FROM bookings`

func (s *Store) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.queryRooms(ctx, selectRoom+" ORDER BY seq")
}

func (s *Store) ListRoomsByHotel(ctx context.Context, hotelID string) ([]model.Room, error) {
	return s.queryRooms(ctx, selectRoom+" WHERE hotel_id=? ORDER BY seq", hotelID)
}

func (s *Store) GetRoomByID(ctx context.Context, id string) (model.Room, error) {
	row := s.DB.QueryRowContext(ctx, selectRoom+" WHERE id=? LIMIT 1", id)
	r, err := scanRoom(row)
	if err != nil {
		return model.Room{}, mapErr(err)
	}
	bookings, err := s.queryBookings(ctx, selectBooking+" WHERE room_id=? ORDER BY seq", id)
	if err != nil {
		return model.Room{}, err
	}
	r.Bookings = bookings
	return r, nil
}

func (s *Store) InsertRoom(ctx context.Context, r model.Room) error {
	amenities, err := json.Marshal(r.Amenities)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx,
		"INSERT INTO rooms (id, hotel_id, name, type, location, base_price_cents, available, amenities) VALUES (?,?,?,?,?,?,?,?)",
		r.ID, r.HotelID, r.Name, string(r.Type), r.Location, r.BasePriceCents, r.Available, amenities)
	return mapErr(err)
}

// UpdateRoom rewrites the room's own columns; bookings live in their
// own table and are untouched.
func (s *Store) UpdateRoom(ctx context.Context, r model.Room) error {
	amenities, err := json.Marshal(r.Amenities)
	if err != nil {
		return err
	}
	res, err := s.DB.ExecContext(ctx,
		"UPDATE rooms SET hotel_id=?, name=?, type=?, location=?, base_price_cents=?, available=?, amenities=? WHERE id=?",
		r.HotelID, r.Name, string(r.Type), r.Location, r.BasePriceCents, r.Available, amenities, r.ID)
	if err != nil {
		return mapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM rooms WHERE id=? LIMIT 1", r.ID).Scan(&one); err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (s *Store) AppendBooking(ctx context.Context, roomID string, b model.Booking) error {
	var one int
	if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM rooms WHERE id=? LIMIT 1", roomID).Scan(&one); err != nil {
		return mapErr(err)
	}
	consumptions, err := json.Marshal(b.Consumptions)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO bookings (id, room_id, user_id, hotel_id, start_date, end_date, booked_at,
booked_price_cents, status, validation_status, validated_by, validation_reason, agent_id,
checked_in_at, checked_out_at, consumptions) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.BookingID, roomID, b.UserID, b.HotelID, b.StartDate, b.EndDate, b.BookedAt,
		b.BookedPriceCents, string(b.Status), string(b.ValidationStatus), b.ValidatedBy,
		b.ValidationReason, b.AgentID, b.CheckedInTime, b.CheckedOutTime, consumptions)
	return mapErr(err)
}

func (s *Store) FindBooking(ctx context.Context, bookingID string) (model.Room, model.Booking, error) {
	row := s.DB.QueryRowContext(ctx, selectBooking+" WHERE id=? LIMIT 1", bookingID)
	b, err := scanBooking(row)
	if err != nil {
		return model.Room{}, model.Booking{}, mapErr(err)
	}
	room, err := s.GetRoomByID(ctx, b.RoomID)
	if err != nil {
		return model.Room{}, model.Booking{}, err
	}
	return room, b, nil
}

func (s *Store) UpdateBooking(ctx context.Context, b model.Booking) error {
	consumptions, err := json.Marshal(b.Consumptions)
	if err != nil {
		return err
	}
	res, err := s.DB.ExecContext(ctx,
		`UPDATE bookings SET status=?, validation_status=?, validated_by=?, validation_reason=?,
agent_id=?, checked_in_at=?, checked_out_at=?, consumptions=? WHERE id=?`,
		string(b.Status), string(b.ValidationStatus), b.ValidatedBy, b.ValidationReason,
		b.AgentID, b.CheckedInTime, b.CheckedOutTime, consumptions, b.BookingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM bookings WHERE id=? LIMIT 1", b.BookingID).Scan(&one); err != nil {
			return mapErr(err)
		}
	}
	return nil
}

// queryRooms loads rooms plus their bookings, keeping both in
// insertion order.
func (s *Store) queryRooms(ctx context.Context, query string, args ...any) ([]model.Room, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Room{}
	index := map[string]int{}
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	bookings, err := s.queryBookings(ctx, selectBooking+" ORDER BY seq")
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if i, ok := index[b.RoomID]; ok {
			out[i].Bookings = append(out[i].Bookings, b)
		}
	}
	return out, nil
}

func (s *Store) queryBookings(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanRoom(sc scanner) (model.Room, error) {
	var (
		r         model.Room
		roomType  string
		amenities []byte
	)
	err := sc.Scan(&r.ID, &r.HotelID, &r.Name, &roomType, &r.Location, &r.BasePriceCents, &r.Available, &amenities)
	if err != nil {
		return model.Room{}, err
	}
	r.Type = model.RoomType(roomType)
	r.Amenities = []string{}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &r.Amenities); err != nil {
			return model.Room{}, err
		}
	}
	r.Bookings = []model.Booking{}
	return r, nil
}

func scanBooking(sc scanner) (model.Booking, error) {
	var (
		b            model.Booking
		status       string
		validation   string
		validatedBy  sql.NullString
		reason       sql.NullString
		agentID      sql.NullString
		checkedIn    sql.NullTime
		checkedOut   sql.NullTime
		consumptions []byte
	)
	err := sc.Scan(&b.BookingID, &b.RoomID, &b.UserID, &b.HotelID, &b.StartDate, &b.EndDate, &b.BookedAt,
		&b.BookedPriceCents, &status, &validation, &validatedBy, &reason, &agentID,
		&checkedIn, &checkedOut, &consumptions)
	if err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingStatus(status)
	b.ValidationStatus = model.ValidationStatus(validation)
	b.ValidatedBy = validatedBy.String
	b.ValidationReason = reason.String
	b.AgentID = agentID.String
	if checkedIn.Valid {
		t := checkedIn.Time
		b.CheckedInTime = &t
	}
	if checkedOut.Valid {
		t := checkedOut.Time
		b.CheckedOutTime = &t
	}
	b.Consumptions = []model.Consumption{}
	if len(consumptions) > 0 {
		if err := json.Unmarshal(consumptions, &b.Consumptions); err != nil {
			return model.Booking{}, err
		}
	}
	return b, nil
}
