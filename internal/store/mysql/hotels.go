package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

const selectHotel = "SELECT id, code, name, address, city, stars FROM hotels"

func (s *Store) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	rows, err := s.DB.QueryContext(ctx, selectHotel+" ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Hotel{}
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Code, &h.Name, &h.Address, &h.City, &h.Stars); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		seasons, err := s.loadSeasons(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Seasons = seasons
	}
	return out, nil
}

func (s *Store) GetHotelByID(ctx context.Context, id string) (model.Hotel, error) {
	return s.getHotel(ctx, selectHotel+" WHERE id=? LIMIT 1", id)
}

func (s *Store) GetHotelByCode(ctx context.Context, code string) (model.Hotel, error) {
	return s.getHotel(ctx, selectHotel+" WHERE code=? LIMIT 1", code)
}

func (s *Store) getHotel(ctx context.Context, query, arg string) (model.Hotel, error) {
	var h model.Hotel
	err := s.DB.QueryRowContext(ctx, query, arg).
		Scan(&h.ID, &h.Code, &h.Name, &h.Address, &h.City, &h.Stars)
	if err != nil {
		return model.Hotel{}, mapErr(err)
	}
	h.Seasons, err = s.loadSeasons(ctx, h.ID)
	if err != nil {
		return model.Hotel{}, err
	}
	return h, nil
}

func (s *Store) InsertHotel(ctx context.Context, h model.Hotel) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO hotels (id, code, name, address, city, stars) VALUES (?,?,?,?,?,?)",
		h.ID, h.Code, h.Name, h.Address, h.City, h.Stars)
	if err != nil {
		return mapErr(err)
	}
	if err := saveSeasons(ctx, tx, h.ID, h.Seasons); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateHotel replaces the hotel row and rewrites its season list in
// one transaction so the stored order always matches the input order.
func (s *Store) UpdateHotel(ctx context.Context, h model.Hotel) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"UPDATE hotels SET code=?, name=?, address=?, city=?, stars=? WHERE id=?",
		h.Code, h.Name, h.Address, h.City, h.Stars, h.ID)
	if err != nil {
		return mapErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "no change" from "no row".
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM hotels WHERE id=? LIMIT 1", h.ID).Scan(&one); err != nil {
			return mapErr(err)
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM seasons WHERE hotel_id=?", h.ID); err != nil {
		return err
	}
	if err := saveSeasons(ctx, tx, h.ID, h.Seasons); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) DeleteHotel(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM hotels WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	// Seasons cascade via foreign key.
	return nil
}

// loadSeasons returns the hotel's seasons in stored position order.
func (s *Store) loadSeasons(ctx context.Context, hotelID string) ([]model.Season, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, name, start_date, end_date, tariffs FROM seasons WHERE hotel_id=? ORDER BY position",
		hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Season{}
	for rows.Next() {
		var (
			sn      model.Season
			tariffs []byte
		)
		if err := rows.Scan(&sn.ID, &sn.Name, &sn.StartDate, &sn.EndDate, &tariffs); err != nil {
			return nil, err
		}
		sn.Tariffs = map[string]int64{}
		if len(tariffs) > 0 {
			if err := json.Unmarshal(tariffs, &sn.Tariffs); err != nil {
				return nil, err
			}
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}

func saveSeasons(ctx context.Context, tx *sql.Tx, hotelID string, seasons []model.Season) error {
	for i, sn := range seasons {
		tariffs, err := json.Marshal(sn.Tariffs)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO seasons (id, hotel_id, name, start_date, end_date, tariffs, position) VALUES (?,?,?,?,?,?,?)",
			sn.ID, hotelID, sn.Name, sn.StartDate, sn.EndDate, tariffs, i); err != nil {
			return mapErr(err)
		}
	}
	return nil
}
