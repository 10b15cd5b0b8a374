package mysql

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func (s *Store) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, booking_id, user_id, rating, comment, created_at FROM feedback ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Feedback{}
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.BookingID, &f.UserID, &f.Rating, &f.Comment, &f.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) GetFeedbackByBookingAndUser(ctx context.Context, bookingID, userID string) (model.Feedback, error) {
	var f model.Feedback
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, booking_id, user_id, rating, comment, created_at FROM feedback WHERE booking_id=? AND user_id=? LIMIT 1",
		bookingID, userID).
		Scan(&f.ID, &f.BookingID, &f.UserID, &f.Rating, &f.Comment, &f.Timestamp)
	if err != nil {
		return model.Feedback{}, mapErr(err)
	}
	return f, nil
}

// UpsertFeedback keeps at most one row per (booking, user).  The
// original entry's id survives a resubmission.
func (s *Store) UpsertFeedback(ctx context.Context, f model.Feedback) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO feedback (id, booking_id, user_id, rating, comment, created_at) VALUES (?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE rating=VALUES(rating), comment=VALUES(comment), created_at=VALUES(created_at)`,
		f.ID, f.BookingID, f.UserID, f.Rating, f.Comment, f.Timestamp)
	return mapErr(err)
}
