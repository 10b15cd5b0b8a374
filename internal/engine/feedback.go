package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// SubmitFeedback records a guest's rating for a booking.  A second
// submission by the same user for the same booking replaces the
// earlier one instead of creating a duplicate.
func (e *Engine) SubmitFeedback(ctx context.Context, bookingID, userID string, rating int, comment string) (model.Feedback, error) {
	if rating < 1 || rating > 5 {
		return model.Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	_, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return model.Feedback{}, err
	}
	if b.UserID != userID {
		return model.Feedback{}, fmt.Errorf("%w: feedback can only be left on your own bookings", ErrForbidden)
	}
	f := model.Feedback{
		ID:        e.newID(),
		BookingID: bookingID,
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Timestamp: e.now(),
	}
	if err := e.feedback.UpsertFeedback(ctx, f); err != nil {
		return model.Feedback{}, err
	}
	return f, nil
}

// GetFeedback returns the user's feedback entry for a booking, or
// NotFound when none was submitted.
func (e *Engine) GetFeedback(ctx context.Context, bookingID, userID string) (model.Feedback, error) {
	f, err := e.feedback.GetFeedbackByBookingAndUser(ctx, bookingID, userID)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("%w: no feedback for booking %s", ErrNotFound, bookingID)
	}
	return f, nil
}

// ListFeedback returns all feedback entries, oldest first.  Admin
// view.
func (e *Engine) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	return e.feedback.ListFeedback(ctx)
}
