// Package engine implements the booking, pricing and availability
// rules of the reservation system.  It owns every state change of a
// booking; handlers only translate HTTP requests into engine calls
// and engine errors into status codes.
//
// This file defines the error kinds shared by all engine operations.
// Each failure is one of these sentinels wrapped with a
// human-readable message, so callers can branch with errors.Is while
// the presentation layer surfaces err.Error() verbatim.
package engine

import "errors"

// ErrNotFound is returned when a hotel, room, season or booking does
// not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for missing required fields, malformed or
// inverted date ranges and negative prices.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a requested date range overlaps an
// existing booking on the same room, or when a unique value such as a
// hotel code is already taken.
var ErrConflict = errors.New("conflict")

// ErrInvalidTransition is returned for a booking status change the
// state machine does not allow.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrAlreadyDecided is returned when approving or rejecting a booking
// whose validation status is no longer pending.
var ErrAlreadyDecided = errors.New("already decided")

// ErrReasonRequired is returned when a rejection is attempted without
// a reason.
var ErrReasonRequired = errors.New("reason required")

// ErrForbidden is returned when a client acts on a booking belonging
// to another user.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState is returned when an operation requires the booking
// to be in a particular state, such as adding consumptions to a
// booking that is not checked in.
var ErrInvalidState = errors.New("invalid state")
