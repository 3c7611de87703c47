package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrStartInPast is returned when the requested start time has already
	// elapsed. Checked before the conflict check: a past slot is a distinct
	// failure, not a conflict.
	ErrStartInPast = errors.New("create_appointment: start time is in the past")

	// ErrSlotConflict is returned when the requested interval overlaps an
	// active appointment. This is the authoritative decision: the optimistic
	// client-side check may have passed on a stale snapshot.
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_appointment: internal error")
)
