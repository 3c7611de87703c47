package update_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrNotEditable is returned when the appointment reached a terminal
	// status and its details may no longer change
	ErrNotEditable = errors.New("update_appointment: appointment can no longer be edited")

	// ErrStartInPast is returned when the new start time has already elapsed
	ErrStartInPast = errors.New("update_appointment: start time is in the past")

	// ErrSlotConflict is returned when the new interval overlaps another
	// active appointment. The appointment's own current slot never conflicts
	// with itself.
	ErrSlotConflict = errors.New("update_appointment: slot conflicts with an existing appointment")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("update_appointment: internal error")
)
