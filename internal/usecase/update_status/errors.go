package update_status

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("update_status: invalid input data")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("update_status: appointment not found")

	// ErrInvalidTransition is returned when the status machine forbids the
	// requested transition
	ErrInvalidTransition = errors.New("update_status: illegal status transition")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("update_status: internal error")
)
