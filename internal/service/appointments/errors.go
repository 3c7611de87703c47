package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
