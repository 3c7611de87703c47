package appointments

import "errors"

var (
	ErrSlotConflict        = errors.New("appointments client: slot conflict")
	ErrAppointmentNotFound = errors.New("appointments client: appointment not found")
	ErrBadRequest          = errors.New("appointments client: bad request")
	ErrInvalidResponse     = errors.New("appointments client: invalid response")
	ErrInternal            = errors.New("appointments client: internal error")
)
