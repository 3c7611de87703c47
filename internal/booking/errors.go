package booking

import "errors"

var (
	ErrStartInPast  = errors.New("booking: slot start is in the past")
	ErrNoSlot       = errors.New("booking: no slot selected")
	ErrSlotConflict = errors.New("booking: slot conflict")
	ErrInFlight     = errors.New("booking: submission already in flight")
	ErrStale        = errors.New("booking: availability check superseded")
	ErrInternal     = errors.New("booking: internal error")
)
