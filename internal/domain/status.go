package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus is returned when a string does not name a valid status
var ErrUnknownStatus = errors.New("unknown appointment status")

// IsTerminal returns true for statuses that accept no further transitions
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusMissed
}

// normalTransitions is the regular lifecycle:
// pending -> confirmed -> completed, with cancellation possible from both
// non-terminal states.
var normalTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// pastDueResolutions are the statuses a past-due unresolved appointment may
// be manually reconciled into from the dashboard. This is the only path that
// can produce "missed": the outcome was never recorded in real time, so the
// sequence constraint is relaxed.
var pastDueResolutions = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusMissed,
}

// CanTransition reports whether moving from one status to another is legal.
// pastDue widens the allowed set for non-terminal appointments whose start
// has already elapsed. A same-status "transition" is never legal; callers
// treat it as a no-op instead.
func CanTransition(from, to AppointmentStatus, pastDue bool) bool {
	if from == to {
		return false
	}
	for _, allowed := range AllowedTransitions(from, pastDue) {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the legal target statuses for an appointment.
// Terminal statuses return nil: there is no reactivation path for
// appointments.
func AllowedTransitions(from AppointmentStatus, pastDue bool) []AppointmentStatus {
	if from.IsTerminal() {
		return nil
	}
	if pastDue {
		targets := make([]AppointmentStatus, 0, len(pastDueResolutions))
		for _, s := range pastDueResolutions {
			if s != from {
				targets = append(targets, s)
			}
		}
		return targets
	}
	return normalTransitions[from]
}

// ParseStatus validates and converts a status string
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusMissed:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// ParseType validates and converts an appointment type string
func ParseType(s string) (AppointmentType, error) {
	switch AppointmentType(s) {
	case TypeConsultation, TypeControl, TypeEmergency, TypeCleaning:
		return AppointmentType(s), nil
	default:
		return "", fmt.Errorf("unknown appointment type: %q", s)
	}
}
