package domain

import "time"

// Scheduling policy constants
const (
	// DefaultDurationMinutes is the canonical appointment length for every
	// visit type. An older UI message mentioned a 25-minute buffer; that
	// figure was stale, 30 minutes is the policy.
	DefaultDurationMinutes = 30

	// ImminentWindow is how far ahead of its start an appointment is
	// highlighted as imminent on the dashboard
	ImminentWindow = 20 * time.Minute

	MaxNotesLength = 500
)

// Format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses hold their slot and count against availability
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses never block a slot
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusMissed,
}

// AppointmentTypes lists every valid visit type
var AppointmentTypes = []AppointmentType{
	TypeConsultation,
	TypeControl,
	TypeEmergency,
	TypeCleaning,
}
