package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusMissed    AppointmentStatus = "missed"
)

// AppointmentType represents the kind of visit
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeControl      AppointmentType = "control"
	TypeEmergency    AppointmentType = "emergency"
	TypeCleaning     AppointmentType = "cleaning"
)

// Appointment represents a scheduled visit on the clinic calendar.
// The whole clinic is a single bookable resource: there is no
// per-practitioner partition of the calendar.
type Appointment struct {
	ID              int64
	PatientID       int64
	StartsAt        time.Time
	DurationMinutes int
	Type            AppointmentType
	Status          AppointmentStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still holds its slot.
// Only active appointments count against availability.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if the appointment reached a final status
func (a *Appointment) IsTerminal() bool {
	return a.Status.IsTerminal()
}

// IsPastDue returns true if the appointment's start has elapsed without the
// appointment ever reaching a terminal status
func (a *Appointment) IsPastDue(now time.Time) bool {
	return a.StartsAt.Before(now) && !a.IsTerminal()
}

// CanBeEdited returns true if the appointment's time and details may still change
func (a *Appointment) CanBeEdited() bool {
	return a.IsActive()
}

// Interval returns the time interval occupied by the appointment
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartsAt, DurationMinutes: a.DurationMinutes}
}

// AppointmentsFilter filters calendar reads
type AppointmentsFilter struct {
	From            *time.Time         // Range start, inclusive (optional)
	To              *time.Time         // Range end, exclusive (optional)
	Status          *AppointmentStatus // Filter by status (optional)
	IncludeInactive bool               // Include cancelled/missed/completed rows
}
