package dashboard

import (
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

type Urgency string

const (
	UrgencyPastDue  Urgency = "past_due"
	UrgencyImminent Urgency = "imminent"
	UrgencyNormal   Urgency = "normal"
)

// Row is one appointment annotated for the reception dashboard.
type Row struct {
	ID              int64
	PatientID       int64
	StartsAt        time.Time
	DurationMinutes int
	Type            domain.AppointmentType
	Status          domain.AppointmentStatus
	Notes           *string
	Urgency         Urgency
	AllowedStatuses []domain.AppointmentStatus
}

// Snapshot is an immutable view of today's schedule. Consumers must treat it
// as read only; the aggregator swaps the whole value on refresh.
type Snapshot struct {
	FetchedAt      time.Time
	Rows           []Row
	CountsByStatus map[domain.AppointmentStatus]int
	CountsByType   map[domain.AppointmentType]int
}

func classifyUrgency(appt *domain.Appointment, now time.Time) Urgency {
	if appt.IsPastDue(now) {
		return UrgencyPastDue
	}
	until := appt.StartsAt.Sub(now)
	if until >= 0 && until <= domain.ImminentWindow && !appt.IsTerminal() {
		return UrgencyImminent
	}
	return UrgencyNormal
}
