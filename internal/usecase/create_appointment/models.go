package create_appointment

import (
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// Request model for creating an appointment
type Request struct {
	PatientID int64                  // Patient reference (external entity)
	StartsAt  time.Time              // Absolute start timestamp, timezone-aware
	Type      domain.AppointmentType // Visit type
	Notes     *string                // Free text, not interpreted (optional)
}

// Response model with the created appointment
type Response struct {
	ID              int64
	PatientID       int64
	StartsAt        time.Time
	DurationMinutes int
	Type            string
	Status          string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		PatientID:       appt.PatientID,
		StartsAt:        appt.StartsAt,
		DurationMinutes: appt.DurationMinutes,
		Type:            string(appt.Type),
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
