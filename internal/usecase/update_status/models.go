package update_status

import (
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// Request model for a status transition
type Request struct {
	ID     int64
	Status string
}

// Response model with the appointment after the transition
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
