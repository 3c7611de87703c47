package models

import (
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// AppointmentResponse DTO for one appointment.
// "date" carries the absolute start timestamp in ISO 8601, matching the wire
// contract the front end consumes.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientID       int64   `json:"patientId"`
	Date            string  `json:"date"` // ISO 8601 start timestamp
	DurationMinutes int     `json:"durationMinutes"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// AppointmentListResponse DTO for a list of appointments
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// HistoryResponse DTO for one page of the appointment history
type HistoryResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPages   int64                 `json:"totalPages"`
}

// FromDomainAppointment converts a domain model to its DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		Date:            a.StartsAt.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		Type:            string(a.Type),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converts a list of domain models to DTOs
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}

	for _, a := range appts {
		if dto := FromDomainAppointment(a); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
