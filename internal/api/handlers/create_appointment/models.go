package create_appointment

import (
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	createAppointment "github.com/karimjl/DCB-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientID int64   `json:"patientId"`
	Date      string  `json:"date"` // ISO 8601 start timestamp
	Type      string  `json:"type"`
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientID       int64   `json:"patientId"`
	Date            string  `json:"date"`
	DurationMinutes int     `json:"durationMinutes"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}

	apptType, err := domain.ParseType(r.Type)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		PatientID: r.PatientID,
		StartsAt:  startsAt,
		Type:      apptType,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		PatientID:       resp.PatientID,
		Date:            resp.StartsAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Type:            resp.Type,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
