package update_status

import (
	"time"

	updateStatus "github.com/karimjl/DCB-AppointmentService/internal/usecase/update_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
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

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *updateStatus.Response) *AppointmentResponse {
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
