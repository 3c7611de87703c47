package appointments

import "time"

// Appointment is the wire representation served by the appointment service.
type Appointment struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patientId"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	PatientID int64   `json:"patientId"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Notes     *string `json:"notes,omitempty"`
}

type UpdateRequest struct {
	PatientID int64   `json:"patientId"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Notes     *string `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type HistoryPage struct {
	Appointments []Appointment
	TotalPages   int64
}

type dataEnvelope struct {
	Data []Appointment `json:"data"`
}

type itemEnvelope struct {
	Data Appointment `json:"data"`
}

type historyEnvelope struct {
	Data       []Appointment `json:"data"`
	TotalPages int64         `json:"totalPages"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}
