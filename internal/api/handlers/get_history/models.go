package get_history

import "github.com/karimjl/DCB-AppointmentService/internal/service/appointments/models"

// HistoryResponse is the one payload that extends the data envelope with a
// pagination field, matching the contract the history screen consumes
type HistoryResponse struct {
	Data       []models.AppointmentResponse `json:"data"`
	TotalPages int64                        `json:"totalPages"`
}
