package get_history

import (
	"context"

	"github.com/karimjl/DCB-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	History(ctx context.Context, page, limit int) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
