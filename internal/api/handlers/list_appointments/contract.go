package list_appointments

import (
	"context"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListForDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
