package appointments

import (
	"context"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// AppointmentRepository repository surface needed by the read side
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	ListPage(ctx context.Context, limit, offset uint64) ([]*domain.Appointment, int64, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
