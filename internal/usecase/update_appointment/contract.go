package update_appointment

import (
	"context"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// AppointmentRepository repository surface needed by this use case
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransactionManager runs the availability check and the update atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
