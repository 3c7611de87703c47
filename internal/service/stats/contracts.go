package stats

import (
	"context"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// AppointmentRepository repository surface needed by the stats read model
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider supplies "today" and "now" for the dashboard
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
