package update_status

import (
	"context"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// AppointmentRepository repository surface needed by this use case
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// TimeProvider supplies the current time; past-due widening of the legal
// transition set depends on it
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
