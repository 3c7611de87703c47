package dashboard

import (
	"context"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/integrations/appointments"
)

type Gateway interface {
	ListForDate(ctx context.Context, date time.Time) ([]appointments.Appointment, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
