package get_dashboard_stats

import (
	"context"

	"github.com/karimjl/DCB-AppointmentService/internal/service/stats/models"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
