// Package stats builds the dashboard read model: today's appointments with
// grouped counts. The projection never mutates stored state; urgency
// classification happens client-side against the same clock rules.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	apptModels "github.com/karimjl/DCB-AppointmentService/internal/service/appointments/models"
	"github.com/karimjl/DCB-AppointmentService/internal/service/stats/models"
)

// Service computes dashboard statistics
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the stats service
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Dashboard returns today's appointments and the grouped counts
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardStatsResponse, error) {
	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	s.logger.Info("Dashboard: fetching stats for %s", from.Format(domain.DateFormat))

	appts, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		From:            &from,
		To:              &to,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("Dashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	countsByStatus := make(map[string]int)
	countsByType := make(map[string]int)
	for _, a := range appts {
		countsByStatus[string(a.Status)]++
		countsByType[string(a.Type)]++
	}

	list := apptModels.FromDomainAppointmentList(appts)

	return &models.DashboardStatsResponse{
		TodayAppointmentsCount: len(list.Appointments),
		TodayAppointments:      list.Appointments,
		CountsByStatus:         countsByStatus,
		CountsByType:           countsByType,
	}, nil
}
