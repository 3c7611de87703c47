package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	appointmentRepo "github.com/karimjl/DCB-AppointmentService/internal/infra/storage/appointment"
	"github.com/karimjl/DCB-AppointmentService/internal/service/appointments/models"
)

// Default page size for the history screen
const defaultHistoryLimit = 20

// Service is the read side of the appointment calendar
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates the appointments read service
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID fetches one appointment
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListForDate fetches every appointment of one calendar day, including
// terminal ones: the day view shows cancelled and completed visits too.
// Day boundaries are computed in the date's own location.
func (s *Service) ListForDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListForDate: fetching appointments for %s", date.Format(domain.DateFormat))

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)

	appts, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		From:            &from,
		To:              &to,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("ListForDate: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: fetched %d appointments for %s", len(appts), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appts), nil
}

// History fetches one page of the full appointment history, newest first
func (s *Service) History(ctx context.Context, page, limit int) (*models.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	s.logger.Info("History: fetching page=%d limit=%d", page, limit)

	offset := uint64(page-1) * uint64(limit)
	appts, total, err := s.appointmentRepo.ListPage(ctx, uint64(limit), offset)
	if err != nil {
		s.logger.Error("History: repository error page=%d: %v", page, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	list := models.FromDomainAppointmentList(appts)
	return &models.HistoryResponse{
		Appointments: list.Appointments,
		TotalPages:   totalPages,
	}, nil
}
