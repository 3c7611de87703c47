package update_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	appointmentRepo "github.com/karimjl/DCB-AppointmentService/internal/infra/storage/appointment"
)

// UseCase applies a status transition to an appointment, consulting the
// status machine. Past-due unresolved appointments get the widened
// reconciliation set; repeating the current status is an idempotent no-op.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the status transition
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: id=%d, status=%s", req.ID, req.Status)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	newStatus, err := domain.ParseStatus(req.Status)
	if err != nil {
		uc.logger.Warn("UpdateStatus: invalid status %q for id=%d", req.Status, req.ID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appt, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateStatus: appointment id=%d not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateStatus: failed to get appointment id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// Repeating the current status is a no-op, not a transition
	if appt.Status == newStatus {
		uc.logger.Info("UpdateStatus: appointment id=%d already has status=%s", req.ID, newStatus)
		return fromDomain(appt), nil
	}

	pastDue := appt.IsPastDue(uc.timeProvider.Now())
	if !domain.CanTransition(appt.Status, newStatus, pastDue) {
		uc.logger.Warn("UpdateStatus: transition %s -> %s forbidden for id=%d (pastDue=%t)",
			appt.Status, newStatus, req.ID, pastDue)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	if err := uc.appointmentRepo.UpdateStatus(ctx, req.ID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateStatus: failed to update status for id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	appt.Status = newStatus

	uc.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", req.ID, newStatus)
	return fromDomain(appt), nil
}
