package create_appointment

import (
	"context"
	"fmt"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// UseCase creates an appointment, enforcing the slot-conflict rule at write
// time. The client runs the same check optimistically against a possibly
// stale snapshot; this use case is the authority, so the check and the
// insert share one serializable transaction with the day's rows locked.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the create-appointment use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%d, start=%s, type=%s",
		req.PatientID, req.StartsAt.Format("2006-01-02 15:04"), req.Type)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Past starts fail before any conflict reasoning runs
	if !req.StartsAt.After(now) {
		uc.logger.Warn("CreateAppointment: start %s is not in the future", req.StartsAt.Format("2006-01-02 15:04"))
		return nil, ErrStartInPast
	}

	candidate := domain.NewInterval(req.StartsAt, domain.DefaultDurationMinutes)

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Lock and fetch the day's active appointments
		from, to := dayBounds(req.StartsAt)
		existing, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			From:            &from,
			To:              &to,
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		if domain.HasConflict(candidate, nil, existing) {
			uc.logger.Warn("CreateAppointment: slot %s-%s already taken",
				candidate.Start.Format("15:04"), candidate.End().Format("15:04"))
			return ErrSlotConflict
		}

		appt := &domain.Appointment{
			PatientID:       req.PatientID,
			StartsAt:        req.StartsAt,
			DurationMinutes: domain.DefaultDurationMinutes,
			Type:            req.Type,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)
	return fromDomain(result), nil
}
