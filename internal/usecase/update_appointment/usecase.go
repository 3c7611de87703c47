package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	appointmentRepo "github.com/karimjl/DCB-AppointmentService/internal/infra/storage/appointment"
)

// UseCase reschedules or edits an existing appointment. Same authoritative
// conflict rule as creation, with one difference: the appointment being
// edited is excluded from the comparison, so keeping the original slot never
// self-conflicts.
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

// Execute runs the update-appointment use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, patient=%d, start=%s, type=%s",
		req.ID, req.PatientID, req.StartsAt.Format("2006-01-02 15:04"), req.Type)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if !req.StartsAt.After(now) {
		uc.logger.Warn("UpdateAppointment: start %s is not in the future", req.StartsAt.Format("2006-01-02 15:04"))
		return nil, ErrStartInPast
	}

	candidate := domain.NewInterval(req.StartsAt, domain.DefaultDurationMinutes)

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !current.CanBeEdited() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d has status=%s, not editable", req.ID, current.Status)
			return ErrNotEditable
		}

		from, to := dayBounds(req.StartsAt)
		existing, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			From:            &from,
			To:              &to,
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		if domain.HasConflict(candidate, &req.ID, existing) {
			uc.logger.Warn("UpdateAppointment: slot %s-%s already taken",
				candidate.Start.Format("15:04"), candidate.End().Format("15:04"))
			return ErrSlotConflict
		}

		current.PatientID = req.PatientID
		current.StartsAt = req.StartsAt
		current.DurationMinutes = domain.DefaultDurationMinutes
		current.Type = req.Type
		current.Notes = req.Notes

		updated, err := uc.appointmentRepo.Update(txCtx, current)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)
	return fromDomain(result), nil
}

// validateRequest validates the request fields
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if _, err := domain.ParseType(string(req.Type)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// dayBounds returns the [start, end) of the calendar day containing t
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
