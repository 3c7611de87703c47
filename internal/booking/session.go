package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	"github.com/karimjl/DCB-AppointmentService/internal/integrations/appointments"
)

// Session drives one booking or edit flow at the front desk. The receptionist
// picks a slot, the session pre-checks availability against the latest
// schedule, and Submit sends the request. The server stays authoritative: a
// conflict on submit clears the selection so a fresh slot must be picked.
type Session struct {
	gateway      Gateway
	timeProvider TimeProvider
	logger       Logger

	mu             sync.Mutex
	patientID      int64
	apptType       domain.AppointmentType
	notes          *string
	editID         *int64
	candidate      *domain.Interval
	conflict       bool
	conflictReason string
	checkSeq       uint64
	checkedSeq     uint64
	inFlight       bool
}

// NewSession starts a flow for a new appointment.
func NewSession(gateway Gateway, timeProvider TimeProvider, logger Logger, patientID int64, apptType domain.AppointmentType, notes *string) *Session {
	return &Session{
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
		patientID:    patientID,
		apptType:     apptType,
		notes:        notes,
	}
}

// NewEditSession starts a flow that reschedules an existing appointment.
// The edited appointment never conflicts with itself.
func NewEditSession(gateway Gateway, timeProvider TimeProvider, logger Logger, editID, patientID int64, apptType domain.AppointmentType, notes *string) *Session {
	s := NewSession(gateway, timeProvider, logger, patientID, apptType, notes)
	s.editID = &editID
	return s
}

// SelectSlot records the candidate slot and returns a token for RunCheck.
// Selecting a new slot invalidates any check still running for the old one.
func (s *Session) SelectSlot(start time.Time) (uint64, error) {
	now := s.timeProvider.Now()
	if !start.After(now) {
		return 0, fmt.Errorf("%w: %s", ErrStartInPast, start.Format(time.RFC3339))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	interval := domain.NewInterval(start, domain.DefaultDurationMinutes)
	s.candidate = &interval
	s.conflict = false
	s.conflictReason = ""
	s.checkSeq++
	s.checkedSeq = 0

	return s.checkSeq, nil
}

// RunCheck fetches the candidate day's schedule and evaluates the overlap
// predicate locally. Only the result for the most recent selection is kept.
func (s *Session) RunCheck(ctx context.Context, token uint64) error {
	s.mu.Lock()
	if s.candidate == nil {
		s.mu.Unlock()
		return ErrNoSlot
	}
	if token != s.checkSeq {
		s.mu.Unlock()
		return ErrStale
	}
	candidate := *s.candidate
	s.mu.Unlock()

	list, err := s.gateway.ListForDate(ctx, candidate.Start)
	if err != nil {
		return fmt.Errorf("%w: RunCheck - fetch schedule: %v", ErrInternal, err)
	}

	existing := make([]*domain.Appointment, 0, len(list))
	for _, item := range list {
		existing = append(existing, fromWire(item))
	}

	conflict := domain.HasConflict(candidate, s.editID, existing)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer selection supersedes this result, drop it.
	if token != s.checkSeq {
		return ErrStale
	}

	s.checkedSeq = token
	s.conflict = conflict
	if conflict {
		s.conflictReason = "Ce créneau est déjà pris. Veuillez choisir un autre horaire."
		s.logger.Warn("Session - Local check found conflict at %s", candidate.Start.Format(time.RFC3339))
	}
	return nil
}

// CanSubmit reports whether the current selection passed its availability
// check and no submission is running.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidate != nil &&
		s.checkedSeq == s.checkSeq &&
		!s.conflict &&
		!s.inFlight
}

// ConflictReason returns the user-facing message of the last detected
// conflict, or "" when there is none.
func (s *Session) ConflictReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflictReason
}

// Selected returns the current candidate slot, or nil.
func (s *Session) Selected() *domain.Interval {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidate == nil {
		return nil
	}
	c := *s.candidate
	return &c
}

// Submit sends the booking to the server. On a conflict response the
// selection is discarded and the server's message is kept; the caller must
// pick another slot, never retry the same one.
func (s *Session) Submit(ctx context.Context) (*appointments.Appointment, error) {
	s.mu.Lock()
	if s.candidate == nil {
		s.mu.Unlock()
		return nil, ErrNoSlot
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrInFlight
	}
	s.inFlight = true
	candidate := *s.candidate
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	created, err := s.send(ctx, candidate)
	if err != nil {
		if errors.Is(err, appointments.ErrSlotConflict) {
			s.mu.Lock()
			s.candidate = nil
			s.conflict = true
			s.conflictReason = conflictMessage(err)
			s.checkedSeq = 0
			s.mu.Unlock()

			s.logger.Warn("Session - Submit rejected with conflict at %s", candidate.Start.Format(time.RFC3339))
			return nil, fmt.Errorf("%w: %s", ErrSlotConflict, conflictMessage(err))
		}
		return nil, fmt.Errorf("%w: Submit - send request: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.candidate = nil
	s.conflict = false
	s.conflictReason = ""
	s.mu.Unlock()

	s.logger.Info("Session - Booked appointment id=%d at %s", created.ID, candidate.Start.Format(time.RFC3339))
	return created, nil
}

func (s *Session) send(ctx context.Context, candidate domain.Interval) (*appointments.Appointment, error) {
	date := candidate.Start.Format(time.RFC3339)

	if s.editID != nil {
		return s.gateway.Update(ctx, *s.editID, &appointments.UpdateRequest{
			PatientID: s.patientID,
			Date:      date,
			Type:      string(s.apptType),
			Notes:     s.notes,
		})
	}

	return s.gateway.Create(ctx, &appointments.CreateRequest{
		PatientID: s.patientID,
		Date:      date,
		Type:      string(s.apptType),
		Notes:     s.notes,
	})
}

func conflictMessage(err error) string {
	msg := err.Error()
	prefix := appointments.ErrSlotConflict.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

func fromWire(item appointments.Appointment) *domain.Appointment {
	return &domain.Appointment{
		ID:              item.ID,
		PatientID:       item.PatientID,
		StartsAt:        item.Date,
		DurationMinutes: item.DurationMinutes,
		Type:            domain.AppointmentType(item.Type),
		Status:          domain.AppointmentStatus(item.Status),
		Notes:           item.Notes,
	}
}
