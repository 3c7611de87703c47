package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	"github.com/karimjl/DCB-AppointmentService/internal/integrations/appointments"
)

const DefaultRefreshInterval = 30 * time.Second

// Aggregator polls the appointment service and maintains the current day's
// snapshot for the reception dashboard. A refresh that fails keeps the last
// good snapshot in place.
type Aggregator struct {
	gateway      Gateway
	timeProvider TimeProvider
	logger       Logger
	interval     time.Duration
	onSnapshot   func(*Snapshot)

	mu         sync.Mutex
	snapshot   *Snapshot
	refreshing bool
}

type Option func(*Aggregator)

func WithRefreshInterval(d time.Duration) Option {
	return func(a *Aggregator) {
		a.interval = d
	}
}

// WithOnSnapshot registers a callback invoked after each successful refresh.
func WithOnSnapshot(fn func(*Snapshot)) Option {
	return func(a *Aggregator) {
		a.onSnapshot = fn
	}
}

func NewAggregator(gateway Gateway, timeProvider TimeProvider, logger Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
		interval:     DefaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run refreshes immediately, then on every tick until ctx is cancelled.
// A tick that arrives while the previous refresh is still in flight is
// skipped rather than queued.
func (a *Aggregator) Run(ctx context.Context) {
	a.Refresh(ctx)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Aggregator - Stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			a.Refresh(ctx)
		}
	}
}

// Refresh fetches today's appointments and rebuilds the snapshot. It returns
// false when skipped because another refresh is already running.
func (a *Aggregator) Refresh(ctx context.Context) bool {
	a.mu.Lock()
	if a.refreshing {
		a.mu.Unlock()
		a.logger.Warn("Aggregator - Refresh skipped, previous one still in flight")
		return false
	}
	a.refreshing = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.refreshing = false
		a.mu.Unlock()
	}()

	now := a.timeProvider.Now()

	list, err := a.gateway.ListForDate(ctx, now)
	if err != nil {
		a.logger.Error("Aggregator - Refresh failed, keeping previous snapshot: %v", err)
		return false
	}

	snapshot := buildSnapshot(list, now)

	a.mu.Lock()
	a.snapshot = snapshot
	a.mu.Unlock()

	a.logger.Info("Aggregator - Refreshed: %d appointments", len(snapshot.Rows))
	if a.onSnapshot != nil {
		a.onSnapshot(snapshot)
	}
	return true
}

// Snapshot returns the latest snapshot, or nil before the first successful
// refresh.
func (a *Aggregator) Snapshot() *Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot
}

func buildSnapshot(list []appointments.Appointment, now time.Time) *Snapshot {
	snapshot := &Snapshot{
		FetchedAt:      now,
		Rows:           make([]Row, 0, len(list)),
		CountsByStatus: make(map[domain.AppointmentStatus]int),
		CountsByType:   make(map[domain.AppointmentType]int),
	}

	for _, item := range list {
		appt := fromWire(item)

		snapshot.CountsByStatus[appt.Status]++
		snapshot.CountsByType[appt.Type]++

		snapshot.Rows = append(snapshot.Rows, Row{
			ID:              appt.ID,
			PatientID:       appt.PatientID,
			StartsAt:        appt.StartsAt,
			DurationMinutes: appt.DurationMinutes,
			Type:            appt.Type,
			Status:          appt.Status,
			Notes:           appt.Notes,
			Urgency:         classifyUrgency(appt, now),
			AllowedStatuses: domain.AllowedTransitions(appt.Status, appt.IsPastDue(now)),
		})
	}

	return snapshot
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
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
