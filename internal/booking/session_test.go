package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
	"github.com/karimjl/DCB-AppointmentService/internal/integrations/appointments"
)

type fakeGateway struct {
	mu          sync.Mutex
	list        []appointments.Appointment
	listErr     error
	createErr   error
	createCalls int
	updateCalls int
	block       chan struct{}
}

func (f *fakeGateway) ListForDate(ctx context.Context, date time.Time) ([]appointments.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list, nil
}

func (f *fakeGateway) Create(ctx context.Context, req *appointments.CreateRequest) (*appointments.Appointment, error) {
	f.mu.Lock()
	f.createCalls++
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	date, _ := time.Parse(time.RFC3339, req.Date)
	return &appointments.Appointment{
		ID:        42,
		PatientID: req.PatientID,
		Date:      date,
		Type:      req.Type,
		Status:    "pending",
	}, nil
}

func (f *fakeGateway) Update(ctx context.Context, id int64, req *appointments.UpdateRequest) (*appointments.Appointment, error) {
	f.mu.Lock()
	f.updateCalls++
	f.mu.Unlock()
	date, _ := time.Parse(time.RFC3339, req.Date)
	return &appointments.Appointment{
		ID:        id,
		PatientID: req.PatientID,
		Date:      date,
		Type:      req.Type,
		Status:    "pending",
	}, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

func newTestSession(gateway *fakeGateway) *Session {
	return NewSession(gateway, fixedTimeProvider{now: testNow}, nopLogger{},
		5, domain.TypeConsultation, nil)
}

func wireAppt(id int64, start time.Time, status string) appointments.Appointment {
	return appointments.Appointment{
		ID:              id,
		PatientID:       id,
		Date:            start,
		DurationMinutes: 30,
		Type:            "consultation",
		Status:          status,
	}
}

func TestSelectSlot_RejectsPastStart(t *testing.T) {
	session := newTestSession(&fakeGateway{})

	_, err := session.SelectSlot(testNow.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrStartInPast)

	_, err = session.SelectSlot(testNow)
	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestFullFlow_FreeSlotBooks(t *testing.T) {
	gateway := &fakeGateway{}
	session := newTestSession(gateway)

	token, err := session.SelectSlot(testNow.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.False(t, session.CanSubmit())

	require.NoError(t, session.RunCheck(context.Background(), token))
	assert.True(t, session.CanSubmit())

	created, err := session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Nil(t, session.Selected())
}

func TestRunCheck_DetectsConflict(t *testing.T) {
	start := testNow.Add(2 * time.Hour)
	gateway := &fakeGateway{list: []appointments.Appointment{
		wireAppt(1, start.Add(15*time.Minute), "confirmed"),
	}}
	session := newTestSession(gateway)

	token, err := session.SelectSlot(start)
	require.NoError(t, err)
	require.NoError(t, session.RunCheck(context.Background(), token))

	assert.False(t, session.CanSubmit())
	assert.NotEmpty(t, session.ConflictReason())
}

func TestRunCheck_CancelledAppointmentDoesNotBlock(t *testing.T) {
	start := testNow.Add(2 * time.Hour)
	gateway := &fakeGateway{list: []appointments.Appointment{
		wireAppt(1, start, "cancelled"),
	}}
	session := newTestSession(gateway)

	token, err := session.SelectSlot(start)
	require.NoError(t, err)
	require.NoError(t, session.RunCheck(context.Background(), token))

	assert.True(t, session.CanSubmit())
}

func TestRunCheck_StaleResultIsDiscarded(t *testing.T) {
	start := testNow.Add(2 * time.Hour)
	gateway := &fakeGateway{list: []appointments.Appointment{
		wireAppt(1, start, "confirmed"),
	}}
	session := newTestSession(gateway)

	firstToken, err := session.SelectSlot(start)
	require.NoError(t, err)

	// The user picks a different, free slot before the first check lands.
	secondToken, err := session.SelectSlot(testNow.Add(5 * time.Hour))
	require.NoError(t, err)

	// The late first check must not poison the new selection.
	assert.ErrorIs(t, session.RunCheck(context.Background(), firstToken), ErrStale)
	assert.False(t, session.CanSubmit())

	gateway.mu.Lock()
	gateway.list = nil
	gateway.mu.Unlock()

	require.NoError(t, session.RunCheck(context.Background(), secondToken))
	assert.True(t, session.CanSubmit())
	assert.Empty(t, session.ConflictReason())
}

func TestSubmit_ConflictDiscardsSelection(t *testing.T) {
	gateway := &fakeGateway{
		createErr: fmt.Errorf("%w: Ce créneau est déjà pris. Veuillez choisir un autre horaire.",
			appointments.ErrSlotConflict),
	}
	session := newTestSession(gateway)

	token, err := session.SelectSlot(testNow.Add(2 * time.Hour))
	require.NoError(t, err)
	require.NoError(t, session.RunCheck(context.Background(), token))

	_, err = session.Submit(context.Background())
	require.ErrorIs(t, err, ErrSlotConflict)

	// Selection is gone, the same slot cannot be retried.
	assert.Nil(t, session.Selected())
	assert.False(t, session.CanSubmit())
	assert.Contains(t, session.ConflictReason(), "Ce créneau est déjà pris")

	_, err = session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoSlot)
}

func TestSubmit_SecondCallWhileInFlightIsRejected(t *testing.T) {
	block := make(chan struct{})
	gateway := &fakeGateway{block: block}
	session := newTestSession(gateway)

	token, err := session.SelectSlot(testNow.Add(2 * time.Hour))
	require.NoError(t, err)
	require.NoError(t, session.RunCheck(context.Background(), token))

	done := make(chan struct{})
	go func() {
		_, _ = session.Submit(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool {
		gateway.mu.Lock()
		defer gateway.mu.Unlock()
		return gateway.createCalls == 1
	}, time.Second, time.Millisecond)

	_, err = session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)

	close(block)
	<-done

	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	assert.Equal(t, 1, gateway.createCalls)
}

func TestEditSession_OwnSlotDoesNotConflict(t *testing.T) {
	start := testNow.Add(2 * time.Hour)
	gateway := &fakeGateway{list: []appointments.Appointment{
		wireAppt(7, start, "confirmed"),
	}}
	session := NewEditSession(gateway, fixedTimeProvider{now: testNow}, nopLogger{},
		7, 5, domain.TypeConsultation, nil)

	token, err := session.SelectSlot(start)
	require.NoError(t, err)
	require.NoError(t, session.RunCheck(context.Background(), token))
	assert.True(t, session.CanSubmit())

	updated, err := session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, 1, gateway.updateCalls)
	assert.Equal(t, 0, gateway.createCalls)
}
