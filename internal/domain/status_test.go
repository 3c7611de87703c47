package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_NormalLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending cannot complete directly", StatusPending, StatusCompleted, false},
		{"pending cannot be missed", StatusPending, StatusMissed, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed cannot go back to pending", StatusConfirmed, StatusPending, false},
		{"confirmed cannot be missed", StatusConfirmed, StatusMissed, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"cancelled cannot be reactivated", StatusCancelled, StatusPending, false},
		{"missed is terminal", StatusMissed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to, false))
		})
	}
}

func TestCanTransition_PastDueReconciliation(t *testing.T) {
	// A past-due pending appointment can be resolved into any outcome,
	// including missed, without passing through confirmed.
	for _, to := range []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCancelled, StatusMissed} {
		assert.True(t, CanTransition(StatusPending, to, true), "pending -> %s past due", to)
	}

	for _, to := range []AppointmentStatus{StatusCompleted, StatusCancelled, StatusMissed} {
		assert.True(t, CanTransition(StatusConfirmed, to, true), "confirmed -> %s past due", to)
	}

	// Terminal stays terminal even past due.
	assert.False(t, CanTransition(StatusCancelled, StatusMissed, true))
	assert.False(t, CanTransition(StatusCompleted, StatusConfirmed, true))
}

func TestCanTransition_SameStatusNeverTransitions(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusMissed} {
		assert.False(t, CanTransition(s, s, false))
		assert.False(t, CanTransition(s, s, true))
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]AppointmentStatus{StatusConfirmed, StatusCancelled},
		AllowedTransitions(StatusPending, false))

	assert.ElementsMatch(t,
		[]AppointmentStatus{StatusCompleted, StatusCancelled},
		AllowedTransitions(StatusConfirmed, false))

	// Past due widens the set and removes the current status from it.
	assert.ElementsMatch(t,
		[]AppointmentStatus{StatusCompleted, StatusCancelled, StatusMissed},
		AllowedTransitions(StatusConfirmed, true))

	assert.Nil(t, AllowedTransitions(StatusCompleted, false))
	assert.Nil(t, AllowedTransitions(StatusCancelled, true))
	assert.Nil(t, AllowedTransitions(StatusMissed, true))
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseStatus("archived")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseType(t *testing.T) {
	apptType, err := ParseType("cleaning")
	require.NoError(t, err)
	assert.Equal(t, TypeCleaning, apptType)

	_, err = ParseType("surgery")
	assert.Error(t, err)
}
