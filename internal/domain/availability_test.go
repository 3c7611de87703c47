package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/karimjl/DCB-AppointmentService/pkg/ptr"
)

func apptAt(id int64, start time.Time, status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:              id,
		PatientID:       1,
		StartsAt:        start,
		DurationMinutes: DefaultDurationMinutes,
		Type:            TypeConsultation,
		Status:          status,
	}
}

func TestHasConflict(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	tests := []struct {
		name      string
		candidate Interval
		excludeID *int64
		existing  []*Appointment
		conflict  bool
	}{
		{
			name:      "empty schedule",
			candidate: NewInterval(at(10, 0), 30),
			existing:  nil,
			conflict:  false,
		},
		{
			name:      "exact same slot held by confirmed appointment",
			candidate: NewInterval(at(10, 0), 30),
			existing:  []*Appointment{apptAt(1, at(10, 0), StatusConfirmed)},
			conflict:  true,
		},
		{
			name:      "partial overlap with pending appointment",
			candidate: NewInterval(at(10, 15), 30),
			existing:  []*Appointment{apptAt(1, at(10, 0), StatusPending)},
			conflict:  true,
		},
		{
			name:      "back to back slots are free",
			candidate: NewInterval(at(10, 30), 30),
			existing:  []*Appointment{apptAt(1, at(10, 0), StatusConfirmed)},
			conflict:  false,
		},
		{
			name:      "cancelled appointment releases its slot",
			candidate: NewInterval(at(10, 0), 30),
			existing:  []*Appointment{apptAt(1, at(10, 0), StatusCancelled)},
			conflict:  false,
		},
		{
			name:      "completed appointment releases its slot",
			candidate: NewInterval(at(10, 0), 30),
			existing:  []*Appointment{apptAt(1, at(10, 0), StatusCompleted)},
			conflict:  false,
		},
		{
			name:      "missed appointment releases its slot",
			candidate: NewInterval(at(10, 0), 30),
			existing:  []*Appointment{apptAt(1, at(10, 0), StatusMissed)},
			conflict:  false,
		},
		{
			name:      "editing keeps own slot without self conflict",
			candidate: NewInterval(at(10, 0), 30),
			excludeID: ptr.Ptr(int64(7)),
			existing:  []*Appointment{apptAt(7, at(10, 0), StatusConfirmed)},
			conflict:  false,
		},
		{
			name:      "editing still conflicts with other appointments",
			candidate: NewInterval(at(10, 0), 30),
			excludeID: ptr.Ptr(int64(7)),
			existing: []*Appointment{
				apptAt(7, at(14, 0), StatusConfirmed),
				apptAt(8, at(10, 0), StatusPending),
			},
			conflict: true,
		},
		{
			name:      "busy day with one free gap",
			candidate: NewInterval(at(11, 0), 30),
			existing: []*Appointment{
				apptAt(1, at(10, 0), StatusConfirmed),
				apptAt(2, at(10, 30), StatusPending),
				apptAt(3, at(11, 30), StatusConfirmed),
			},
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(tt.candidate, tt.excludeID, tt.existing)
			assert.Equal(t, tt.conflict, got)
		})
	}
}
