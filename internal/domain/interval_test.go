package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return parsed
}

func TestInterval_End(t *testing.T) {
	start := mustTime(t, "2026-09-01T10:00:00Z")
	interval := NewInterval(start, 30)

	assert.Equal(t, mustTime(t, "2026-09-01T10:30:00Z"), interval.End())
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name    string
		a       Interval
		b       Interval
		overlap bool
	}{
		{
			name:    "identical intervals",
			a:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
			b:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
			overlap: true,
		},
		{
			name:    "partial overlap",
			a:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
			b:       Interval{Start: time.Date(2026, 9, 1, 10, 15, 0, 0, time.UTC), DurationMinutes: 30},
			overlap: true,
		},
		{
			name:    "containment",
			a:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 60},
			b:       Interval{Start: time.Date(2026, 9, 1, 10, 15, 0, 0, time.UTC), DurationMinutes: 15},
			overlap: true,
		},
		{
			name:    "touching boundaries do not overlap",
			a:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
			b:       Interval{Start: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC), DurationMinutes: 30},
			overlap: false,
		},
		{
			name:    "disjoint",
			a:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
			b:       Interval{Start: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC), DurationMinutes: 30},
			overlap: false,
		},
		{
			name:    "one minute of shared time",
			a:       Interval{Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
			b:       Interval{Start: time.Date(2026, 9, 1, 10, 29, 0, 0, time.UTC), DurationMinutes: 30},
			overlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}
