package domain

import "time"

// Interval is the half-open time interval [Start, Start+Duration) occupied
// by an appointment on the calendar
type Interval struct {
	Start           time.Time
	DurationMinutes int
}

// NewInterval creates an interval starting at start
func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{Start: start, DurationMinutes: durationMinutes}
}

// End returns the exclusive end of the interval
func (i Interval) End() time.Time {
	return i.Start.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two intervals occupy common calendar time.
// Strict inequalities on both sides: an interval ending exactly when the
// other begins does not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End()) && other.Start.Before(i.End())
}
