package domain

// HasConflict reports whether the candidate interval collides with any active
// appointment in existing. Appointments in terminal statuses do not hold
// their slot. excludeID, when set, skips the appointment being edited so a
// slot never conflicts with itself.
//
// Pure function over its inputs: fetching a fresh snapshot of existing
// appointments is the caller's responsibility. Rejecting past start times is
// a separate rule applied before this check runs.
func HasConflict(candidate Interval, excludeID *int64, existing []*Appointment) bool {
	for _, appt := range existing {
		if !appt.IsActive() {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if candidate.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}
