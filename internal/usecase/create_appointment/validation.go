package create_appointment

import (
	"fmt"
	"time"

	"github.com/karimjl/DCB-AppointmentService/internal/domain"
)

// validateRequest validates the request fields
func validateRequest(req *Request) error {
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

// dayBounds returns the [start, end) of the calendar day containing t,
// in t's own location. The conflict check only needs that day's rows.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
