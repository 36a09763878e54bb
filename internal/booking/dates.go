package booking

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange reports a booking period that is malformed or starts
// too early. It is always raised before any repository access.
var ErrInvalidDateRange = errors.New("invalid date range")

// toDate strips the time-of-day component, leaving midnight UTC of the same
// calendar date. Every comparison in this package goes through it.
func toDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// overlaps reports whether the inclusive date ranges [s1,e1] and [s2,e2]
// share at least one calendar day. Ranges touching on a single day count as
// overlapping: that day is occupied by both. Callers must pass normalized
// dates (see toDate).
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// validateRange enforces the two admission preconditions: the range must be
// ordered, and it must start strictly after today. A stay may begin
// tomorrow at the earliest; same-day bookings are rejected.
func (m *Manager) validateRange(startDate, endDate time.Time) error {
	start, end := toDate(startDate), toDate(endDate)

	if start.After(end) {
		return fmt.Errorf("%w: the start date cannot be later than the end date", ErrInvalidDateRange)
	}

	if !start.After(toDate(m.now())) {
		return fmt.Errorf("%w: the start date must be later than today", ErrInvalidDateRange)
	}

	return nil
}
