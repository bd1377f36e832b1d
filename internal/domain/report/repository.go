package report

import "context"

// CalendarRepository reads the externally configured working-day
// calendar.
type CalendarRepository interface {
	// GetWorkingDays returns the number of expected working days in a
	// month
	GetWorkingDays(ctx context.Context, month, year int) (int, error)
}
