package report

import "errors"

var (
	// ErrReportFetch marks a monthly report invocation where any
	// per-user fetch failed; the whole report is shown as an error
	// rather than a partially-correct table.
	ErrReportFetch = errors.New("failed to load report data")

	ErrInvalidDate = errors.New("invalid date")
)
