package report

import "context"

// ReportService builds derived attendance views from already-persisted
// events. It never touches the capture/submission path.
type ReportService interface {
	// MonthlyReport computes one row per user for a month
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ExportMonthlyReport renders the monthly report as a spreadsheet
	ExportMonthlyReport(ctx context.Context, req MonthlyReportRequest) ([]byte, string, error)

	// DailyRoster reduces each user's events on one date to a single row
	DailyRoster(ctx context.Context, date string) (DailyRoster, error)

	// UserMonthlyReport pairs a user's check-ins with same-day
	// check-outs for a month
	UserMonthlyReport(ctx context.Context, userID string, month, year int) (UserMonthlyReport, error)

	// PendingLeaveRequests returns the review-queue badge count
	PendingLeaveRequests(ctx context.Context) (int, error)
}
