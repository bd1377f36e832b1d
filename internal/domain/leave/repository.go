package leave

import "context"

// LeaveRepository reads approved-leave data from the external leave
// request store.
type LeaveRepository interface {
	// GetApprovedLeaveDays returns the number of approved leave days
	// for a user in a month
	GetApprovedLeaveDays(ctx context.Context, userID string, month, year int) (int, error)

	// GetPendingLeaveRequestCount returns the number of leave requests
	// awaiting review
	GetPendingLeaveRequestCount(ctx context.Context) (int, error)
}
