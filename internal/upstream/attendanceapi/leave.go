package attendanceapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetApprovedLeaveDays implements leave.LeaveRepository.
func (c *Client) GetApprovedLeaveDays(ctx context.Context, userID string, month, year int) (int, error) {
	params := url.Values{}
	params.Set("month", strconv.Itoa(month))
	params.Set("year", strconv.Itoa(year))

	var resp struct {
		LeaveDays int `json:"leaveDays"`
	}
	if err := c.get(ctx, "/api/leaves/approved/"+url.PathEscape(userID), params, &resp); err != nil {
		return 0, fmt.Errorf("failed to get approved leave days: %w", err)
	}
	return resp.LeaveDays, nil
}

// GetPendingLeaveRequestCount implements leave.LeaveRepository.
func (c *Client) GetPendingLeaveRequestCount(ctx context.Context) (int, error) {
	var resp struct {
		PendingCount int `json:"pendingCount"`
	}
	if err := c.get(ctx, "/api/leaves/pending/count", nil, &resp); err != nil {
		return 0, fmt.Errorf("failed to get pending leave count: %w", err)
	}
	return resp.PendingCount, nil
}
