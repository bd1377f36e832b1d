package attendanceapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetWorkingDays implements report.CalendarRepository.
func (c *Client) GetWorkingDays(ctx context.Context, month, year int) (int, error) {
	params := url.Values{}
	params.Set("month", strconv.Itoa(month))
	params.Set("year", strconv.Itoa(year))

	var resp struct {
		WorkingDays int `json:"workingDays"`
	}
	if err := c.get(ctx, "/api/workingdays", params, &resp); err != nil {
		return 0, fmt.Errorf("failed to get working days: %w", err)
	}
	return resp.WorkingDays, nil
}
