package report

import (
	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/luvitbd/attendance-app-go/internal/pkg/validator"
)

// MonthlyRow is one user's derived month summary. It is recomputed on
// every query and never persisted.
type MonthlyRow struct {
	UserID           string    `json:"user_id"`
	Username         string    `json:"username"`
	Role             user.Role `json:"role"`
	Zone             string    `json:"zone"`
	TotalWorkingDays int       `json:"total_working_days"`
	Holidays         int       `json:"holidays"`
	ApprovedLeaves   int       `json:"approved_leaves"`
	Absent           int       `json:"absent"`
	ExtraDays        int       `json:"extra_days"`
	TotalCheckIns    int       `json:"total_check_ins"`
	LateCheckIns     int       `json:"late_check_ins"`
	LateCheckOuts    int       `json:"late_check_outs"`
	LateAdjustment   int       `json:"late_adjustment"`
}

type MonthlyReport struct {
	Month int          `json:"month"`
	Year  int          `json:"year"`
	Rows  []MonthlyRow `json:"rows"`
}

type MonthlyReportRequest struct {
	Month  int         `json:"month"`
	Year   int         `json:"year"`
	Filter user.Filter `json:"-"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.Filter.Role != nil && !r.Filter.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "unknown role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RosterRow is one user's reduced daily record. String fields carry
// "N/A" when no qualifying check-out exists.
type RosterRow struct {
	UserID           string            `json:"user_id"`
	Username         string            `json:"username"`
	CheckInID        string            `json:"check_in_id"`
	CheckInTime      string            `json:"check_in_time"`
	CheckOutTime     string            `json:"check_out_time"`
	TotalWorkTime    string            `json:"total_work_time"`
	Status           attendance.Status `json:"status"`
	CheckInNote      string            `json:"check_in_note"`
	CheckInLocation  string            `json:"check_in_location"`
	CheckInImage     string            `json:"check_in_image,omitempty"`
	CheckOutNote     string            `json:"check_out_note"`
	CheckOutLocation string            `json:"check_out_location"`
	CheckOutImage    string            `json:"check_out_image,omitempty"`
}

type DailyRoster struct {
	Date string      `json:"date"`
	Rows []RosterRow `json:"rows"`
}

// UserMonthlyRecord pairs a check-in with the same-day check-out for
// the per-user monthly detail view.
type UserMonthlyRecord struct {
	Date         string            `json:"date"`
	CheckInTime  string            `json:"check_in_time"`
	CheckOutTime string            `json:"check_out_time"`
	Status       attendance.Status `json:"status"`
}

type UserMonthlyReport struct {
	UserID   string              `json:"user_id"`
	Username string              `json:"username"`
	Month    int                 `json:"month"`
	Year     int                 `json:"year"`
	Records  []UserMonthlyRecord `json:"records"`
}
