package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
	"github.com/luvitbd/attendance-app-go/internal/domain/leave"
	"github.com/luvitbd/attendance-app-go/internal/domain/report"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/luvitbd/attendance-app-go/internal/pkg/validator"
)

const (
	clockLayout = "03:04 PM"
	notAvail    = "N/A"
)

type ReportServiceImpl struct {
	users    user.UserRepository
	events   attendance.EventRepository
	calendar report.CalendarRepository
	leaves   leave.LeaveRepository
}

func NewReportService(
	users user.UserRepository,
	events attendance.EventRepository,
	calendar report.CalendarRepository,
	leaves leave.LeaveRepository,
) report.ReportService {
	return &ReportServiceImpl{
		users:    users,
		events:   events,
		calendar: calendar,
		leaves:   leaves,
	}
}

// MonthlyReport implements report.ReportService. Per-user data is
// fetched concurrently; any single failure fails the whole report so a
// partially-correct table is never shown.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	users, err := s.users.GetAllUsers(ctx, req.Filter)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: %v", report.ErrReportFetch, err)
	}

	workingDays, err := s.calendar.GetWorkingDays(ctx, req.Month, req.Year)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: %v", report.ErrReportFetch, err)
	}

	daysInMonth := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, attendance.Location()).Day()
	query := attendance.Query{Month: req.Month, Year: req.Year}

	rows := make([]report.MonthlyRow, len(users))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range users {
		g.Go(func() error {
			var (
				checkIns, checkOuts []attendance.Event
				approvedLeaves      int
			)

			fg, fctx := errgroup.WithContext(gctx)
			fg.Go(func() error {
				var err error
				checkIns, err = s.events.GetCheckIns(fctx, u.ID, query)
				return err
			})
			fg.Go(func() error {
				var err error
				checkOuts, err = s.events.GetCheckOuts(fctx, u.ID, query)
				return err
			})
			fg.Go(func() error {
				var err error
				approvedLeaves, err = s.leaves.GetApprovedLeaveDays(fctx, u.ID, req.Month, req.Year)
				return err
			})
			if err := fg.Wait(); err != nil {
				return fmt.Errorf("user %s: %w", u.ID, err)
			}

			row := report.Aggregate(workingDays, checkIns, checkOuts, approvedLeaves, daysInMonth)
			row.UserID = u.ID
			row.Username = u.Name
			row.Role = u.Role
			row.Zone = u.Zone
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: %v", report.ErrReportFetch, err)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Username < rows[j].Username
	})

	return report.MonthlyReport{
		Month: req.Month,
		Year:  req.Year,
		Rows:  rows,
	}, nil
}

// DailyRoster implements report.ReportService. Users with no check-in
// on the date are omitted entirely.
func (s *ReportServiceImpl) DailyRoster(ctx context.Context, date string) (report.DailyRoster, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return report.DailyRoster{}, fmt.Errorf("%w: %q", report.ErrInvalidDate, date)
	}
	year, month, dayOfMonth := day.Date()
	endOfDay := time.Date(year, month, dayOfMonth, 23, 59, 59, int(time.Second-time.Nanosecond), attendance.Location())

	users, err := s.users.GetAllUsers(ctx, user.Filter{})
	if err != nil {
		return report.DailyRoster{}, fmt.Errorf("%w: %v", report.ErrReportFetch, err)
	}

	query := attendance.Query{Date: date}

	candidates := make([]*report.RosterRow, len(users))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range users {
		g.Go(func() error {
			var checkIns, checkOuts []attendance.Event

			fg, fctx := errgroup.WithContext(gctx)
			fg.Go(func() error {
				var err error
				checkIns, err = s.events.GetCheckIns(fctx, u.ID, query)
				return err
			})
			fg.Go(func() error {
				var err error
				checkOuts, err = s.events.GetCheckOuts(fctx, u.ID, query)
				return err
			})
			if err := fg.Wait(); err != nil {
				return fmt.Errorf("user %s: %w", u.ID, err)
			}

			if row, ok := reduceRoster(u, checkIns, checkOuts, endOfDay); ok {
				candidates[i] = &row
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.DailyRoster{}, fmt.Errorf("%w: %v", report.ErrReportFetch, err)
	}

	rows := make([]report.RosterRow, 0, len(candidates))
	for _, row := range candidates {
		if row != nil {
			rows = append(rows, *row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Username < rows[j].Username
	})

	return report.DailyRoster{Date: date, Rows: rows}, nil
}

// reduceRoster collapses a user's events on one date to a single row.
// Records are kept in retrieval order: the row shows the first
// check-in before end-of-day and the first check-out strictly after
// it, not the closest ones by clock time.
func reduceRoster(u user.Profile, checkIns, checkOuts []attendance.Event, endOfDay time.Time) (report.RosterRow, bool) {
	var in *attendance.Event
	for i := range checkIns {
		if checkIns[i].Time.Before(endOfDay) {
			in = &checkIns[i]
			break
		}
	}
	if in == nil {
		return report.RosterRow{}, false
	}
	checkIn := *in

	var out *attendance.Event
	for i := range checkOuts {
		if checkOuts[i].Time.After(checkIn.Time) {
			out = &checkOuts[i]
			break
		}
	}

	row := report.RosterRow{
		UserID:           u.ID,
		Username:         u.Name,
		CheckInID:        checkIn.ID,
		CheckInTime:      checkIn.Time.In(attendance.Location()).Format(clockLayout),
		CheckOutTime:     notAvail,
		TotalWorkTime:    notAvail,
		Status:           checkIn.Status,
		CheckInNote:      orNA(checkIn.Note),
		CheckInLocation:  coordsOrNA(checkIn.Location),
		CheckInImage:     checkIn.EvidenceURL,
		CheckOutNote:     notAvail,
		CheckOutLocation: notAvail,
	}

	if out != nil {
		row.CheckOutTime = out.Time.In(attendance.Location()).Format(clockLayout)
		row.TotalWorkTime = formatWorkTime(out.Time.Sub(checkIn.Time))
		row.CheckOutNote = orNA(out.Note)
		row.CheckOutLocation = coordsOrNA(out.Location)
		row.CheckOutImage = out.EvidenceURL
	}

	return row, true
}

// UserMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) UserMonthlyReport(ctx context.Context, userID string, month, year int) (report.UserMonthlyReport, error) {
	req := report.MonthlyReportRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return report.UserMonthlyReport{}, err
	}

	profile, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return report.UserMonthlyReport{}, err
	}

	query := attendance.Query{Month: month, Year: year}

	var checkIns, checkOuts []attendance.Event
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checkIns, err = s.events.GetCheckIns(gctx, userID, query)
		return err
	})
	g.Go(func() error {
		var err error
		checkOuts, err = s.events.GetCheckOuts(gctx, userID, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.UserMonthlyReport{}, fmt.Errorf("%w: %v", report.ErrReportFetch, err)
	}

	sort.Slice(checkIns, func(i, j int) bool {
		return checkIns[i].Time.Before(checkIns[j].Time)
	})

	records := make([]report.UserMonthlyRecord, 0, len(checkIns))
	for _, in := range checkIns {
		local := in.Time.In(attendance.Location())
		record := report.UserMonthlyRecord{
			Date:         local.Format("02 January 2006"),
			CheckInTime:  local.Format(clockLayout),
			CheckOutTime: notAvail,
			Status:       in.Status,
		}
		if out := sameDayCheckOut(in, checkOuts); out != nil {
			record.CheckOutTime = out.Time.In(attendance.Location()).Format(clockLayout)
		}
		records = append(records, record)
	}

	return report.UserMonthlyReport{
		UserID:   userID,
		Username: profile.Name,
		Month:    month,
		Year:     year,
		Records:  records,
	}, nil
}

// PendingLeaveRequests implements report.ReportService.
func (s *ReportServiceImpl) PendingLeaveRequests(ctx context.Context) (int, error) {
	count, err := s.leaves.GetPendingLeaveRequestCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}

func sameDayCheckOut(in attendance.Event, checkOuts []attendance.Event) *attendance.Event {
	inLocal := in.Time.In(attendance.Location())
	for i, out := range checkOuts {
		outLocal := out.Time.In(attendance.Location())
		if inLocal.Year() == outLocal.Year() && inLocal.YearDay() == outLocal.YearDay() {
			return &checkOuts[i]
		}
	}
	return nil
}

func formatWorkTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func orNA(s string) string {
	if s == "" {
		return notAvail
	}
	return s
}

func coordsOrNA(c *geo.Coordinates) string {
	if c == nil {
		return notAvail
	}
	return c.String()
}
