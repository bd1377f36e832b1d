package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
	"github.com/luvitbd/attendance-app-go/internal/domain/report"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeUsers struct {
	profiles []user.Profile
	err      error
}

func (f *fakeUsers) GetUser(ctx context.Context, id string) (user.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return user.Profile{}, user.ErrUserNotFound
}

func (f *fakeUsers) GetAllUsers(ctx context.Context, filter user.Filter) ([]user.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles, nil
}

type fakeEvents struct {
	checkIns  map[string][]attendance.Event
	checkOuts map[string][]attendance.Event
	err       error
}

func (f *fakeEvents) SubmitCheckIn(ctx context.Context, event attendance.Event) (attendance.SubmitAck, error) {
	return attendance.SubmitAck{}, nil
}

func (f *fakeEvents) SubmitCheckOut(ctx context.Context, event attendance.Event) (attendance.SubmitAck, error) {
	return attendance.SubmitAck{}, nil
}

func (f *fakeEvents) GetCheckIns(ctx context.Context, userID string, query attendance.Query) ([]attendance.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checkIns[userID], nil
}

func (f *fakeEvents) GetCheckOuts(ctx context.Context, userID string, query attendance.Query) ([]attendance.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checkOuts[userID], nil
}

func (f *fakeEvents) UpdateStatus(ctx context.Context, eventID string, kind attendance.Kind, status attendance.Status) error {
	return nil
}

func (f *fakeEvents) UpdateEvidence(ctx context.Context, eventID string, kind attendance.Kind, imageURL string) error {
	return nil
}

type fakeCalendar struct {
	workingDays int
	err         error
}

func (f *fakeCalendar) GetWorkingDays(ctx context.Context, month, year int) (int, error) {
	return f.workingDays, f.err
}

type fakeLeaves struct {
	days    map[string]int
	pending int
	err     error
}

func (f *fakeLeaves) GetApprovedLeaveDays(ctx context.Context, userID string, month, year int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.days[userID], nil
}

func (f *fakeLeaves) GetPendingLeaveRequestCount(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.pending, nil
}

func at(t *testing.T, day, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2024, 3, day, hour, minute, 0, 0, attendance.Location())
}

func repeatEvents(n int, status attendance.Status) []attendance.Event {
	events := make([]attendance.Event, n)
	for i := range events {
		events[i] = attendance.Event{ID: "e", Status: status}
	}
	return events
}

func TestMonthlyReport_AggregatesPerUser(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{
		{ID: "u2", Name: "Rahim", Role: user.RoleMR, Zone: "Khulna"},
		{ID: "u1", Name: "Karim", Role: user.RoleOffice, Zone: "Dhaka"},
	}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{
			"u1": repeatEvents(20, attendance.StatusSuccess),
			"u2": repeatEvents(18, attendance.StatusLate),
		},
		checkOuts: map[string][]attendance.Event{
			"u1": repeatEvents(2, attendance.StatusOvertime),
		},
	}
	svc := NewReportService(users, events, &fakeCalendar{workingDays: 22}, &fakeLeaves{days: map[string]int{"u2": 2}})

	rep, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 3, Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, 3, rep.Month)
	require.Len(t, rep.Rows, 2)

	// Sorted by username: Karim before Rahim.
	karim, rahim := rep.Rows[0], rep.Rows[1]
	assert.Equal(t, "Karim", karim.Username)
	assert.Equal(t, "u1", karim.UserID)
	assert.Equal(t, user.RoleOffice, karim.Role)
	assert.Equal(t, 20, karim.TotalCheckIns)
	assert.Equal(t, 2, karim.LateCheckOuts)
	assert.Equal(t, -2, karim.LateAdjustment)
	// March has 31 days: 31 - 22 working = 9 holidays.
	assert.Equal(t, 9, karim.Holidays)

	assert.Equal(t, "Rahim", rahim.Username)
	assert.Equal(t, 18, rahim.LateCheckIns)
	assert.Equal(t, 2, rahim.ApprovedLeaves)
	assert.Equal(t, 2, rahim.Absent)
}

func TestMonthlyReport_AnyFetchFailureFailsWhole(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{{ID: "u1", Name: "Karim"}}}
	events := &fakeEvents{err: errors.New("upstream 503")}
	svc := NewReportService(users, events, &fakeCalendar{workingDays: 22}, &fakeLeaves{})

	_, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 3, Year: 2024})

	assert.ErrorIs(t, err, report.ErrReportFetch)
}

func TestMonthlyReport_RejectsBadMonth(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeUsers{}, &fakeEvents{}, &fakeCalendar{}, &fakeLeaves{})

	_, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 13, Year: 2024})

	assert.Error(t, err)
}

func TestDailyRoster_OmitsUsersWithoutCheckIn(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{
		{ID: "u1", Name: "Karim"},
		{ID: "u2", Name: "Rahim"},
	}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{
			"u1": {{ID: "ci1", Status: attendance.StatusSuccess, Time: at(t, 5, 10, 0)}},
		},
	}
	svc := NewReportService(users, events, &fakeCalendar{}, &fakeLeaves{})

	roster, err := svc.DailyRoster(context.Background(), "2024-03-05")

	require.NoError(t, err)
	require.Len(t, roster.Rows, 1)
	assert.Equal(t, "Karim", roster.Rows[0].Username)
}

func TestDailyRoster_TakesFirstRetrievedPair(t *testing.T) {
	t.Parallel()

	loc := &geo.Coordinates{Latitude: 23.8, Longitude: 90.4}
	users := &fakeUsers{profiles: []user.Profile{{ID: "u1", Name: "Karim"}}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{
			"u1": {
				// First retrieved record wins, even though a later one
				// exists with a later clock time.
				{ID: "ci1", Status: attendance.StatusLate, Time: at(t, 5, 10, 0), Note: "traffic", Location: loc},
				{ID: "ci2", Status: attendance.StatusSuccess, Time: at(t, 5, 11, 30)},
			},
		},
		checkOuts: map[string][]attendance.Event{
			"u1": {
				// Not after the chosen check-in; skipped.
				{ID: "co0", Status: attendance.StatusSuccess, Time: at(t, 5, 9, 30)},
				// First retrieved record after the check-in wins, not
				// the one closest in time.
				{ID: "co2", Status: attendance.StatusOvertime, Time: at(t, 5, 22, 0)},
				{ID: "co1", Status: attendance.StatusSuccess, Time: at(t, 5, 19, 45)},
			},
		},
	}
	svc := NewReportService(users, events, &fakeCalendar{}, &fakeLeaves{})

	roster, err := svc.DailyRoster(context.Background(), "2024-03-05")

	require.NoError(t, err)
	require.Len(t, roster.Rows, 1)
	row := roster.Rows[0]
	assert.Equal(t, "ci1", row.CheckInID)
	assert.Equal(t, "10:00 AM", row.CheckInTime)
	assert.Equal(t, "10:00 PM", row.CheckOutTime)
	assert.Equal(t, "12h 0m", row.TotalWorkTime)
	assert.Equal(t, attendance.StatusLate, row.Status)
	assert.Equal(t, "traffic", row.CheckInNote)
	assert.Equal(t, loc.String(), row.CheckInLocation)
}

func TestDailyRoster_SkipsCheckInsPastEndOfDay(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{{ID: "u1", Name: "Karim"}}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{
			"u1": {
				// After the requested day's end; not a candidate.
				{ID: "ci0", Status: attendance.StatusSuccess, Time: at(t, 6, 0, 30)},
				{ID: "ci1", Status: attendance.StatusSuccess, Time: at(t, 5, 10, 0)},
			},
		},
	}
	svc := NewReportService(users, events, &fakeCalendar{}, &fakeLeaves{})

	roster, err := svc.DailyRoster(context.Background(), "2024-03-05")

	require.NoError(t, err)
	require.Len(t, roster.Rows, 1)
	assert.Equal(t, "ci1", roster.Rows[0].CheckInID)
}

func TestDailyRoster_MissingCheckOutShowsNA(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{{ID: "u1", Name: "Karim"}}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{
			"u1": {{ID: "ci1", Status: attendance.StatusSuccess, Time: at(t, 5, 10, 0)}},
		},
	}
	svc := NewReportService(users, events, &fakeCalendar{}, &fakeLeaves{})

	roster, err := svc.DailyRoster(context.Background(), "2024-03-05")

	require.NoError(t, err)
	require.Len(t, roster.Rows, 1)
	row := roster.Rows[0]
	assert.Equal(t, "N/A", row.CheckOutTime)
	assert.Equal(t, "N/A", row.TotalWorkTime)
	assert.Equal(t, "N/A", row.CheckOutNote)
	assert.Equal(t, "N/A", row.CheckOutLocation)
	assert.Equal(t, "N/A", row.CheckInNote)
	assert.Equal(t, "N/A", row.CheckInLocation)
}

func TestDailyRoster_RejectsMalformedDate(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeUsers{}, &fakeEvents{}, &fakeCalendar{}, &fakeLeaves{})

	_, err := svc.DailyRoster(context.Background(), "05-03-2024")

	assert.ErrorIs(t, err, report.ErrInvalidDate)
}

func TestUserMonthlyReport_PairsSameDayCheckOut(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{{ID: "u1", Name: "Karim"}}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{
			"u1": {
				{ID: "ci2", Status: attendance.StatusLate, Time: at(t, 6, 11, 0)},
				{ID: "ci1", Status: attendance.StatusSuccess, Time: at(t, 5, 10, 0)},
			},
		},
		checkOuts: map[string][]attendance.Event{
			"u1": {{ID: "co1", Status: attendance.StatusSuccess, Time: at(t, 5, 19, 0)}},
		},
	}
	svc := NewReportService(users, events, &fakeCalendar{}, &fakeLeaves{})

	rep, err := svc.UserMonthlyReport(context.Background(), "u1", 3, 2024)

	require.NoError(t, err)
	assert.Equal(t, "Karim", rep.Username)
	require.Len(t, rep.Records, 2)

	// Sorted chronologically.
	assert.Equal(t, "05 March 2024", rep.Records[0].Date)
	assert.Equal(t, "10:00 AM", rep.Records[0].CheckInTime)
	assert.Equal(t, "07:00 PM", rep.Records[0].CheckOutTime)

	assert.Equal(t, "06 March 2024", rep.Records[1].Date)
	assert.Equal(t, "N/A", rep.Records[1].CheckOutTime)
}

func TestExportMonthlyReport_ProducesWorkbook(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{profiles: []user.Profile{{ID: "u1", Name: "Karim", Role: user.RoleMR, Zone: "Dhaka"}}}
	events := &fakeEvents{
		checkIns: map[string][]attendance.Event{"u1": repeatEvents(20, attendance.StatusSuccess)},
	}
	svc := NewReportService(users, events, &fakeCalendar{workingDays: 22}, &fakeLeaves{})

	blob, filename, err := svc.ExportMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 3, Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, "attendance-report-2024-03.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Username", rows[0][0])
	assert.Equal(t, "Karim", rows[1][0])
	assert.Equal(t, "20", rows[1][8])
}

func TestPendingLeaveRequests(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeUsers{}, &fakeEvents{}, &fakeCalendar{}, &fakeLeaves{pending: 7})

	count, err := svc.PendingLeaveRequests(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
