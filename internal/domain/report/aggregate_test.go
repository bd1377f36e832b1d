package report

import (
	"testing"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func eventsWithStatus(n int, status attendance.Status, filler attendance.Status, total int) []attendance.Event {
	events := make([]attendance.Event, 0, total)
	for i := 0; i < total; i++ {
		s := filler
		if i < n {
			s = status
		}
		events = append(events, attendance.Event{
			ID:     "e",
			Status: s,
			Time:   time.Now(),
		})
	}
	return events
}

func TestAggregate_TypicalMonth(t *testing.T) {
	t.Parallel()

	// 20 check-ins against 22 working days in a 31-day month, 1 leave.
	checkIns := eventsWithStatus(3, attendance.StatusLate, attendance.StatusSuccess, 20)
	checkOuts := eventsWithStatus(1, attendance.StatusOvertime, attendance.StatusSuccess, 20)

	row := Aggregate(22, checkIns, checkOuts, 1, 31)

	assert.Equal(t, 20, row.TotalCheckIns)
	assert.Equal(t, 0, row.ExtraDays)
	assert.Equal(t, 9, row.Holidays)
	assert.Equal(t, 1, row.Absent)
	assert.Equal(t, 3, row.LateCheckIns)
	assert.Equal(t, 1, row.LateCheckOuts)
	assert.Equal(t, 2, row.LateAdjustment)
}

func TestAggregate_ExtraDaysReduceHolidays(t *testing.T) {
	t.Parallel()

	// 25 check-ins against 22 working days in a 30-day month.
	checkIns := eventsWithStatus(0, attendance.StatusSuccess, attendance.StatusSuccess, 25)

	row := Aggregate(22, checkIns, nil, 0, 30)

	assert.Equal(t, 3, row.ExtraDays)
	assert.Equal(t, 5, row.Holidays)
	assert.Equal(t, 0, row.Absent)
}

func TestAggregate_ClampsNeverGoNegative(t *testing.T) {
	t.Parallel()

	// Full-attendance overflow: more check-ins than days in month.
	row := Aggregate(10, eventsWithStatus(0, attendance.StatusSuccess, attendance.StatusSuccess, 35), nil, 0, 30)
	assert.Equal(t, 25, row.ExtraDays)
	assert.Equal(t, 0, row.Holidays)
	assert.Equal(t, 0, row.Absent)

	// Leave overshoot: approved leave exceeds missed days.
	row = Aggregate(22, eventsWithStatus(0, attendance.StatusSuccess, attendance.StatusSuccess, 20), nil, 10, 31)
	assert.Equal(t, 0, row.Absent)
}

func TestAggregate_LateAdjustmentIsSigned(t *testing.T) {
	t.Parallel()

	checkIns := eventsWithStatus(1, attendance.StatusLate, attendance.StatusSuccess, 20)
	checkOuts := eventsWithStatus(4, attendance.StatusOvertime, attendance.StatusSuccess, 20)

	row := Aggregate(22, checkIns, checkOuts, 0, 31)

	assert.Equal(t, -3, row.LateAdjustment)
}

func TestAggregate_OverriddenStatusesCount(t *testing.T) {
	t.Parallel()

	// An admin override to Late counts exactly like a classified Late.
	checkIns := []attendance.Event{
		{ID: "a", Status: attendance.StatusLate},
		{ID: "b", Status: attendance.StatusSuccess},
		{ID: "c", Status: attendance.StatusApproved},
	}

	row := Aggregate(22, checkIns, nil, 0, 30)

	assert.Equal(t, 3, row.TotalCheckIns)
	assert.Equal(t, 1, row.LateCheckIns)
}

func TestAggregate_IsPure(t *testing.T) {
	t.Parallel()

	checkIns := eventsWithStatus(2, attendance.StatusLate, attendance.StatusSuccess, 18)
	checkOuts := eventsWithStatus(1, attendance.StatusOvertime, attendance.StatusSuccess, 18)

	first := Aggregate(22, checkIns, checkOuts, 2, 31)
	second := Aggregate(22, checkIns, checkOuts, 2, 31)

	assert.Equal(t, first, second)
}

func TestAggregate_EmptyMonth(t *testing.T) {
	t.Parallel()

	row := Aggregate(22, nil, nil, 0, 30)

	assert.Equal(t, 0, row.TotalCheckIns)
	assert.Equal(t, 22, row.Absent)
	assert.Equal(t, 8, row.Holidays)
	assert.Equal(t, 0, row.LateAdjustment)
}
