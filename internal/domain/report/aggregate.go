package report

import "github.com/luvitbd/attendance-app-go/internal/domain/attendance"

// Aggregate derives one month summary from raw inputs. Pure function:
// identical inputs always yield the identical row. Identity fields
// (user, role, zone) are left for the caller to fill.
//
// Extra days capture attendance beyond the expected working-day count
// and are subtracted back out of holidays so the two never double
// count. When a user both works an off-day and misses a scheduled day
// in the same month the holiday figure undercounts; that approximation
// is kept from the original system.
func Aggregate(totalWorkingDays int, checkIns, checkOuts []attendance.Event, approvedLeaves, daysInMonth int) MonthlyRow {
	totalCheckIns := len(checkIns)

	extraDays := max(0, totalCheckIns-totalWorkingDays)
	holidays := max(0, daysInMonth-totalWorkingDays-extraDays)
	absent := max(0, totalWorkingDays-totalCheckIns-approvedLeaves)

	var lateCheckIns, lateCheckOuts int
	for _, e := range checkIns {
		if e.Status == attendance.StatusLate {
			lateCheckIns++
		}
	}
	for _, e := range checkOuts {
		if e.Status == attendance.StatusOvertime {
			lateCheckOuts++
		}
	}

	return MonthlyRow{
		TotalWorkingDays: totalWorkingDays,
		Holidays:         holidays,
		ApprovedLeaves:   approvedLeaves,
		Absent:           absent,
		ExtraDays:        extraDays,
		TotalCheckIns:    totalCheckIns,
		LateCheckIns:     lateCheckIns,
		LateCheckOuts:    lateCheckOuts,
		// Signed on purpose, displayed as-is.
		LateAdjustment: lateCheckIns - lateCheckOuts,
	}
}
