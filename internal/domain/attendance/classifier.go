package attendance

import (
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/user"
)

// CanonicalTimezone is the zone every attendance timestamp is
// classified and stored in.
const CanonicalTimezone = "Asia/Dhaka"

var canonicalLoc = func() *time.Location {
	loc, err := time.LoadLocation(CanonicalTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Location returns the canonical attendance timezone.
func Location() *time.Location {
	return canonicalLoc
}

// thresholds holds the cutoffs for one role class. Check-in is late
// past checkInHour:checkInGrace; check-out is overtime from
// checkOutHour:00 onwards.
type thresholds struct {
	checkInHour  int
	checkInGrace int
	checkOutHour int
}

var ruleTable = map[user.RoleClass]thresholds{
	user.ClassOffice: {checkInHour: 10, checkInGrace: 15, checkOutHour: 20},
	user.ClassField:  {checkInHour: 11, checkInGrace: 15, checkOutHour: 22},
}

// Classify computes the advisory status for an event at time t. The
// result may later be overwritten by an administrator.
func Classify(kind Kind, role user.Role, t time.Time) Status {
	local := t.In(canonicalLoc)
	hour, minute := local.Hour(), local.Minute()
	rule := ruleTable[role.Class()]

	switch kind {
	case KindCheckOut:
		// Any minute at or after the threshold hour counts.
		if hour >= rule.checkOutHour {
			return StatusOvertime
		}
	default:
		if hour > rule.checkInHour || (hour == rule.checkInHour && minute > rule.checkInGrace) {
			return StatusLate
		}
	}
	return StatusSuccess
}
