package attendance

import (
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
)

type Kind string

const (
	KindCheckIn  Kind = "check-in"
	KindCheckOut Kind = "check-out"
)

type Status string

const (
	StatusSuccess  Status = "Success"
	StatusLate     Status = "Late"
	StatusOvertime Status = "Overtime"
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusLate, StatusOvertime, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Event is one real-world check-in or check-out. Created once at
// submission time; immutable afterwards except for Status, which an
// administrator may overwrite.
type Event struct {
	ID          string
	UserID      string
	Kind        Kind
	Time        time.Time
	Status      Status
	Note        string
	EvidenceURL string
	Location    *geo.Coordinates
}
