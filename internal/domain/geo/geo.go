package geo

import "fmt"

// Coordinates is a best-effort position fix. Whether it came from the
// device GPS or the IP fallback is not recorded; callers treat both
// the same.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// DeviceFix is the GPS acquisition outcome reported by the client
// device: either coordinates or one of the failure codes below.
type DeviceFix struct {
	Coords  *Coordinates `json:"coords,omitempty"`
	Failure FailureCode  `json:"failure,omitempty"`
}

type FailureCode string

const (
	FailureNone                FailureCode = ""
	FailurePermissionDenied    FailureCode = "permission-denied"
	FailurePositionUnavailable FailureCode = "position-unavailable"
	FailureTimeout             FailureCode = "timeout"
	FailureUnsupported         FailureCode = "unsupported"
)
