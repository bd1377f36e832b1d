package geo

import "errors"

// Resolution errors. The four reasons must stay distinguishable all
// the way to the user-facing message.
var (
	ErrPermissionDenied    = errors.New("location access denied, please allow location permissions")
	ErrPositionUnavailable = errors.New("location information is unavailable")
	ErrTimeout             = errors.New("location request timed out")
	ErrBothFailed          = errors.New("failed to retrieve location from both GPS and IP")
)

// IsLocationUnavailable reports whether err is any of the resolution
// failures above.
func IsLocationUnavailable(err error) bool {
	return errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrPositionUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrBothFailed)
}
