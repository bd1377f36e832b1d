package response

import (
	"errors"
	"net/http"

	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
	"github.com/luvitbd/attendance-app-go/internal/domain/report"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/luvitbd/attendance-app-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Location resolution errors. The four reasons map to four
	// distinct messages so the client can tell them apart.
	case errors.Is(err, geo.ErrBothFailed):
		BadRequest(w, geo.ErrBothFailed.Error(), nil)
	case errors.Is(err, geo.ErrPermissionDenied):
		BadRequest(w, geo.ErrPermissionDenied.Error(), nil)
	case errors.Is(err, geo.ErrPositionUnavailable):
		BadRequest(w, geo.ErrPositionUnavailable.Error(), nil)
	case errors.Is(err, geo.ErrTimeout):
		BadRequest(w, geo.ErrTimeout.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrBadFrame):
		BadRequest(w, "Could not decode captured frame", nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSubmissionFailed):
		BadGateway(w, "Attendance submission failed, please try again")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, report.ErrReportFetch):
		BadGateway(w, "Failed to load report data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
