package attendance

import (
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
	"github.com/luvitbd/attendance-app-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// SubmitRequest carries one check-in or check-out attempt. UserID and
// ClientIP are filled by the handler, never by the client payload.
type SubmitRequest struct {
	UserID   string        `json:"-"`
	ClientIP string        `json:"-"`
	Note     string        `json:"note"`
	Fix      geo.DeviceFix `json:"fix"`
	Frame    []byte        `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if c := r.Fix.Coords; c != nil {
		if c.Latitude < -90 || c.Latitude > 90 {
			errs = append(errs, validator.ValidationError{
				Field:   "fix.coords.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if c.Longitude < -180 || c.Longitude > 180 {
			errs = append(errs, validator.ValidationError{
				Field:   "fix.coords.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(r.Note) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitResponse reports the committed event back to the UI.
type SubmitResponse struct {
	Message        string  `json:"message"`
	Kind           Kind    `json:"kind"`
	Status         Status  `json:"status"`
	Time           string  `json:"time"`
	EvidenceURL    string  `json:"evidence_url,omitempty"`
	EvidenceNotice string  `json:"evidence_notice,omitempty"`
	PreviewDataURL string  `json:"preview_data_url,omitempty"`
	CheckedIn      bool    `json:"checked_in"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// OverrideStatusRequest is the administrator status override for a
// single stored event.
type OverrideStatusRequest struct {
	ID     string `json:"-"`
	Kind   Kind   `json:"kind"`
	Status Status `json:"status"`
}

func (r *OverrideStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "event id is required",
		})
	}

	if r.Kind != KindCheckIn && r.Kind != KindCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check-in or check-out",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown status value",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
