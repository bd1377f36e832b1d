package attendance

import "context"

// AttendanceService defines the event submission workflow.
type AttendanceService interface {
	// CheckIn runs the full submission workflow for a check-in:
	// location, evidence, classification, upstream commit, session flip
	CheckIn(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// CheckOut runs the same workflow in the other direction
	CheckOut(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// OverrideStatus lets an administrator overwrite a stored event's
	// status independent of the classifier's original value
	OverrideStatus(ctx context.Context, req OverrideStatusRequest) error
}
