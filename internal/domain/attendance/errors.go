package attendance

import "errors"

// Attendance domain errors
var (
	// Capture errors
	ErrBadFrame      = errors.New("could not decode captured frame")
	ErrUploadFailed  = errors.New("failed to upload image")
	ErrEventNotFound = errors.New("attendance record not found")

	// Submission errors
	ErrSubmissionFailed = errors.New("attendance submission was rejected or unreachable")
)
