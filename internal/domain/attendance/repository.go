package attendance

import "context"

// Query filters event listings. Either Month/Year or Date is set,
// never both.
type Query struct {
	Month int
	Year  int
	Date  string // YYYY-MM-DD
}

// SubmitAck is the upstream acknowledgment of a newly stored event.
// EventID identifies the created record for later updates.
type SubmitAck struct {
	EventID string
	Message string
}

// EventRepository is the request/response contract with the external
// persistence API. Records live upstream; this side never owns a
// schema.
type EventRepository interface {
	// SubmitCheckIn persists a new check-in event
	SubmitCheckIn(ctx context.Context, event Event) (SubmitAck, error)

	// SubmitCheckOut persists a new check-out event
	SubmitCheckOut(ctx context.Context, event Event) (SubmitAck, error)

	// GetCheckIns lists a user's check-ins matching the query
	GetCheckIns(ctx context.Context, userID string, query Query) ([]Event, error)

	// GetCheckOuts lists a user's check-outs matching the query
	GetCheckOuts(ctx context.Context, userID string, query Query) ([]Event, error)

	// UpdateStatus overwrites the stored status of one event. The
	// override is authoritative for later report reads.
	UpdateStatus(ctx context.Context, eventID string, kind Kind, status Status) error

	// UpdateEvidence attaches an evidence URL to an already stored
	// event, used when an upload resolves after its deadline.
	UpdateEvidence(ctx context.Context, eventID string, kind Kind, imageURL string) error
}
