package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/luvitbd/attendance-app-go/internal/service/evidence"
	"github.com/luvitbd/attendance-app-go/internal/service/location"
	"github.com/luvitbd/attendance-app-go/internal/session"
)

// Workflow states. One submission moves strictly left to right;
// location always resolves before classification, classification
// always completes before the commit request is issued.
type workflowState string

const (
	stateAcquiringLocation workflowState = "acquiring-location"
	stateCapturing         workflowState = "capturing"
	stateClassifying       workflowState = "classifying"
	stateSubmitting        workflowState = "submitting"
	stateCommitted         workflowState = "committed"
)

type AttendanceServiceImpl struct {
	events   attendance.EventRepository
	users    user.UserRepository
	resolver location.Resolver
	evidence evidence.Service
	sessions *session.Store
}

func NewAttendanceService(
	events attendance.EventRepository,
	users user.UserRepository,
	resolver location.Resolver,
	evidenceService evidence.Service,
	sessions *session.Store,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		events:   events,
		users:    users,
		resolver: resolver,
		evidence: evidenceService,
		sessions: sessions,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	return s.submit(ctx, attendance.KindCheckIn, req)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	return s.submit(ctx, attendance.KindCheckOut, req)
}

// submit runs the capture-to-commit workflow for one direction. Any
// failure leaves the session store untouched. Location resolution
// blocks check-out the same way it blocks check-in.
func (s *AttendanceServiceImpl) submit(ctx context.Context, kind attendance.Kind, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitResponse{}, err
	}

	profile, err := s.profile(ctx, req.UserID)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	state := stateAcquiringLocation
	slog.Debug("submission state", "kind", kind, "user", req.UserID, "state", state)

	coords, err := s.resolver.Resolve(ctx, location.DeviceFixProvider{Fix: req.Fix}, req.ClientIP)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	state = stateCapturing
	slog.Debug("submission state", "kind", kind, "user", req.UserID, "state", state)

	var capture *evidence.Capture
	var evidenceURL, evidenceNotice, previewDataURL string
	if len(req.Frame) > 0 {
		capture, err = s.evidence.Capture(ctx, req.Frame)
		if err != nil {
			return attendance.SubmitResponse{}, err
		}
		switch capture.State {
		case evidence.StateUploaded:
			evidenceURL = capture.URL
			evidenceNotice = "Image uploaded successfully"
		case evidence.StatePreview:
			// Evidence stays empty until the upload resolves; the
			// preview keeps the user unblocked meanwhile.
			previewDataURL = capture.PreviewDataURL
			evidenceNotice = "Slow upload, showing local preview"
		case evidence.StateFailed:
			evidenceNotice = "Failed to upload image"
		}
	}

	state = stateClassifying
	slog.Debug("submission state", "kind", kind, "user", req.UserID, "state", state)

	now := time.Now().In(attendance.Location())
	status := attendance.Classify(kind, profile.Role, now)

	event := attendance.Event{
		UserID:      req.UserID,
		Kind:        kind,
		Time:        now,
		Status:      status,
		Note:        req.Note,
		EvidenceURL: evidenceURL,
		Location:    &coords,
	}

	state = stateSubmitting
	slog.Debug("submission state", "kind", kind, "user", req.UserID, "state", state)

	var ack attendance.SubmitAck
	if kind == attendance.KindCheckIn {
		ack, err = s.events.SubmitCheckIn(ctx, event)
	} else {
		ack, err = s.events.SubmitCheckOut(ctx, event)
	}
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("%w: %v", attendance.ErrSubmissionFailed, err)
	}

	// Commit succeeded: flip the locally owned flag and cache the
	// profile so the UI renders without a round trip.
	checkedIn := kind == attendance.KindCheckIn
	s.sessions.SetCheckedIn(profile, checkedIn)

	if capture != nil && capture.State == evidence.StatePreview {
		s.attachLateEvidence(ctx, kind, ack.EventID, capture)
	}

	state = stateCommitted
	slog.Info("attendance event committed", "kind", kind, "user", req.UserID, "status", status, "state", state)

	return attendance.SubmitResponse{
		Message:        ack.Message,
		Kind:           kind,
		Status:         status,
		Time:           now.Format("2006-01-02 15:04:05"),
		EvidenceURL:    evidenceURL,
		EvidenceNotice: evidenceNotice,
		PreviewDataURL: previewDataURL,
		CheckedIn:      checkedIn,
		Latitude:       coords.Latitude,
		Longitude:      coords.Longitude,
	}, nil
}

// attachLateEvidence waits for a preview-mode upload to resolve and
// writes the durable URL onto the already committed event. The wait
// outlives the originating request.
func (s *AttendanceServiceImpl) attachLateEvidence(ctx context.Context, kind attendance.Kind, eventID string, capture *evidence.Capture) {
	bg := context.WithoutCancel(ctx)
	go func() {
		url, ok := <-capture.Uploaded
		if !ok || url == "" {
			// Upload never resolved; the event keeps its empty evidence.
			return
		}
		if eventID == "" {
			slog.Warn("late evidence resolved but commit carried no event id", "session", capture.SessionID, "kind", kind)
			return
		}
		if err := s.events.UpdateEvidence(bg, eventID, kind, url); err != nil {
			slog.Error("failed to attach late evidence", "event", eventID, "kind", kind, "error", err)
			return
		}
		slog.Info("late evidence attached", "event", eventID, "kind", kind, "url", url)
	}()
}

// OverrideStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) OverrideStatus(ctx context.Context, req attendance.OverrideStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.events.UpdateStatus(ctx, req.ID, req.Kind, req.Status); err != nil {
		return err
	}

	slog.Info("attendance status overridden", "event", req.ID, "kind", req.Kind, "status", req.Status)
	return nil
}

// profile serves the cached profile when present, otherwise fetches it
// from the user store.
func (s *AttendanceServiceImpl) profile(ctx context.Context, userID string) (user.Profile, error) {
	if entry, ok := s.sessions.Get(userID); ok {
		return entry.Profile, nil
	}

	profile, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to get user profile: %w", err)
	}
	return profile, nil
}
