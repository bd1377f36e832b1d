package evidence

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/pkg/imagehost"
)

// Frame bounds before upload, matching the original capture canvas.
const (
	maxWidth  = 240
	maxHeight = 320
)

type State string

const (
	// StateUploaded: the upload won the race, URL is durable.
	StateUploaded State = "uploaded"
	// StatePreview: the deadline fired first; a local preview is shown
	// while the upload keeps running.
	StatePreview State = "preview"
	// StateFailed: the upload errored before the deadline.
	StateFailed State = "failed"
)

// Capture is one capture-to-submit session. Uploaded delivers the
// durable URL whenever the upload resolves, including after a preview
// fallback; it is closed without a value when the upload failed.
type Capture struct {
	SessionID      string
	State          State
	URL            string
	PreviewDataURL string
	Uploaded       <-chan string
}

type Service interface {
	// Capture downsizes one camera frame, uploads it, and races the
	// upload against the soft deadline
	Capture(ctx context.Context, frame []byte) (*Capture, error)
}

type serviceImpl struct {
	host     imagehost.Uploader
	deadline time.Duration
}

func NewService(host imagehost.Uploader, deadline time.Duration) Service {
	return &serviceImpl{
		host:     host,
		deadline: deadline,
	}
}

// Capture implements Service.
func (s *serviceImpl) Capture(ctx context.Context, frame []byte) (*Capture, error) {
	blob, err := prepareFrame(frame)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	filename := sessionID + ".jpg"

	type uploadResult struct {
		url string
		err error
	}
	resultCh := make(chan uploadResult, 1)

	// The upload must survive both the deadline and the request: the
	// deadline only changes what the user currently sees.
	uploadCtx := context.WithoutCancel(ctx)
	go func() {
		url, err := s.host.Upload(uploadCtx, bytes.NewReader(blob), filename)
		resultCh <- uploadResult{url: url, err: err}
	}()

	timer := time.NewTimer(s.deadline)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			slog.Error("evidence upload failed", "session", sessionID, "error", res.err)
			closed := make(chan string)
			close(closed)
			return &Capture{
				SessionID: sessionID,
				State:     StateFailed,
				Uploaded:  closed,
			}, nil
		}
		done := make(chan string, 1)
		done <- res.url
		close(done)
		return &Capture{
			SessionID: sessionID,
			State:     StateUploaded,
			URL:       res.url,
			Uploaded:  done,
		}, nil

	case <-timer.C:
		slog.Warn("evidence upload exceeded deadline, showing local preview", "session", sessionID, "deadline", s.deadline)
		late := make(chan string, 1)
		go func() {
			res := <-resultCh
			if res.err != nil {
				slog.Error("late evidence upload failed", "session", sessionID, "error", res.err)
			} else {
				slog.Info("late evidence upload resolved", "session", sessionID, "url", res.url)
				late <- res.url
			}
			close(late)
		}()
		return &Capture{
			SessionID:      sessionID,
			State:          StatePreview,
			PreviewDataURL: previewDataURL(blob),
			Uploaded:       late,
		}, nil
	}
}

// prepareFrame decodes the frame, downscales it when it exceeds the
// capture bounds, and re-encodes it as JPEG.
func prepareFrame(frame []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrBadFrame, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

func previewDataURL(blob []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(blob)
}
