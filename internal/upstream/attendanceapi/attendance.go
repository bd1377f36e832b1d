package attendanceapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
)

const timeLayout = "2006-01-02 15:04:05"

// eventPayload mirrors the upstream check-in/check-out document.
type eventPayload struct {
	ID       string           `json:"_id,omitempty"`
	UserID   string           `json:"userId"`
	Note     string           `json:"note,omitempty"`
	Image    string           `json:"image,omitempty"`
	Time     string           `json:"time"`
	Date     string           `json:"date"`
	Status   string           `json:"status"`
	Location *geo.Coordinates `json:"location,omitempty"`
}

func toEventPayload(event attendance.Event) eventPayload {
	local := event.Time.In(attendance.Location())
	return eventPayload{
		UserID:   event.UserID,
		Note:     event.Note,
		Image:    event.EvidenceURL,
		Time:     local.Format(timeLayout),
		Date:     local.Format("2006-01-02"),
		Status:   string(event.Status),
		Location: event.Location,
	}
}

func (p eventPayload) toEvent(kind attendance.Kind) (attendance.Event, error) {
	t, err := time.ParseInLocation(timeLayout, p.Time, attendance.Location())
	if err != nil {
		return attendance.Event{}, fmt.Errorf("bad event time %q: %w", p.Time, err)
	}
	return attendance.Event{
		ID:          p.ID,
		UserID:      p.UserID,
		Kind:        kind,
		Time:        t,
		Status:      attendance.Status(p.Status),
		Note:        p.Note,
		EvidenceURL: p.Image,
		Location:    p.Location,
	}, nil
}

// SubmitCheckIn implements attendance.EventRepository.
func (c *Client) SubmitCheckIn(ctx context.Context, event attendance.Event) (attendance.SubmitAck, error) {
	return c.submit(ctx, "/checkin", event)
}

// SubmitCheckOut implements attendance.EventRepository.
func (c *Client) SubmitCheckOut(ctx context.Context, event attendance.Event) (attendance.SubmitAck, error) {
	return c.submit(ctx, "/checkout", event)
}

func (c *Client) submit(ctx context.Context, path string, event attendance.Event) (attendance.SubmitAck, error) {
	var resp struct {
		ID      string `json:"_id"`
		Message string `json:"message"`
	}
	if err := c.send(ctx, http.MethodPost, path, toEventPayload(event), &resp); err != nil {
		return attendance.SubmitAck{}, fmt.Errorf("failed to submit event: %w", err)
	}
	return attendance.SubmitAck{EventID: resp.ID, Message: resp.Message}, nil
}

// GetCheckIns implements attendance.EventRepository.
func (c *Client) GetCheckIns(ctx context.Context, userID string, query attendance.Query) ([]attendance.Event, error) {
	return c.listEvents(ctx, "/api/checkins/", userID, attendance.KindCheckIn, query)
}

// GetCheckOuts implements attendance.EventRepository.
func (c *Client) GetCheckOuts(ctx context.Context, userID string, query attendance.Query) ([]attendance.Event, error) {
	return c.listEvents(ctx, "/api/checkouts/", userID, attendance.KindCheckOut, query)
}

func (c *Client) listEvents(ctx context.Context, prefix, userID string, kind attendance.Kind, query attendance.Query) ([]attendance.Event, error) {
	params := url.Values{}
	if query.Date != "" {
		params.Set("date", query.Date)
	} else {
		params.Set("month", strconv.Itoa(query.Month))
		params.Set("year", strconv.Itoa(query.Year))
	}

	var payloads []eventPayload
	if err := c.get(ctx, prefix+url.PathEscape(userID), params, &payloads); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]attendance.Event, 0, len(payloads))
	for _, p := range payloads {
		event, err := p.toEvent(kind)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// UpdateStatus implements attendance.EventRepository.
func (c *Client) UpdateStatus(ctx context.Context, eventID string, kind attendance.Kind, status attendance.Status) error {
	prefix := "/api/checkins/"
	if kind == attendance.KindCheckOut {
		prefix = "/api/checkouts/"
	}

	body := map[string]string{"status": string(status)}
	err := c.send(ctx, http.MethodPatch, prefix+url.PathEscape(eventID)+"/status", body, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return attendance.ErrEventNotFound
		}
		return fmt.Errorf("failed to update event status: %w", err)
	}
	return nil
}

// UpdateEvidence implements attendance.EventRepository.
func (c *Client) UpdateEvidence(ctx context.Context, eventID string, kind attendance.Kind, imageURL string) error {
	prefix := "/api/checkins/"
	if kind == attendance.KindCheckOut {
		prefix = "/api/checkouts/"
	}

	body := map[string]string{"image": imageURL}
	err := c.send(ctx, http.MethodPatch, prefix+url.PathEscape(eventID)+"/image", body, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return attendance.ErrEventNotFound
		}
		return fmt.Errorf("failed to update event evidence: %w", err)
	}
	return nil
}
