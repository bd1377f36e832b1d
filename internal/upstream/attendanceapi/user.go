package attendanceapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/luvitbd/attendance-app-go/internal/domain/user"
)

// userPayload mirrors the upstream user document.
type userPayload struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Group   string `json:"group"`
	Zone    string `json:"zone"`
	CheckIn bool   `json:"checkIn"`
}

func (p userPayload) toProfile() user.Profile {
	return user.Profile{
		ID:        p.ID,
		Name:      p.Name,
		Role:      user.Role(p.Role),
		Group:     p.Group,
		Zone:      p.Zone,
		CheckedIn: p.CheckIn,
	}
}

// GetUser implements user.UserRepository.
func (c *Client) GetUser(ctx context.Context, id string) (user.Profile, error) {
	var payload userPayload
	if err := c.get(ctx, "/getUser/"+url.PathEscape(id), nil, &payload); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get user: %w", err)
	}
	return payload.toProfile(), nil
}

// GetAllUsers implements user.UserRepository.
func (c *Client) GetAllUsers(ctx context.Context, filter user.Filter) ([]user.Profile, error) {
	query := url.Values{}
	if filter.Role != nil {
		query.Set("role", string(*filter.Role))
	}
	if filter.Group != nil {
		query.Set("group", *filter.Group)
	}
	if filter.Zone != nil {
		query.Set("zone", *filter.Zone)
	}

	var payloads []userPayload
	if err := c.get(ctx, "/getAllUser", query, &payloads); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]user.Profile, 0, len(payloads))
	for _, p := range payloads {
		profiles = append(profiles, p.toProfile())
	}
	return profiles, nil
}
