package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/luvitbd/attendance-app-go/internal/config"
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
)

// Lookup resolves an IP address to coordinates; used only as the
// fallback when device GPS acquisition fails.
type Lookup interface {
	Resolve(ctx context.Context, ip string) (geo.Coordinates, error)
}

// Client queries an ipinfo.io-style endpoint whose "loc" field is
// "lat,lon".
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.LocationConfig) *Client {
	return &Client{
		baseURL: cfg.IPInfoURL,
		token:   cfg.IPInfoToken,
		http:    &http.Client{Timeout: cfg.GPSTimeout},
	}
}

// Resolve implements Lookup. An empty ip resolves the caller's own
// address, matching the browser behavior of the original client.
func (c *Client) Resolve(ctx context.Context, ip string) (geo.Coordinates, error) {
	u := c.baseURL + "/json"
	if ip != "" {
		u = c.baseURL + "/" + url.PathEscape(ip) + "/json"
	}
	if c.token != "" {
		u += "?token=" + url.QueryEscape(c.token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return geo.Coordinates{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("ip geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return geo.Coordinates{}, fmt.Errorf("ip geolocation returned status %d", resp.StatusCode)
	}

	var payload struct {
		Loc string `json:"loc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return geo.Coordinates{}, fmt.Errorf("failed to decode ip geolocation response: %w", err)
	}

	return parseLoc(payload.Loc)
}

func parseLoc(loc string) (geo.Coordinates, error) {
	parts := strings.SplitN(loc, ",", 2)
	if len(parts) != 2 {
		return geo.Coordinates{}, fmt.Errorf("malformed loc field %q", loc)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("malformed latitude in %q: %w", loc, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("malformed longitude in %q: %w", loc, err)
	}

	return geo.Coordinates{Latitude: lat, Longitude: lon}, nil
}
