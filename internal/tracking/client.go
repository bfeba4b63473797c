package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

// Client calls the external carrier tracking API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a carrier API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Track fetches the tracking snapshot for a tracking number. An
// upstream 404 is the distinct "not found" outcome; every other
// non-2xx response is a generic upstream failure.
func (c *Client) Track(ctx context.Context, trackingNumber string) (*Info, error) {
	endpoint := c.baseURL + "/track/" + url.PathEscape(trackingNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tracking: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: carrier unreachable", httpx.ErrUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: tracking number %s", httpx.ErrNotFound, trackingNumber)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: carrier returned %d", httpx.ErrUpstream, resp.StatusCode)
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: malformed carrier response", httpx.ErrUpstream)
	}
	if info.TrackingNumber == "" {
		info.TrackingNumber = trackingNumber
	}

	// Carriers do not guarantee event order.
	sort.SliceStable(info.TrackingEvents, func(a, b int) bool {
		return info.TrackingEvents[a].Timestamp < info.TrackingEvents[b].Timestamp
	})
	info.normalize()
	return &info, nil
}
