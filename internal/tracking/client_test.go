package tracking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

func TestClientTrackNormalizesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/track/PJ123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"trackingNumber": "PJ123",
			"status": "OUT_FOR_DELIVERY",
			"carrier": "BlueDart",
			"recipientCity": "Chennai",
			"trackingEvents": [
				{"status": "OUT_FOR_DELIVERY", "timestamp": "2026-03-02T08:00:00Z"},
				{"status": "PICKED_UP", "timestamp": "2026-03-01T09:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	info, err := NewClient(srv.URL).Track(context.Background(), "PJ123")
	require.NoError(t, err)
	require.Equal(t, "Out For Delivery", info.StatusDisplay)
	require.Equal(t, "amber", info.StatusColor)

	// Events come back oldest first regardless of carrier ordering.
	require.Len(t, info.TrackingEvents, 2)
	require.Equal(t, "PICKED_UP", info.TrackingEvents[0].Status)
	require.Equal(t, "indigo", info.TrackingEvents[0].StatusColor)
	require.Equal(t, "OUT_FOR_DELIVERY", info.TrackingEvents[1].Status)
}

func TestClientTrackNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Track(context.Background(), "MISSING")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestClientTrackUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Track(context.Background(), "PJ123")
	require.ErrorIs(t, err, httpx.ErrUpstream)
	require.NotErrorIs(t, err, httpx.ErrNotFound)
}
