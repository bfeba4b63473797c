package tracking

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeTracker struct {
	calls atomic.Int64
	info  Info
}

func (f *fakeTracker) Track(ctx context.Context, trackingNumber string) (*Info, error) {
	f.calls.Add(1)
	info := f.info
	info.TrackingNumber = trackingNumber
	info.normalize()
	return &info, nil
}

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceLookupCachesSnapshot(t *testing.T) {
	tracker := &fakeTracker{info: Info{Status: "IN_TRANSIT", Carrier: "BlueDart"}}
	svc := NewService(tracker, newCacheClient(t), time.Minute, testLogger())

	first, err := svc.Lookup(context.Background(), "PJ1")
	require.NoError(t, err)
	require.Equal(t, "In Transit", first.StatusDisplay)

	second, err := svc.Lookup(context.Background(), "PJ1")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, tracker.calls.Load())
}

func TestServiceLookupWithoutCache(t *testing.T) {
	tracker := &fakeTracker{info: Info{Status: "CREATED"}}
	svc := NewService(tracker, nil, time.Minute, testLogger())

	for i := 0; i < 2; i++ {
		info, err := svc.Lookup(context.Background(), "PJ2")
		require.NoError(t, err)
		require.Equal(t, "gray", info.StatusColor)
	}
	require.EqualValues(t, 2, tracker.calls.Load())
}

func TestServiceTracksRecentUndeliveredShipments(t *testing.T) {
	cacheClient := newCacheClient(t)
	tracker := &fakeTracker{info: Info{Status: "IN_TRANSIT"}}
	svc := NewService(tracker, cacheClient, time.Minute, testLogger())

	_, err := svc.Lookup(context.Background(), "PJ3")
	require.NoError(t, err)

	recent, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, []string{"PJ3"}, recent)

	// Delivery drops the shipment from the refresh set.
	tracker.info.Status = "DELIVERED"
	_, err = svc.Refresh(context.Background(), "PJ3")
	require.NoError(t, err)

	recent, err = svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, recent)
}

func TestServiceRefreshRewritesCache(t *testing.T) {
	cacheClient := newCacheClient(t)
	tracker := &fakeTracker{info: Info{Status: "IN_TRANSIT"}}
	svc := NewService(tracker, cacheClient, time.Minute, testLogger())

	_, err := svc.Lookup(context.Background(), "PJ4")
	require.NoError(t, err)

	tracker.info.Status = "OUT_FOR_DELIVERY"
	refreshed, err := svc.Refresh(context.Background(), "PJ4")
	require.NoError(t, err)
	require.Equal(t, "amber", refreshed.StatusColor)

	cached, err := svc.Lookup(context.Background(), "PJ4")
	require.NoError(t, err)
	require.Equal(t, "OUT_FOR_DELIVERY", cached.Status)
	require.EqualValues(t, 2, tracker.calls.Load())
}
