package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
	"github.com/palaniappa-jewellers/backoffice/internal/tracking"
)

const defaultRefreshLimit = 200

// TrackingRefreshJob re-fetches carrier snapshots for recently looked-up
// shipments so storefront lookups keep hitting a warm cache.
type TrackingRefreshJob struct {
	service *tracking.Service
	logger  *slog.Logger
}

func NewTrackingRefreshJob(service *tracking.Service, logger *slog.Logger) *TrackingRefreshJob {
	return &TrackingRefreshJob{service: service, logger: logger}
}

// Handle processes TaskTrackingRefresh tasks.
func (j *TrackingRefreshJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload TrackingRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	limit := payload.Limit
	if limit <= 0 {
		limit = defaultRefreshLimit
	}

	numbers, err := j.service.Recent(ctx, limit)
	if err != nil {
		return err
	}

	refreshed := 0
	for _, number := range numbers {
		if _, err := j.service.Refresh(ctx, number); err != nil {
			// A number the carrier no longer knows is not a job failure.
			if errors.Is(err, httpx.ErrNotFound) {
				continue
			}
			j.logger.Warn("tracking refresh",
				slog.String("tracking_number", number), slog.Any("error", err))
			continue
		}
		refreshed++
	}
	j.logger.Info("tracking refresh pass",
		slog.Int("candidates", len(numbers)), slog.Int("refreshed", refreshed))
	return nil
}
