package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTrackingRefresh re-warms cached tracking snapshots for
	// shipments that are still in flight.
	TaskTrackingRefresh = "tracking:refresh"
)

// TrackingRefreshPayload bounds a refresh pass.
type TrackingRefreshPayload struct {
	Limit int `json:"limit"`
}

// NewTrackingRefreshTask constructs a tracking refresh task.
func NewTrackingRefreshTask(limit int) (*asynq.Task, error) {
	data, err := json.Marshal(TrackingRefreshPayload{Limit: limit})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTrackingRefresh, data), nil
}
