package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"VideoSuite-server/config"

	"github.com/hibiken/asynq"
)

const TypeClipJob = "clip:generate"

// ClipJobPayload carries a queued clip generation: the placeholder clip to
// resolve and the request to run.
type ClipJobPayload struct {
	ProjectID string       `json:"project_id"`
	ClipID    string       `json:"clip_id"`
	Request   VideoRequest `json:"request"`
}

var QueueClient *asynq.Client

// InitQueue connects the enqueue side. Call only when redis is enabled.
func InitQueue() {
	QueueClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.Redis.Addr,
		Password: config.AppConfig.Redis.Password,
	})
}

// EnqueueClipJob schedules one clip generation. The generation contract is a
// single round trip, so a failed job is not retried.
func EnqueueClipJob(p ClipJobPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload failed: %w", err)
	}

	task := asynq.NewTask(TypeClipJob, payload,
		asynq.MaxRetry(0),
		asynq.Timeout(20*time.Minute),
		asynq.Retention(24*time.Hour),
	)

	info, err := QueueClient.Enqueue(task)
	if err != nil {
		return fmt.Errorf("enqueue failed: %w", err)
	}

	log.Printf("[Queue] clip job enqueued: id=%s clip=%s", info.ID, p.ClipID)
	return nil
}
