package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"VideoSuite-server/config"
	"VideoSuite-server/models"
	"VideoSuite-server/store"

	"github.com/hibiken/asynq"
)

// Processor consumes queued clip jobs, runs the generation and resolves the
// placeholder clip in the store.
type Processor struct {
	Store *store.Store
	Gen   Generator
}

func NewProcessor(st *store.Store, gen Generator) *Processor {
	return &Processor{Store: st, Gen: gen}
}

func (p *Processor) StartProcessor(concurrency int) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.Redis.Addr,
			Password: config.AppConfig.Redis.Password,
		},
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeClipJob, p.HandleClipJob)

	log.Printf("starting clip processor with concurrency %d", concurrency)
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("could not run queue server: %v", err)
		}
	}()
}

func (p *Processor) HandleClipJob(ctx context.Context, t *asynq.Task) error {
	var payload ClipJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	log.Printf("processing clip job: project=%s clip=%s", payload.ProjectID, payload.ClipID)

	clip, err := p.Gen.GenerateClip(ctx, payload.Request)
	if err != nil {
		log.Printf("clip generation failed: %v", err)
		if _, markErr := p.Store.UpdateVideoClip(payload.ProjectID, payload.ClipID, models.ClipStatusFailed, ""); markErr != nil {
			log.Printf("failed to mark clip %s failed: %v", payload.ClipID, markErr)
		}
		// business failure, no retry
		return nil
	}

	if _, err := p.Store.UpdateVideoClip(payload.ProjectID, payload.ClipID, models.ClipStatusCompleted, clip.VideoURL); err != nil {
		log.Printf("failed to complete clip %s: %v", payload.ClipID, err)
		return nil
	}
	log.Printf("clip job %s completed", payload.ClipID)
	return nil
}
