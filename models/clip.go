package models

import "time"

const (
	ClipStatusGenerating = "generating"
	ClipStatusCompleted  = "completed"
	ClipStatusFailed     = "failed"

	ClipModeFast    = "fast"
	ClipModeQuality = "quality"
)

type VideoClip struct {
	ID             string    `json:"id"`
	BeatID         string    `json:"beatId"`
	VideoURL       string    `json:"videoUrl"`
	Duration       float64   `json:"duration"`
	GenerationMode string    `json:"generationMode"`
	CameraMove     string    `json:"cameraMove"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TimelineItem places a clip on the single export track.
type TimelineItem struct {
	ID          string       `json:"id"`
	ClipID      string       `json:"clipId"`
	Order       int          `json:"order"`
	StartTime   float64      `json:"startTime"`
	Duration    float64      `json:"duration"`
	Transitions *Transitions `json:"transitions,omitempty"`
}

type Transitions struct {
	FadeIn  float64 `json:"fadeIn,omitempty"`
	FadeOut float64 `json:"fadeOut,omitempty"`
}

type ExportSettings struct {
	Resolution string `json:"resolution"`
	FPS        int    `json:"fps"`
	Format     string `json:"format"`
	Bitrate    int    `json:"bitrate"`
}
