package service

import (
	"context"
	"fmt"
	"time"

	"VideoSuite-server/models"

	"github.com/google/uuid"
)

// StoryboardRequest asks for storyboard options derived from a key-frame
// strip.
type StoryboardRequest struct {
	ProjectID string `json:"projectId"`
	StripID   string `json:"stripId"`
	Prompt    string `json:"prompt,omitempty"`
	Style     string `json:"style,omitempty"`
}

// VideoRequest asks for a clip realizing one storyboard beat.
type VideoRequest struct {
	ProjectID   string  `json:"projectId"`
	BeatID      string  `json:"beatId"`
	Prompt      string  `json:"prompt"`
	RefFrameURI string  `json:"refFrameUri,omitempty"`
	CameraMove  string  `json:"cameraMove,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	Mode        string  `json:"mode,omitempty"`
}

// Generator is the pluggable generation strategy. AIClient talks to the real
// backend; MockGenerator stands in for development and tests.
type Generator interface {
	GenerateStoryboards(ctx context.Context, req StoryboardRequest) ([]models.Storyboard, error)
	RefinePrompt(ctx context.Context, text string) (string, error)
	GenerateStill(ctx context.Context, cardID, prompt string) (string, error)
	GenerateClip(ctx context.Context, req VideoRequest) (*models.VideoClip, error)
	ExtendClip(ctx context.Context, clipID string, extraSeconds float64) ([]models.VideoClip, error)
	AssembleScene(ctx context.Context, sceneID string, timeline []models.TimelineItem, settings models.ExportSettings) (string, error)
}

// MockGenerator synthesizes plausible generation results locally.
type MockGenerator struct {
	clock func() time.Time
	idGen func() string
}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{clock: time.Now, idGen: uuid.NewString}
}

func (g *MockGenerator) GenerateStoryboards(ctx context.Context, req StoryboardRequest) ([]models.Storyboard, error) {
	now := g.clock()
	prompt := req.Prompt
	if prompt == "" {
		prompt = "Generate cinematic storyboard"
	}

	return []models.Storyboard{
		{
			ID:            g.idGen(),
			SourceStripID: req.StripID,
			GeneratedAt:   now,
			Prompt:        prompt,
			Beats: []models.StoryboardBeat{
				{
					ID:          g.idGen(),
					Order:       1,
					Description: "Opening shot: wide establishing shot of the scene with dramatic lighting",
					CameraMove:  models.CameraStatic,
					Duration:    3,
					KeyFrameID:  "keyframe-1",
				},
				{
					ID:          g.idGen(),
					Order:       2,
					Description: "Medium shot: focus on the main subject with subtle camera movement",
					CameraMove:  models.CameraDollyIn,
					Duration:    4,
					KeyFrameID:  "keyframe-2",
				},
				{
					ID:          g.idGen(),
					Order:       3,
					Description: "Close-up: intimate detail shot with shallow depth of field",
					CameraMove:  models.CameraZoomIn,
					Duration:    2,
					KeyFrameID:  "keyframe-3",
				},
			},
		},
		{
			ID:            g.idGen(),
			SourceStripID: req.StripID,
			GeneratedAt:   now,
			Prompt:        prompt,
			Beats: []models.StoryboardBeat{
				{
					ID:          g.idGen(),
					Order:       1,
					Description: "Dynamic opening: sweeping camera movement across the scene",
					CameraMove:  models.CameraPanRight,
					Duration:    4,
					KeyFrameID:  "keyframe-1",
				},
				{
					ID:          g.idGen(),
					Order:       2,
					Description: "Character focus: tracking shot following the main subject",
					CameraMove:  models.CameraOrbitLeft,
					Duration:    5,
					KeyFrameID:  "keyframe-2",
				},
			},
		},
	}, nil
}

func (g *MockGenerator) RefinePrompt(ctx context.Context, text string) (string, error) {
	return "Refined: " + text + ", soft natural light, authentic storytelling, muted earth tones", nil
}

func (g *MockGenerator) GenerateStill(ctx context.Context, cardID, prompt string) (string, error) {
	return fmt.Sprintf("https://example.com/stills/%s-%s.png", cardID, g.idGen()), nil
}

// GenerateClip fills in the documented defaults: 3 seconds, fast mode,
// static camera, completed status.
func (g *MockGenerator) GenerateClip(ctx context.Context, req VideoRequest) (*models.VideoClip, error) {
	duration := req.Duration
	if duration <= 0 {
		duration = 3
	}
	mode := req.Mode
	if mode == "" {
		mode = models.ClipModeFast
	}
	move := req.CameraMove
	if move == "" {
		move = models.CameraStatic
	}

	id := g.idGen()
	return &models.VideoClip{
		ID:             id,
		BeatID:         req.BeatID,
		VideoURL:       fmt.Sprintf("https://example.com/generated-video-%s.mp4", id),
		Duration:       duration,
		GenerationMode: mode,
		CameraMove:     move,
		Status:         models.ClipStatusCompleted,
		CreatedAt:      g.clock(),
	}, nil
}

// ExtendClip returns the original clip id followed by one continuation
// segment covering the extra seconds.
func (g *MockGenerator) ExtendClip(ctx context.Context, clipID string, extraSeconds float64) ([]models.VideoClip, error) {
	if extraSeconds <= 0 {
		extraSeconds = 3
	}
	contID := g.idGen()
	return []models.VideoClip{
		{ID: clipID, Status: models.ClipStatusCompleted},
		{
			ID:             contID,
			VideoURL:       fmt.Sprintf("https://example.com/generated-video-%s.mp4", contID),
			Duration:       extraSeconds,
			GenerationMode: models.ClipModeFast,
			CameraMove:     models.CameraStatic,
			Status:         models.ClipStatusCompleted,
			CreatedAt:      g.clock(),
		},
	}, nil
}

func (g *MockGenerator) AssembleScene(ctx context.Context, sceneID string, timeline []models.TimelineItem, settings models.ExportSettings) (string, error) {
	return fmt.Sprintf("https://example.com/renders/%s-%s.mp4", sceneID, g.idGen()), nil
}
