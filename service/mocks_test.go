package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"VideoSuite-server/models"
)

type GeneratorMock struct {
	mock.Mock
}

func (m *GeneratorMock) GenerateStoryboards(ctx context.Context, req StoryboardRequest) ([]models.Storyboard, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.([]models.Storyboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GeneratorMock) RefinePrompt(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *GeneratorMock) GenerateStill(ctx context.Context, cardID, prompt string) (string, error) {
	args := m.Called(ctx, cardID, prompt)
	return args.String(0), args.Error(1)
}

func (m *GeneratorMock) GenerateClip(ctx context.Context, req VideoRequest) (*models.VideoClip, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.VideoClip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GeneratorMock) ExtendClip(ctx context.Context, clipID string, extraSeconds float64) ([]models.VideoClip, error) {
	args := m.Called(ctx, clipID, extraSeconds)
	if v := args.Get(0); v != nil {
		return v.([]models.VideoClip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GeneratorMock) AssembleScene(ctx context.Context, sceneID string, timeline []models.TimelineItem, settings models.ExportSettings) (string, error) {
	args := m.Called(ctx, sceneID, timeline, settings)
	return args.String(0), args.Error(1)
}
