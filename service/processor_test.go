package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"VideoSuite-server/models"
	"VideoSuite-server/store"
)

func newClipJob(t *testing.T, payload ClipJobPayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(TypeClipJob, b)
}

func TestHandleClipJobCompletesPlaceholder(t *testing.T) {
	st, err := store.New(&memPersister{})
	require.NoError(t, err)
	gen := new(GeneratorMock)

	project, err := st.CreateProject("Demo", "")
	require.NoError(t, err)
	require.NoError(t, st.AddVideoClip(models.VideoClip{
		ID:     "clip-1",
		BeatID: "beat-1",
		Status: models.ClipStatusGenerating,
	}))

	gen.On("GenerateClip", mock.Anything, mock.Anything).Return(&models.VideoClip{
		ID:       "upstream-id",
		VideoURL: "https://example.com/v.mp4",
		Status:   models.ClipStatusCompleted,
	}, nil).Once()

	p := NewProcessor(st, gen)
	job := newClipJob(t, ClipJobPayload{
		ProjectID: project.ID,
		ClipID:    "clip-1",
		Request:   VideoRequest{ProjectID: project.ID, BeatID: "beat-1"},
	})
	require.NoError(t, p.HandleClipJob(context.Background(), job))

	got, err := st.GetProject(project.ID)
	require.NoError(t, err)
	require.Len(t, got.VideoClips, 1)
	require.Equal(t, models.ClipStatusCompleted, got.VideoClips[0].Status)
	require.Equal(t, "https://example.com/v.mp4", got.VideoClips[0].VideoURL)
	gen.AssertExpectations(t)
}

func TestHandleClipJobMarksFailure(t *testing.T) {
	st, err := store.New(&memPersister{})
	require.NoError(t, err)
	gen := new(GeneratorMock)

	project, err := st.CreateProject("Demo", "")
	require.NoError(t, err)
	require.NoError(t, st.AddVideoClip(models.VideoClip{
		ID:     "clip-1",
		Status: models.ClipStatusGenerating,
	}))

	gen.On("GenerateClip", mock.Anything, mock.Anything).
		Return(nil, &models.GenerationError{Message: "quota exceeded"}).Once()

	p := NewProcessor(st, gen)
	job := newClipJob(t, ClipJobPayload{ProjectID: project.ID, ClipID: "clip-1"})

	// Business failure resolves the placeholder instead of retrying.
	require.NoError(t, p.HandleClipJob(context.Background(), job))

	got, err := st.GetProject(project.ID)
	require.NoError(t, err)
	require.Equal(t, models.ClipStatusFailed, got.VideoClips[0].Status)
	gen.AssertExpectations(t)
}

func TestHandleClipJobBadPayloadSkipsRetry(t *testing.T) {
	st, err := store.New(&memPersister{})
	require.NoError(t, err)

	p := NewProcessor(st, new(GeneratorMock))
	err = p.HandleClipJob(context.Background(), asynq.NewTask(TypeClipJob, []byte("{broken")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
