package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"VideoSuite-server/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	fs := NewFileStore(path)

	createdAt := time.Date(2026, 8, 1, 9, 30, 0, 123456789, time.UTC)
	updatedAt := createdAt.Add(42 * time.Minute)
	projects := map[string]*models.Project{
		"p-1": {
			ID:          "p-1",
			Name:        "Demo",
			Description: "round trip",
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
			Manifesto: &models.Manifesto{
				Tone:    "warm",
				DoNots:  []string{"harsh artificial lighting"},
				Enabled: true,
			},
			ReferenceMedia: []models.ReferenceMedia{},
			FinalAssets: []models.FinalAsset{{
				ID:          "a-1",
				URL:         "https://example.com/a.png",
				AspectRatio: models.Aspect16x9,
				Metadata: models.AssetMetadata{
					Width:      1920,
					Height:     1080,
					FileSize:   1024,
					Format:     "image/png",
					UploadedAt: createdAt,
				},
			}},
			KeyFrameStrips:      []models.KeyFrameStrip{},
			Storyboards:         []models.Storyboard{},
			ApprovedStoryboards: []models.ApprovedStoryboard{},
			VideoClips: []models.VideoClip{{
				ID:        "c-1",
				Status:    models.ClipStatusCompleted,
				CreatedAt: updatedAt,
			}},
			Timeline: []models.TimelineItem{},
		},
	}

	require.NoError(t, fs.Save(projects))

	got, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got["p-1"]
	require.NotNil(t, p)
	require.Equal(t, projects["p-1"], p)

	// Date fields preserve the same instant across the boundary.
	require.True(t, p.CreatedAt.Equal(createdAt))
	require.True(t, p.UpdatedAt.Equal(updatedAt))
	require.True(t, p.FinalAssets[0].Metadata.UploadedAt.Equal(createdAt))
}

func TestFileStoreLoadMissing(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	got, err := fs.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fs := NewFileStore(path)
	got, err := fs.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFileStoreSaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	fs := NewFileStore(path)

	require.NoError(t, fs.Save(map[string]*models.Project{
		"p-1": {ID: "p-1", Name: "first"},
		"p-2": {ID: "p-2", Name: "second"},
	}))
	require.NoError(t, fs.Save(map[string]*models.Project{
		"p-2": {ID: "p-2", Name: "second"},
	}))

	got, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotContains(t, got, "p-1")
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "projects.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save(map[string]*models.Project{}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
