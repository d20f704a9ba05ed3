package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"VideoSuite-server/models"
)

func TestAIClientSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/ai-refinePrompt", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a portrait", body["text"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"data":      map[string]string{"text": "a refined portrait"},
			"requestId": "req-1",
		})
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "test-key")
	got, err := c.RefinePrompt(context.Background(), "a portrait")
	require.NoError(t, err)
	require.Equal(t, "a refined portrait", got)
}

func TestAIClientEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "quota exceeded",
		})
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "")
	_, err := c.GenerateClip(context.Background(), VideoRequest{BeatID: "beat-1"})

	var gErr *models.GenerationError
	require.ErrorAs(t, err, &gErr)
	require.Equal(t, "quota exceeded", gErr.Message)
	require.Equal(t, "ai-generateClip", gErr.Endpoint)
}

func TestAIClientEnvelopeFailureWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "")
	_, err := c.GenerateStoryboards(context.Background(), StoryboardRequest{StripID: "strip-1"})

	var gErr *models.GenerationError
	require.ErrorAs(t, err, &gErr)
	require.Equal(t, "AI service request failed", gErr.Message)
}

func TestAIClientTransportStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "")
	_, err := c.GenerateStill(context.Background(), "card-1", "prompt")

	var gErr *models.GenerationError
	require.ErrorAs(t, err, &gErr)
	require.Equal(t, "request failed with status 500", gErr.Message)
}

func TestAIClientStatusWithEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "rate limited",
		})
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "")
	_, err := c.RefinePrompt(context.Background(), "text")

	var gErr *models.GenerationError
	require.ErrorAs(t, err, &gErr)
	require.Equal(t, "rate limited", gErr.Message)
}

func TestAIClientTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewAIClient(srv.URL, "")
	_, err := c.RefinePrompt(context.Background(), "text")

	var gErr *models.GenerationError
	require.ErrorAs(t, err, &gErr)
	require.NotEmpty(t, gErr.Message)
}

func TestAIClientDecodesStoryboards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai-generateStoryboards", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "sb-1", "sourceStripId": "strip-1"},
				{"id": "sb-2", "sourceStripId": "strip-1"},
			},
		})
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "")
	got, err := c.GenerateStoryboards(context.Background(), StoryboardRequest{StripID: "strip-1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "sb-1", got[0].ID)
	require.Equal(t, "strip-1", got[1].SourceStripID)
}

func TestAIClientAssembleScene(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai-assembleScene", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "scene-1", body["sceneId"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"downloadUrl": "https://example.com/final.mp4"},
		})
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, "")
	url, err := c.AssembleScene(context.Background(), "scene-1",
		[]models.TimelineItem{{ID: "t-1", ClipID: "clip-1"}}, models.ExportSettings{Format: "mp4"})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/final.mp4", url)
}
