package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"VideoSuite-server/models"
)

// One endpoint path per operation on the generation backend.
const (
	endpointStoryboards = "ai-generateStoryboards"
	endpointRefine      = "ai-refinePrompt"
	endpointStill       = "ai-generateStill"
	endpointClip        = "ai-generateClip"
	endpointExtend      = "ai-extendClip"
	endpointAssemble    = "ai-assembleScene"
)

// envelope is the response shape shared by every generation endpoint.
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

// AIClient issues exactly one POST per operation against the generation
// backend. No retries, no backoff, no caching; timeouts are the transport's
// concern.
type AIClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewAIClient(baseURL, apiKey string) *AIClient {
	return &AIClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

// post sends the payload and decodes the envelope's data into out. Transport
// faults, non-2xx statuses and success:false envelopes all come back as a
// single *models.GenerationError carrying the best available message.
func (c *AIClient) post(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &models.GenerationError{Endpoint: endpoint, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return &models.GenerationError{Endpoint: endpoint, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &models.GenerationError{Endpoint: endpoint, Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &models.GenerationError{Endpoint: endpoint, Message: msg}
	}
	if decodeErr != nil {
		return &models.GenerationError{Endpoint: endpoint, Message: "invalid response: " + decodeErr.Error()}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "AI service request failed"
		}
		return &models.GenerationError{Endpoint: endpoint, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &models.GenerationError{Endpoint: endpoint, Message: "invalid response data: " + err.Error()}
		}
	}
	return nil
}

func (c *AIClient) GenerateStoryboards(ctx context.Context, req StoryboardRequest) ([]models.Storyboard, error) {
	var storyboards []models.Storyboard
	if err := c.post(ctx, endpointStoryboards, req, &storyboards); err != nil {
		return nil, err
	}
	return storyboards, nil
}

func (c *AIClient) RefinePrompt(ctx context.Context, text string) (string, error) {
	var data struct {
		Text string `json:"text"`
	}
	payload := map[string]string{"text": text}
	if err := c.post(ctx, endpointRefine, payload, &data); err != nil {
		return "", err
	}
	return data.Text, nil
}

func (c *AIClient) GenerateStill(ctx context.Context, cardID, prompt string) (string, error) {
	var data struct {
		AssetURI string `json:"assetUri"`
	}
	payload := map[string]string{"cardId": cardID, "prompt": prompt}
	if err := c.post(ctx, endpointStill, payload, &data); err != nil {
		return "", err
	}
	return data.AssetURI, nil
}

func (c *AIClient) GenerateClip(ctx context.Context, req VideoRequest) (*models.VideoClip, error) {
	var clip models.VideoClip
	if err := c.post(ctx, endpointClip, req, &clip); err != nil {
		return nil, err
	}
	return &clip, nil
}

func (c *AIClient) ExtendClip(ctx context.Context, clipID string, extraSeconds float64) ([]models.VideoClip, error) {
	var clips []models.VideoClip
	payload := map[string]interface{}{"clipId": clipID, "extraSeconds": extraSeconds}
	if err := c.post(ctx, endpointExtend, payload, &clips); err != nil {
		return nil, err
	}
	return clips, nil
}

func (c *AIClient) AssembleScene(ctx context.Context, sceneID string, timeline []models.TimelineItem, settings models.ExportSettings) (string, error) {
	var data struct {
		DownloadURL string `json:"downloadUrl"`
	}
	payload := map[string]interface{}{
		"sceneId":        sceneID,
		"timeline":       timeline,
		"exportSettings": settings,
	}
	if err := c.post(ctx, endpointAssemble, payload, &data); err != nil {
		return "", err
	}
	return data.DownloadURL, nil
}
