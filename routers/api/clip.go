package api

import (
	"net/http"
	"time"

	"VideoSuite-server/config"
	"VideoSuite-server/models"
	"VideoSuite-server/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// GenerateClip produces a video clip for one storyboard beat. With redis
// configured the work is queued and a generating placeholder is returned;
// otherwise the generation runs in the request.
func GenerateClip(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		BeatID      string  `json:"beatId"`
		Prompt      string  `json:"prompt"`
		RefFrameURI string  `json:"refFrameUri"`
		CameraMove  string  `json:"cameraMove"`
		Duration    float64 `json:"duration"`
		Mode        string  `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CameraMove != "" && !models.ValidCameraMove(req.CameraMove) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported camera move: " + req.CameraMove})
		return
	}

	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	genReq := service.VideoRequest{
		ProjectID:   projectID,
		BeatID:      req.BeatID,
		Prompt:      req.Prompt,
		RefFrameURI: req.RefFrameURI,
		CameraMove:  req.CameraMove,
		Duration:    req.Duration,
		Mode:        req.Mode,
	}

	if !config.AppConfig.Redis.Enabled {
		clip, err := App.GenerateVideo(c.Request.Context(), genReq)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clip": clip})
		return
	}

	// Queued path: append a placeholder the processor will resolve.
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
	placeholder := models.VideoClip{
		ID:             uuid.NewString(),
		BeatID:         req.BeatID,
		Duration:       duration,
		GenerationMode: mode,
		CameraMove:     move,
		Status:         models.ClipStatusGenerating,
		CreatedAt:      time.Now(),
	}
	if err := Store.AddVideoClip(placeholder); err != nil {
		respondError(c, err)
		return
	}
	if err := service.EnqueueClipJob(service.ClipJobPayload{
		ProjectID: projectID,
		ClipID:    placeholder.ID,
		Request:   genReq,
	}); err != nil {
		if _, markErr := Store.UpdateVideoClip(projectID, placeholder.ID, models.ClipStatusFailed, ""); markErr != nil {
			respondError(c, markErr)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"clip": placeholder})
}

func ListClips(c *gin.Context) {
	projectID := c.Param("project_id")
	project, err := Store.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clips": project.VideoClips,
		"total": len(project.VideoClips),
	})
}

// ExtendClip appends continuation segments to an existing clip.
func ExtendClip(c *gin.Context) {
	projectID := c.Param("project_id")
	clipID := c.Param("clip_id")
	var req struct {
		ExtraSeconds float64 `json:"extraSeconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	clips, err := App.ExtendClip(c.Request.Context(), clipID, req.ExtraSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clips": clips})
}

// AddTimelineItem places a clip on the export track.
func AddTimelineItem(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		ClipID      string              `json:"clipId"`
		Order       int                 `json:"order"`
		StartTime   float64             `json:"startTime"`
		Duration    float64             `json:"duration"`
		Transitions *models.Transitions `json:"transitions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	item := models.TimelineItem{
		ID:          uuid.NewString(),
		ClipID:      req.ClipID,
		Order:       req.Order,
		StartTime:   req.StartTime,
		Duration:    req.Duration,
		Transitions: req.Transitions,
	}
	if err := Store.AddTimelineItem(item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// AssembleScene submits the project's timeline for final rendering and
// returns the download URL.
func AssembleScene(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		ExportSettings models.ExportSettings `json:"exportSettings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := Store.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(project.Timeline) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeline is empty"})
		return
	}

	downloadURL, err := App.AssembleScene(c.Request.Context(), projectID, project.Timeline, req.ExportSettings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ClipProgressWebSocket streams a clip's generation status: the current
// state immediately, then every change until a terminal status.
func ClipProgressWebSocket(c *gin.Context) {
	projectID := c.Param("project_id")
	clipID := c.Param("clip_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "websocket upgrade failed"})
		return
	}
	defer conn.Close()

	clip, ok := findClip(projectID, clipID)
	if !ok {
		_ = conn.WriteJSON(gin.H{"error": "clip not found"})
		return
	}
	if err := conn.WriteJSON(clip); err != nil {
		return
	}
	if clip.Status != models.ClipStatusGenerating {
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	prevStatus := clip.Status
	for range ticker.C {
		cur, ok := findClip(projectID, clipID)
		if !ok {
			continue
		}
		if cur.Status != prevStatus {
			if err := conn.WriteJSON(cur); err != nil {
				break
			}
			prevStatus = cur.Status
		}
		if cur.Status == models.ClipStatusCompleted || cur.Status == models.ClipStatusFailed {
			break
		}
	}
}

func findClip(projectID, clipID string) (models.VideoClip, bool) {
	project, err := Store.GetProject(projectID)
	if err != nil {
		return models.VideoClip{}, false
	}
	for _, clip := range project.VideoClips {
		if clip.ID == clipID {
			return clip, true
		}
	}
	return models.VideoClip{}, false
}
