package api

import (
	"fmt"
	"net/http"
	"time"

	"VideoSuite-server/models"
	"VideoSuite-server/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateStrip records a key-frame strip assembled from cropped asset frames.
func CreateStrip(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		AspectRatio string            `json:"aspectRatio"`
		Notes       string            `json:"notes"`
		CropX       float64           `json:"cropX"`
		CropY       float64           `json:"cropY"`
		Frames      []models.KeyFrame `json:"frames"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aspect := models.AspectRatio(req.AspectRatio)
	if req.AspectRatio == "" {
		aspect = models.Aspect16x9
	}
	if !aspect.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported aspect ratio %q", req.AspectRatio)})
		return
	}

	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	frames := req.Frames
	for i := range frames {
		if frames[i].ID == "" {
			frames[i].ID = uuid.NewString()
		}
		frames[i].Order = i + 1
	}

	strip := models.KeyFrameStrip{
		ID:          uuid.NewString(),
		AspectRatio: aspect,
		Notes:       req.Notes,
		CropX:       req.CropX,
		CropY:       req.CropY,
		Frames:      frames,
	}
	if err := Store.AddKeyFrameStrip(strip); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"strip": strip})
}

// GenerateStoryboard runs storyboard generation for a strip and appends the
// results to the open project.
func GenerateStoryboard(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		StripID string `json:"stripId"`
		Prompt  string `json:"prompt"`
		Style   string `json:"style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	storyboards, err := App.GenerateStoryboard(c.Request.Context(), service.StoryboardRequest{
		ProjectID: projectID,
		StripID:   req.StripID,
		Prompt:    req.Prompt,
		Style:     req.Style,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"storyboards": storyboards,
		"total":       len(storyboards),
	})
}

func ListStoryboards(c *gin.Context) {
	projectID := c.Param("project_id")
	project, err := Store.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"storyboards": project.Storyboards,
		"approved":    project.ApprovedStoryboards,
	})
}

// ApproveStoryboard copies a storyboard's beats into a new active approval.
// The copy is independently editable afterwards.
func ApproveStoryboard(c *gin.Context) {
	projectID := c.Param("project_id")
	storyboardID := c.Param("storyboard_id")

	project, err := Store.OpenProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	var source *models.Storyboard
	for i := range project.Storyboards {
		if project.Storyboards[i].ID == storyboardID {
			source = &project.Storyboards[i]
			break
		}
	}
	if source == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "storyboard not found"})
		return
	}

	approved := models.ApprovedStoryboard{
		ID:                 uuid.NewString(),
		SourceStoryboardID: source.ID,
		Active:             true,
		Beats:              append([]models.StoryboardBeat(nil), source.Beats...),
		ApprovedAt:         time.Now(),
	}
	if err := Store.AddApprovedStoryboard(approved); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"approved": approved})
}

func RefinePrompt(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	refined, err := App.RefinePrompt(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": refined})
}

func GenerateStill(c *gin.Context) {
	var req struct {
		CardID string `json:"cardId"`
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uri, err := App.GenerateStill(c.Request.Context(), req.CardID, req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assetUri": uri})
}
