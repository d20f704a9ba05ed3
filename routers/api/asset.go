package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"VideoSuite-server/config"
	"VideoSuite-server/models"
	"VideoSuite-server/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadAsset stores a curated image and records it on the project. The file
// goes to object storage when MinIO is configured; otherwise the asset keeps
// a local static path.
func UploadAsset(c *gin.Context) {
	projectID := c.Param("project_id")
	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file: " + err.Error()})
		return
	}

	aspect := models.AspectRatio(c.DefaultPostForm("aspect_ratio", string(models.Aspect16x9)))
	if !aspect.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported aspect ratio %q", aspect)})
		return
	}

	assetID := uuid.NewString()
	ext := filepath.Ext(fileHeader.Filename)
	objectName := fmt.Sprintf("assets/%s/%s%s", projectID, assetID, ext)

	var assetURL string
	if config.AppConfig.MinIO.Enabled {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "open upload failed: " + err.Error()})
			return
		}
		defer f.Close()
		assetURL, err = service.UploadObject(f, objectName, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed: " + err.Error()})
			return
		}
	} else {
		localPath := filepath.Join("static", objectName)
		if err := c.SaveUploadedFile(fileHeader, localPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed: " + err.Error()})
			return
		}
		assetURL = "/static/" + objectName
	}

	asset := models.FinalAsset{
		ID:          assetID,
		URL:         assetURL,
		Name:        fileHeader.Filename,
		AspectRatio: aspect,
		Metadata: models.AssetMetadata{
			FileSize:   fileHeader.Size,
			Format:     fileHeader.Header.Get("Content-Type"),
			UploadedAt: time.Now(),
		},
	}

	if err := Store.AddFinalAsset(asset); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

func ListAssets(c *gin.Context) {
	projectID := c.Param("project_id")
	project, err := Store.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assets": project.FinalAssets,
		"total":  len(project.FinalAssets),
	})
}

// AddReferenceMedia records an externally hosted reference image or video.
func AddReferenceMedia(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		URL         string `json:"url"`
		Type        string `json:"type"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.MediaTypeImage && req.Type != models.MediaTypeVideo {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported media type %q", req.Type)})
		return
	}

	if _, err := Store.OpenProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	media := models.ReferenceMedia{
		ID:          uuid.NewString(),
		URL:         req.URL,
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := Store.AddReferenceMedia(media); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": media})
}
