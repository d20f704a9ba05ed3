package api

import (
	"net/http"

	"VideoSuite-server/models"
	"VideoSuite-server/store"

	"github.com/gin-gonic/gin"
)

func CreateProject(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := App.CreateProject(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func ListProjects(c *gin.Context) {
	projects := App.ListProjects()
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

func GetProject(c *gin.Context) {
	projectID := c.Param("project_id")
	project, err := Store.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// OpenProject makes the project the session's current one.
func OpenProject(c *gin.Context) {
	projectID := c.Param("project_id")
	project, err := App.LoadProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func UpdateProject(c *gin.Context) {
	projectID := c.Param("project_id")
	var req struct {
		Name        *string           `json:"name"`
		Description *string           `json:"description"`
		Manifesto   *models.Manifesto `json:"manifesto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := App.UpdateProject(projectID, store.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Manifesto:   req.Manifesto,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func DeleteProject(c *gin.Context) {
	projectID := c.Param("project_id")
	if err := App.DeleteProject(projectID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateManifesto replaces the project's creative manifesto.
func UpdateManifesto(c *gin.Context) {
	projectID := c.Param("project_id")
	var manifesto models.Manifesto
	if err := c.ShouldBindJSON(&manifesto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := App.UpdateProject(projectID, store.ProjectUpdate{Manifesto: &manifesto})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}
