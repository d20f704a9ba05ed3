package api

import (
	"errors"
	"net/http"

	"VideoSuite-server/models"
	"VideoSuite-server/service"
	"VideoSuite-server/store"

	"github.com/gin-gonic/gin"
)

var (
	App   *service.App
	Store *store.Store
)

// Setup wires the handlers to the application core, called once from main.
func Setup(app *service.App) {
	App = app
	Store = app.Store()
}

func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	var gErr *models.GenerationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, models.ErrProjectNotFound), errors.Is(err, models.ErrClipNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNoActiveProject):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &gErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": gErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetAppState exposes the busy/error lifecycle for the banner indicator.
func GetAppState(c *gin.Context) {
	state, lastError := App.State()
	c.JSON(http.StatusOK, gin.H{
		"state": state,
		"error": lastError,
	})
}
