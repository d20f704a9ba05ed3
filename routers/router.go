package routers

import (
	"VideoSuite-server/routers/api"

	"github.com/gin-gonic/gin"
)

func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Static("/static", "./static")
	v1 := r.Group("/v1/api")
	{
		v1.GET("/state", api.GetAppState)

		v1.POST("/projects", api.CreateProject)
		v1.GET("/projects", api.ListProjects)
		v1.GET("/projects/:project_id", api.GetProject)
		v1.POST("/projects/:project_id/open", api.OpenProject)
		v1.PUT("/projects/:project_id", api.UpdateProject)
		v1.DELETE("/projects/:project_id", api.DeleteProject)
		v1.PUT("/projects/:project_id/manifesto", api.UpdateManifesto)

		v1.POST("/projects/:project_id/assets", api.UploadAsset)
		v1.GET("/projects/:project_id/assets", api.ListAssets)
		v1.POST("/projects/:project_id/reference", api.AddReferenceMedia)

		v1.POST("/projects/:project_id/strips", api.CreateStrip)
		v1.POST("/projects/:project_id/storyboards", api.GenerateStoryboard)
		v1.GET("/projects/:project_id/storyboards", api.ListStoryboards)
		v1.POST("/projects/:project_id/storyboards/:storyboard_id/approve", api.ApproveStoryboard)

		v1.POST("/refine-prompt", api.RefinePrompt)
		v1.POST("/generate-still", api.GenerateStill)

		v1.POST("/projects/:project_id/clips", api.GenerateClip)
		v1.GET("/projects/:project_id/clips", api.ListClips)
		v1.POST("/projects/:project_id/clips/:clip_id/extend", api.ExtendClip)

		v1.POST("/projects/:project_id/timeline", api.AddTimelineItem)
		v1.POST("/projects/:project_id/assemble", api.AssembleScene)
	}
	r.GET("/projects/:project_id/clips/:clip_id/ws", api.ClipProgressWebSocket)
	return r
}
