package models

import "time"

type Storyboard struct {
	ID            string           `json:"id"`
	SourceStripID string           `json:"sourceStripId"`
	Beats         []StoryboardBeat `json:"beats"`
	GeneratedAt   time.Time        `json:"generatedAt"`
	Prompt        string           `json:"prompt"`
}

type StoryboardBeat struct {
	ID          string  `json:"id"`
	Order       int     `json:"order"`
	Description string  `json:"description"`
	CameraMove  string  `json:"cameraMove"`
	Duration    float64 `json:"duration"`
	KeyFrameID  string  `json:"keyFrameId"`
}

// ApprovedStoryboard owns an independent copy of the beats, editable after
// approval without touching the source storyboard.
type ApprovedStoryboard struct {
	ID                 string           `json:"id"`
	SourceStoryboardID string           `json:"sourceStoryboardId"`
	Active             bool             `json:"active"`
	Beats              []StoryboardBeat `json:"beats"`
	ApprovedAt         time.Time        `json:"approvedAt"`
}

const (
	CameraStatic     = "static"
	CameraPanLeft    = "pan_left"
	CameraPanRight   = "pan_right"
	CameraTiltUp     = "tilt_up"
	CameraTiltDown   = "tilt_down"
	CameraZoomIn     = "zoom_in"
	CameraZoomOut    = "zoom_out"
	CameraDollyIn    = "dolly_in"
	CameraDollyOut   = "dolly_out"
	CameraOrbitLeft  = "orbit_left"
	CameraOrbitRight = "orbit_right"
)

var cameraMoves = map[string]bool{
	CameraStatic:     true,
	CameraPanLeft:    true,
	CameraPanRight:   true,
	CameraTiltUp:     true,
	CameraTiltDown:   true,
	CameraZoomIn:     true,
	CameraZoomOut:    true,
	CameraDollyIn:    true,
	CameraDollyOut:   true,
	CameraOrbitLeft:  true,
	CameraOrbitRight: true,
}

func ValidCameraMove(move string) bool {
	return cameraMoves[move]
}
