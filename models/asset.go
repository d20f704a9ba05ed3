package models

import "time"

type FinalAsset struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Name        string        `json:"name"`
	AspectRatio AspectRatio   `json:"aspectRatio"`
	Selected    bool          `json:"selected"`
	Metadata    AssetMetadata `json:"metadata"`
}

// AssetMetadata is fixed at upload time and never modified afterwards.
type AssetMetadata struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	FileSize   int64     `json:"fileSize"`
	Format     string    `json:"format"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type KeyFrameStrip struct {
	ID          string      `json:"id"`
	AspectRatio AspectRatio `json:"aspectRatio"`
	Selected    bool        `json:"selected"`
	Notes       string      `json:"notes"`
	CropX       float64     `json:"cropX"`
	CropY       float64     `json:"cropY"`
	Frames      []KeyFrame  `json:"frames"`
}

type KeyFrame struct {
	ID         string     `json:"id"`
	AssetID    string     `json:"assetId"`
	Order      int        `json:"order"`
	CropRegion CropRegion `json:"cropRegion"`
}

type CropRegion struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
