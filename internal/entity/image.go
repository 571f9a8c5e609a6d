package entity

import "time"

type ProcessedImage struct {
	Data        []byte
	ContentType string
}

type UploadResponse struct {
	ImageID  string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
}

type ImageUploadedEvent struct {
	ImageID    string    `json:"image_id"`
	ImageURL   string    `json:"image_url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type FlipMode string

const (
	FlipNone       FlipMode = "none"
	FlipHorizontal FlipMode = "horizontal"
	FlipVertical   FlipMode = "vertical"
)

// Params of the transform endpoints. Values come from the query string or form body.
type ResizeRequest struct {
	ImageID string `form:"imageId" binding:"required"`
	Width   int    `form:"width"`
	Height  int    `form:"height"`
}

type CropRequest struct {
	ImageID string `form:"imageId" binding:"required"`
	X       int    `form:"x"`
	Y       int    `form:"y"`
	Width   int    `form:"width"`
	Height  int    `form:"height"`
}

type RotateRequest struct {
	ImageID string  `form:"imageId" binding:"required"`
	Degrees float64 `form:"degrees"`
}

type WatermarkRequest struct {
	ImageID       string `form:"imageId" binding:"required"`
	WatermarkText string `form:"watermarkText"`
}

type FlipRequest struct {
	ImageID  string `form:"imageId" binding:"required"`
	FlipMode string `form:"flipMode" binding:"required"`
}

type MirrorRequest struct {
	ImageID string `form:"imageId" binding:"required"`
}

type CompressRequest struct {
	ImageID string `form:"imageId" binding:"required"`
	Quality int    `form:"quality"`
}

type ChangeFormatRequest struct {
	ImageID string `form:"imageId" binding:"required"`
	Format  string `form:"format"`
}

type FilterRequest struct {
	ImageID string `form:"imageId" binding:"required"`
	Filter  string `form:"filter"`
}
