package transport

import (
	"net/http"

	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *ImageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	if file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrEmptyUpload.Error()})
		return
	}
	if h.maxUploadSize > 0 && file.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	defer src.Close()

	resp, err := h.service.Upload(c.Request.Context(), src, file.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ImageHandler) Resize(c *gin.Context) {
	var req entity.ResizeRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Resize(c.Request.Context(), req.ImageID, req.Width, req.Height)
	writeImage(c, result, err)
}

func (h *ImageHandler) Crop(c *gin.Context) {
	var req entity.CropRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Crop(c.Request.Context(), req.ImageID, req.X, req.Y, req.Width, req.Height)
	writeImage(c, result, err)
}

func (h *ImageHandler) Rotate(c *gin.Context) {
	var req entity.RotateRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Rotate(c.Request.Context(), req.ImageID, req.Degrees)
	writeImage(c, result, err)
}

func (h *ImageHandler) Watermark(c *gin.Context) {
	var req entity.WatermarkRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Watermark(c.Request.Context(), req.ImageID, req.WatermarkText)
	writeImage(c, result, err)
}

func (h *ImageHandler) Flip(c *gin.Context) {
	var req entity.FlipRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Flip(c.Request.Context(), req.ImageID, req.FlipMode)
	writeImage(c, result, err)
}

func (h *ImageHandler) Mirror(c *gin.Context) {
	var req entity.MirrorRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Mirror(c.Request.Context(), req.ImageID)
	writeImage(c, result, err)
}

func (h *ImageHandler) Compress(c *gin.Context) {
	var req entity.CompressRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.Compress(c.Request.Context(), req.ImageID, req.Quality)
	writeImage(c, result, err)
}

func (h *ImageHandler) ChangeFormat(c *gin.Context) {
	var req entity.ChangeFormatRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.ChangeFormat(c.Request.Context(), req.ImageID, req.Format)
	writeImage(c, result, err)
}

func (h *ImageHandler) ApplyFilter(c *gin.Context) {
	var req entity.FilterRequest
	if !bindParams(c, &req) {
		return
	}
	result, err := h.service.ApplyFilter(c.Request.Context(), req.ImageID, req.Filter)
	writeImage(c, result, err)
}

// bindParams reads parameters from the query string and the form body.
func bindParams(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindWith(req, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func writeImage(c *gin.Context, result *entity.ProcessedImage, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
