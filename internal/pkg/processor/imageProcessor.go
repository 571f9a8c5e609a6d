package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/image-service/internal/entity"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultQuality = 75
	// DefaultMaxPixels caps decoded and resized images (about 160 MB as NRGBA).
	DefaultMaxPixels = 40_000_000

	watermarkOffset = 10
)

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatGIF  Format = "gif"
)

// ParseFormat maps a requested output format to a supported one. Unknown names fall back to JPEG.
func ParseFormat(name string) Format {
	switch strings.ToLower(name) {
	case "png":
		return FormatPNG
	case "bmp":
		return FormatBMP
	case "gif":
		return FormatGIF
	default:
		return FormatJPEG
	}
}

func (f Format) ContentType() string {
	return "image/" + string(f)
}

func (f Format) imagingFormat() imaging.Format {
	switch f {
	case FormatPNG:
		return imaging.PNG
	case FormatBMP:
		return imaging.BMP
	case FormatGIF:
		return imaging.GIF
	default:
		return imaging.JPEG
	}
}

type ImageProcessor interface {
	Decode(data []byte) (image.Image, error)
	Encode(img image.Image, format Format, quality int) ([]byte, error)

	Resize(img image.Image, width, height int) (image.Image, error)
	Crop(img image.Image, x, y, width, height int) (image.Image, error)
	Rotate(img image.Image, degrees float64) image.Image
	Watermark(img image.Image, text string) image.Image
	Flip(img image.Image, mode entity.FlipMode) image.Image
	Grayscale(img image.Image) image.Image
	Sepia(img image.Image) image.Image
}

type imageProcessor struct {
	face      font.Face
	maxPixels int64
}

// NewImageProcessor limits images to maxPixels; a non-positive value selects DefaultMaxPixels.
func NewImageProcessor(maxPixels int64) ImageProcessor {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &imageProcessor{face: basicfont.Face7x13, maxPixels: maxPixels}
}

// Decode reads the header first so oversized sources are rejected before any pixel is allocated.
func (p *imageProcessor) Decode(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %v", entity.ErrInvalidParameters, err)
	}
	if err := p.checkPixels(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %v", entity.ErrInvalidParameters, err)
	}
	return img, nil
}

func (p *imageProcessor) Encode(img image.Image, format Format, quality int) ([]byte, error) {
	if quality < 0 || quality > 100 {
		return nil, fmt.Errorf("%w: quality must be between 0 and 100", entity.ErrInvalidParameters)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format.imagingFormat(), imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Resize scales to cover width x height and crops the overflow around the center.
func (p *imageProcessor) Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", entity.ErrInvalidParameters)
	}
	if err := p.checkPixels(width, height); err != nil {
		return nil, err
	}
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos), nil
}

func (p *imageProcessor) Crop(img image.Image, x, y, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 || x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: invalid crop rectangle", entity.ErrInvalidParameters)
	}

	bounds := img.Bounds()
	rect := image.Rect(x, y, x+width, y+height).Add(bounds.Min)
	if !rect.In(bounds) {
		return nil, fmt.Errorf("%w: crop rectangle %v is outside of image bounds %v",
			entity.ErrInvalidParameters, rect, bounds)
	}
	return imaging.Crop(img, rect), nil
}

// Rotate turns the image clockwise. The canvas grows to fit and uncovered corners are black.
func (p *imageProcessor) Rotate(img image.Image, degrees float64) image.Image {
	return imaging.Rotate(img, -degrees, color.Black)
}

func (p *imageProcessor) Watermark(img image.Image, text string) image.Image {
	dst := imaging.Clone(img)
	if text == "" {
		return dst
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: p.face,
		Dot: fixed.Point26_6{
			X: fixed.I(watermarkOffset),
			Y: fixed.I(watermarkOffset + p.face.Metrics().Ascent.Ceil()),
		},
	}
	drawer.DrawString(text)
	return dst
}

func (p *imageProcessor) Flip(img image.Image, mode entity.FlipMode) image.Image {
	switch mode {
	case entity.FlipHorizontal:
		return imaging.FlipH(img)
	case entity.FlipVertical:
		return imaging.FlipV(img)
	default:
		return imaging.Clone(img)
	}
}

func (p *imageProcessor) Grayscale(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

func (p *imageProcessor) Sepia(img image.Image) image.Image {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		r, g, b := float64(c.R), float64(c.G), float64(c.B)
		return color.NRGBA{
			R: clamp(0.393*r + 0.769*g + 0.189*b),
			G: clamp(0.349*r + 0.686*g + 0.168*b),
			B: clamp(0.272*r + 0.534*g + 0.131*b),
			A: c.A,
		}
	})
}

func (p *imageProcessor) checkPixels(width, height int) error {
	if int64(width)*int64(height) > p.maxPixels {
		return fmt.Errorf("%w: %dx%d exceeds the limit of %d pixels",
			entity.ErrInvalidParameters, width, height, p.maxPixels)
	}
	return nil
}

func clamp(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, math.Round(v))))
}
