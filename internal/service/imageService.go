package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	cache "github.com/ds124wfegd/image-service/internal/database/redis"
	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/ds124wfegd/image-service/internal/pkg/processor"
	"github.com/ds124wfegd/image-service/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	FilterGrayscale = "grayscale"
	FilterSepia     = "sepia"
)

const eventPublishTimeout = 2 * time.Second

type imageService struct {
	store     storage.BlobStore
	cache     cache.ResultCache
	processor processor.ImageProcessor
	events    EventPublisher

	publishTimeout time.Duration
}

func NewImageService(store storage.BlobStore, cache cache.ResultCache, processor processor.ImageProcessor, events EventPublisher) ImageService {
	return &imageService{
		store:     store,
		cache:     cache,
		processor: processor,
		events:    events,

		publishTimeout: eventPublishTimeout,
	}
}

// Upload stores the image under a fresh id and announces it to subscribers.
func (s *imageService) Upload(ctx context.Context, r io.Reader, size int64) (*entity.UploadResponse, error) {
	if r == nil || size <= 0 {
		return nil, entity.ErrEmptyUpload
	}

	imageID := uuid.NewString()
	imageURL, err := s.store.Upload(ctx, storage.ObjectName(imageID), r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstreamUnavailable, err)
	}

	event := entity.ImageUploadedEvent{
		ImageID:    imageID,
		ImageURL:   imageURL,
		Size:       size,
		UploadedAt: time.Now().UTC(),
	}
	// The blob is already stored; a slow broker or a disconnecting client must not fail the upload.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.events.SendMessage(publishCtx, imageID, event); err != nil {
		logrus.WithError(err).WithField("image_id", imageID).Warn("Failed to publish upload event")
	}

	logrus.WithFields(logrus.Fields{
		"image_id": imageID,
		"size":     size,
	}).Info("Image uploaded")

	return &entity.UploadResponse{ImageID: imageID, ImageURL: imageURL}, nil
}

func (s *imageService) Resize(ctx context.Context, imageID string, width, height int) (*entity.ProcessedImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", entity.ErrInvalidParameters)
	}
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("resized", imageID, strconv.Itoa(width), strconv.Itoa(height)),
		transform: func(img image.Image) (image.Image, error) {
			return s.processor.Resize(img, width, height)
		},
	})
}

func (s *imageService) Crop(ctx context.Context, imageID string, x, y, width, height int) (*entity.ProcessedImage, error) {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid crop rectangle", entity.ErrInvalidParameters)
	}
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key: cacheKey("cropped", imageID,
			strconv.Itoa(x), strconv.Itoa(y), strconv.Itoa(width), strconv.Itoa(height)),
		transform: func(img image.Image) (image.Image, error) {
			return s.processor.Crop(img, x, y, width, height)
		},
	})
}

func (s *imageService) Rotate(ctx context.Context, imageID string, degrees float64) (*entity.ProcessedImage, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return nil, fmt.Errorf("%w: degrees must be a finite number", entity.ErrInvalidParameters)
	}
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("rotate", imageID, strconv.FormatFloat(degrees, 'f', -1, 64)),
		transform: func(img image.Image) (image.Image, error) {
			return s.processor.Rotate(img, degrees), nil
		},
	})
}

func (s *imageService) Watermark(ctx context.Context, imageID, text string) (*entity.ProcessedImage, error) {
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("watermark", imageID, text),
		transform: func(img image.Image) (image.Image, error) {
			return s.processor.Watermark(img, text), nil
		},
	})
}

func (s *imageService) Flip(ctx context.Context, imageID, mode string) (*entity.ProcessedImage, error) {
	flipMode, err := ParseFlipMode(mode)
	if err != nil {
		return nil, err
	}
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("flip", imageID, string(flipMode)),
		transform: func(img image.Image) (image.Image, error) {
			return s.processor.Flip(img, flipMode), nil
		},
	})
}

func (s *imageService) Mirror(ctx context.Context, imageID string) (*entity.ProcessedImage, error) {
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("mirror", imageID),
		transform: func(img image.Image) (image.Image, error) {
			return s.processor.Flip(img, entity.FlipHorizontal), nil
		},
	})
}

func (s *imageService) Compress(ctx context.Context, imageID string, quality int) (*entity.ProcessedImage, error) {
	if quality < 0 || quality > 100 {
		return nil, fmt.Errorf("%w: quality must be between 0 and 100", entity.ErrInvalidParameters)
	}
	return s.process(ctx, operation{
		imageID: imageID,
		key:     cacheKey("compress", imageID, strconv.Itoa(quality)),
		quality: quality,
	})
}

func (s *imageService) ChangeFormat(ctx context.Context, imageID, format string) (*entity.ProcessedImage, error) {
	format = strings.ToLower(format)
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("changeformat", imageID, format),
		format:  processor.ParseFormat(format),
	})
}

// ApplyFilter supports grayscale and sepia. Any other filter returns the image re-encoded unchanged.
func (s *imageService) ApplyFilter(ctx context.Context, imageID, filter string) (*entity.ProcessedImage, error) {
	filter = strings.ToLower(filter)
	return s.process(ctx, operation{
		imageID: imageID,
		quality: processor.DefaultQuality,
		key:     cacheKey("filter", imageID, filter),
		transform: func(img image.Image) (image.Image, error) {
			switch filter {
			case FilterGrayscale:
				return s.processor.Grayscale(img), nil
			case FilterSepia:
				return s.processor.Sepia(img), nil
			default:
				return img, nil
			}
		},
	})
}

// ParseFlipMode accepts mode names or their numeric codes (0 none, 1 horizontal, 2 vertical), case-insensitively.
func ParseFlipMode(mode string) (entity.FlipMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "none", "0":
		return entity.FlipNone, nil
	case "horizontal", "1":
		return entity.FlipHorizontal, nil
	case "vertical", "2":
		return entity.FlipVertical, nil
	}
	return "", fmt.Errorf("%w: unknown flip mode %q", entity.ErrInvalidParameters, mode)
}

type operation struct {
	imageID   string
	key       string
	format    processor.Format
	quality   int
	transform func(image.Image) (image.Image, error)
}

// process runs the cache-aside flow shared by all transforms.
func (s *imageService) process(ctx context.Context, op operation) (*entity.ProcessedImage, error) {
	if op.imageID == "" {
		return nil, fmt.Errorf("%w: imageId is required", entity.ErrInvalidParameters)
	}
	if op.format == "" {
		op.format = processor.FormatJPEG
	}

	log := logrus.WithFields(logrus.Fields{
		"image_id":  op.imageID,
		"cache_key": op.key,
	})

	data, found, err := s.cache.Get(ctx, op.key)
	if err != nil {
		log.WithError(err).Warn("Cache read failed, processing without cache")
	}
	if found {
		log.Debug("Cache hit")
		return &entity.ProcessedImage{Data: data, ContentType: op.format.ContentType()}, nil
	}
	log.Debug("Cache miss")

	raw, err := s.store.Load(ctx, op.imageID)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", entity.ErrImageNotFound, op.imageID)
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstreamUnavailable, err)
	}

	img, err := s.processor.Decode(raw)
	if err != nil {
		return nil, err
	}

	if op.transform != nil {
		if img, err = op.transform(img); err != nil {
			return nil, err
		}
	}

	data, err = s.processor.Encode(img, op.format, op.quality)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, op.key, data); err != nil {
		log.WithError(err).Warn("Failed to store processed image in cache")
	}

	return &entity.ProcessedImage{Data: data, ContentType: op.format.ContentType()}, nil
}

// cacheKey joins the operation name with escaped components, so "-" inside a component never acts as a separator.
func cacheKey(op string, parts ...string) string {
	var b strings.Builder
	b.WriteString(op)
	for _, part := range parts {
		b.WriteByte('-')
		b.WriteString(strings.ReplaceAll(url.QueryEscape(part), "-", "%2D"))
	}
	return b.String()
}
