package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	mock_redis "github.com/ds124wfegd/image-service/internal/database/redis/mocks"
	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/ds124wfegd/image-service/internal/pkg/processor"
	"github.com/ds124wfegd/image-service/internal/pkg/storage"
	mock_storage "github.com/ds124wfegd/image-service/internal/pkg/storage/mocks"
	mock_service "github.com/ds124wfegd/image-service/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type imageServiceMocks struct {
	store    *mock_storage.MockBlobStore
	cache    *mock_redis.MockResultCache
	events   *mock_service.MockEventPublisher
}

func newTestImageService(t *testing.T) (ImageService, imageServiceMocks) {
	ctrl := gomock.NewController(t)
	m := imageServiceMocks{
		store:    mock_storage.NewMockBlobStore(ctrl),
		cache:    mock_redis.NewMockResultCache(ctrl),
		events:   mock_service.NewMockEventPublisher(ctrl),
	}
	return NewImageService(m.store, m.cache, processor.NewImageProcessor(0), m.events), m
}

func jpegFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	data, err := processor.NewImageProcessor(0).Encode(img, processor.FormatJPEG, 90)
	require.NoError(t, err)
	return data
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

// expectMiss sets up a cache miss followed by a successful load and cache write.
func expectMiss(m imageServiceMocks, key, imageID string, blob []byte) {
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
	m.store.EXPECT().Load(gomock.Any(), imageID).Return(blob, nil)
	m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)
}

func TestUploadStoresBlobAndPublishesEvent(t *testing.T) {
	svc, m := newTestImageService(t)
	data := []byte("fake jpeg")

	var storedName string
	m.store.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(data))).
		DoAndReturn(func(_ context.Context, name string, r io.Reader, _ int64) (string, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, data, body)
			storedName = name
			return "https://images.s3.amazonaws.com/" + name, nil
		})
	m.events.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(entity.ImageUploadedEvent{})).
		Return(nil)

	resp, err := svc.Upload(context.Background(), bytes.NewReader(data), int64(len(data)))

	require.NoError(t, err)
	_, err = uuid.Parse(resp.ImageID)
	assert.NoError(t, err)
	assert.Equal(t, resp.ImageID+".jpg", storedName)
	assert.Equal(t, "https://images.s3.amazonaws.com/"+resp.ImageID+".jpg", resp.ImageURL)
}

func TestUploadGeneratesDistinctIDs(t *testing.T) {
	svc, m := newTestImageService(t)
	m.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil).Times(2)
	m.events.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.Upload(context.Background(), strings.NewReader("a"), 1)
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), strings.NewReader("b"), 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.ImageID, second.ImageID)
}

func TestUploadEmptyDoesNotTouchStorage(t *testing.T) {
	svc, _ := newTestImageService(t)

	_, err := svc.Upload(context.Background(), strings.NewReader(""), 0)
	assert.ErrorIs(t, err, entity.ErrEmptyUpload)

	_, err = svc.Upload(context.Background(), nil, 10)
	assert.ErrorIs(t, err, entity.ErrEmptyUpload)
}

func TestUploadEventPublishIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_storage.NewMockBlobStore(ctrl)
	events := mock_service.NewMockEventPublisher(ctrl)
	svc := &imageService{
		store:          store,
		processor:      processor.NewImageProcessor(0),
		events:         events,
		publishTimeout: 50 * time.Millisecond,
	}

	store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil)
	events.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ interface{}) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		})

	// a request context that is already gone must not cancel the publish early or fail the upload
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	resp, err := svc.Upload(reqCtx, strings.NewReader("x"), 1)

	require.NoError(t, err)
	assert.Equal(t, "url", resp.ImageURL)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestUploadStorageFailure(t *testing.T) {
	svc, m := newTestImageService(t)
	m.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", storage.ErrUploadFailed)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}

func TestUploadSucceedsWhenEventPublishFails(t *testing.T) {
	svc, m := newTestImageService(t)
	m.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil)
	m.events.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	resp, err := svc.Upload(context.Background(), strings.NewReader("x"), 1)

	require.NoError(t, err)
	assert.Equal(t, "url", resp.ImageURL)
}

func TestResizeSecondCallServedFromCache(t *testing.T) {
	svc, m := newTestImageService(t)
	key := "resized-abc-100-50"

	var cached []byte
	m.cache.EXPECT().Get(gomock.Any(), key).
		DoAndReturn(func(context.Context, string) ([]byte, bool, error) {
			return cached, cached != nil, nil
		}).Times(2)
	m.store.EXPECT().Load(gomock.Any(), "abc").Return(jpegFixture(t, 320, 240), nil).Times(1)
	m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) error {
			cached = data
			return nil
		}).Times(1)

	first, err := svc.Resize(context.Background(), "abc", 100, 50)
	require.NoError(t, err)
	second, err := svc.Resize(context.Background(), "abc", 100, 50)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, "image/jpeg", second.ContentType)
	w, h := decodeSize(t, first.Data)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestCrop(t *testing.T) {
	svc, m := newTestImageService(t)
	expectMiss(m, "cropped-abc-10-20-30-40", "abc", jpegFixture(t, 100, 80))

	result, err := svc.Crop(context.Background(), "abc", 10, 20, 30, 40)

	require.NoError(t, err)
	w, h := decodeSize(t, result.Data)
	assert.Equal(t, 30, w)
	assert.Equal(t, 40, h)
}

func TestCropOutsideBounds(t *testing.T) {
	svc, m := newTestImageService(t)
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	m.store.EXPECT().Load(gomock.Any(), "abc").Return(jpegFixture(t, 100, 80), nil)

	_, err := svc.Crop(context.Background(), "abc", 90, 0, 20, 10)

	assert.ErrorIs(t, err, entity.ErrInvalidParameters)
}

func TestChangeFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		key         string
		contentType string
		magic       []byte
	}{
		{"png", "png", "changeformat-abc-png", "image/png", []byte("\x89PNG")},
		{"uppercase gif", "GIF", "changeformat-abc-gif", "image/gif", []byte("GIF8")},
		{"bmp", "bmp", "changeformat-abc-bmp", "image/bmp", []byte("BM")},
		{"unknown falls back to jpeg", "tiff", "changeformat-abc-tiff", "image/jpeg", []byte{0xFF, 0xD8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestImageService(t)
			expectMiss(m, tt.key, "abc", jpegFixture(t, 20, 20))

			result, err := svc.ChangeFormat(context.Background(), "abc", tt.format)

			require.NoError(t, err)
			assert.Equal(t, tt.contentType, result.ContentType)
			assert.True(t, bytes.HasPrefix(result.Data, tt.magic))
		})
	}
}

func TestCacheHitContentTypeFollowsOperation(t *testing.T) {
	svc, m := newTestImageService(t)
	m.cache.EXPECT().Get(gomock.Any(), "changeformat-abc-png").Return([]byte("cached"), true, nil)

	result, err := svc.ChangeFormat(context.Background(), "abc", "png")

	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), result.Data)
	assert.Equal(t, "image/png", result.ContentType)
}

func TestOperationsUseTheirCacheKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
		call func(ImageService) (*entity.ProcessedImage, error)
	}{
		{"rotate", "rotate-abc-90", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Rotate(context.Background(), "abc", 90)
		}},
		{"rotate fractional", "rotate-abc-12.5", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Rotate(context.Background(), "abc", 12.5)
		}},
		{"watermark", "watermark-abc-hello+world", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Watermark(context.Background(), "abc", "hello world")
		}},
		{"flip by name", "flip-abc-vertical", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Flip(context.Background(), "abc", "Vertical")
		}},
		{"flip by code", "flip-abc-horizontal", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Flip(context.Background(), "abc", "1")
		}},
		{"mirror", "mirror-abc", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Mirror(context.Background(), "abc")
		}},
		{"compress", "compress-abc-30", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.Compress(context.Background(), "abc", 30)
		}},
		{"grayscale", "filter-abc-grayscale", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.ApplyFilter(context.Background(), "abc", "Grayscale")
		}},
		{"sepia", "filter-abc-sepia", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.ApplyFilter(context.Background(), "abc", "sepia")
		}},
		{"unknown filter", "filter-abc-blur", func(s ImageService) (*entity.ProcessedImage, error) {
			return s.ApplyFilter(context.Background(), "abc", "blur")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestImageService(t)
			expectMiss(m, tt.key, "abc", jpegFixture(t, 40, 30))

			result, err := tt.call(svc)

			require.NoError(t, err)
			assert.Equal(t, "image/jpeg", result.ContentType)
			assert.NotEmpty(t, result.Data)
		})
	}
}

func TestRotateQuarterTurnSwapsDimensions(t *testing.T) {
	svc, m := newTestImageService(t)
	expectMiss(m, "rotate-abc-90", "abc", jpegFixture(t, 40, 20))

	result, err := svc.Rotate(context.Background(), "abc", 90)

	require.NoError(t, err)
	w, h := decodeSize(t, result.Data)
	assert.Equal(t, 20, w)
	assert.Equal(t, 40, h)
}

func TestInvalidParametersSkipIO(t *testing.T) {
	svc, _ := newTestImageService(t)
	ctx := context.Background()

	calls := map[string]func() error{
		"empty id": func() error {
			_, err := svc.Mirror(ctx, "")
			return err
		},
		"zero width": func() error {
			_, err := svc.Resize(ctx, "abc", 0, 10)
			return err
		},
		"negative crop origin": func() error {
			_, err := svc.Crop(ctx, "abc", -1, 0, 10, 10)
			return err
		},
		"quality above range": func() error {
			_, err := svc.Compress(ctx, "abc", 101)
			return err
		},
		"quality below range": func() error {
			_, err := svc.Compress(ctx, "abc", -1)
			return err
		},
		"NaN degrees": func() error {
			_, err := svc.Rotate(ctx, "abc", math.NaN())
			return err
		},
		"infinite degrees": func() error {
			_, err := svc.Rotate(ctx, "abc", math.Inf(1))
			return err
		},
		"negative infinite degrees": func() error {
			_, err := svc.Rotate(ctx, "abc", math.Inf(-1))
			return err
		},
		"unknown flip mode": func() error {
			_, err := svc.Flip(ctx, "abc", "diagonal")
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), entity.ErrInvalidParameters)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing blob", func(t *testing.T) {
		svc, m := newTestImageService(t)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		m.store.EXPECT().Load(gomock.Any(), "missing").Return(nil, storage.ErrObjectNotFound)

		_, err := svc.Mirror(context.Background(), "missing")

		assert.ErrorIs(t, err, entity.ErrImageNotFound)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		svc, m := newTestImageService(t)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		m.store.EXPECT().Load(gomock.Any(), "abc").Return(nil, errors.New("connection refused"))

		_, err := svc.Mirror(context.Background(), "abc")

		assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
	})

	t.Run("not an image", func(t *testing.T) {
		svc, m := newTestImageService(t)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		m.store.EXPECT().Load(gomock.Any(), "abc").Return([]byte("plain text"), nil)

		_, err := svc.Mirror(context.Background(), "abc")

		assert.ErrorIs(t, err, entity.ErrInvalidParameters)
	})
}

func TestCacheFailuresDoNotFailRequest(t *testing.T) {
	svc, m := newTestImageService(t)
	m.cache.EXPECT().Get(gomock.Any(), "mirror-abc").Return(nil, false, errors.New("redis down"))
	m.store.EXPECT().Load(gomock.Any(), "abc").Return(jpegFixture(t, 10, 10), nil)
	m.cache.EXPECT().Set(gomock.Any(), "mirror-abc", gomock.Any()).Return(errors.New("redis down"))

	result, err := svc.Mirror(context.Background(), "abc")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Data)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "resized-abc-100-50", cacheKey("resized", "abc", "100", "50"))
	assert.Equal(t, "mirror-abc", cacheKey("mirror", "abc"))
	assert.Equal(t, "watermark-a%2Db-c", cacheKey("watermark", "a-b", "c"))

	assert.NotEqual(t,
		cacheKey("watermark", "a-b", "c"),
		cacheKey("watermark", "a", "b-c"))
	assert.NotEqual(t,
		cacheKey("resized", "a-1", "2"),
		cacheKey("resized", "a", "1-2"))
	assert.NotEqual(t,
		cacheKey("watermark", "abc", "x%2Dy"),
		cacheKey("watermark", "abc", "x-y"))
}

func TestParseFlipMode(t *testing.T) {
	tests := []struct {
		input string
		want  entity.FlipMode
	}{
		{"horizontal", entity.FlipHorizontal},
		{"HORIZONTAL", entity.FlipHorizontal},
		{"1", entity.FlipHorizontal},
		{"vertical", entity.FlipVertical},
		{"2", entity.FlipVertical},
		{"none", entity.FlipNone},
		{"0", entity.FlipNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFlipMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFlipMode("3")
	assert.ErrorIs(t, err, entity.ErrInvalidParameters)
}
