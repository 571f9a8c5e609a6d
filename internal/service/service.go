package service

import (
	"context"
	"io"

	"github.com/ds124wfegd/image-service/internal/entity"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go

type ImageService interface {
	Upload(ctx context.Context, r io.Reader, size int64) (*entity.UploadResponse, error)

	Resize(ctx context.Context, imageID string, width, height int) (*entity.ProcessedImage, error)
	Crop(ctx context.Context, imageID string, x, y, width, height int) (*entity.ProcessedImage, error)
	Rotate(ctx context.Context, imageID string, degrees float64) (*entity.ProcessedImage, error)
	Watermark(ctx context.Context, imageID, text string) (*entity.ProcessedImage, error)
	Flip(ctx context.Context, imageID, mode string) (*entity.ProcessedImage, error)
	Mirror(ctx context.Context, imageID string) (*entity.ProcessedImage, error)
	Compress(ctx context.Context, imageID string, quality int) (*entity.ProcessedImage, error)
	ChangeFormat(ctx context.Context, imageID, format string) (*entity.ProcessedImage, error)
	ApplyFilter(ctx context.Context, imageID, filter string) (*entity.ProcessedImage, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

// EventPublisher is satisfied by the kafka and RabbitMQ publishers.
type EventPublisher interface {
	SendMessage(ctx context.Context, key string, message interface{}) error
}
