package storage

import (
	"context"
	"errors"
	"io"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go

const ContentTypeJPEG = "image/jpeg"

// BlobStore persists uploaded images. Blobs are addressed by name; images are stored as "{id}.jpg".
type BlobStore interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64) (string, error)
	Load(ctx context.Context, imageID string) ([]byte, error)
}

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrUploadFailed   = errors.New("failed to upload object")
)

func ObjectName(imageID string) string {
	return imageID + ".jpg"
}
