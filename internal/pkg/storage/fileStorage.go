package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// fileStorage keeps blobs under a local directory. Used for development and tests.
type fileStorage struct {
	basePath  string
	publicURL string
}

var _ BlobStore = (*fileStorage)(nil)

func NewFileStorage(basePath, publicURL string) (BlobStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	if publicURL == "" {
		publicURL = "/files"
	}
	return &fileStorage{basePath: basePath, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (s *fileStorage) Upload(ctx context.Context, name string, r io.Reader, size int64) (string, error) {
	fullPath, err := s.path(name)
	if err != nil {
		return "", err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return s.publicURL + "/" + name, nil
}

func (s *fileStorage) Load(ctx context.Context, imageID string) ([]byte, error) {
	fullPath, err := s.path(ObjectName(imageID))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if os.IsNotExist(err) {
		return nil, ErrObjectNotFound
	}
	return data, err
}

// path rejects names that would escape basePath.
func (s *fileStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid object name %q", ErrObjectNotFound, name)
	}
	return filepath.Join(s.basePath, name), nil
}
