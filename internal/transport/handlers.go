package transport

import (
	"github.com/ds124wfegd/image-service/internal/pkg/auth"
	"github.com/ds124wfegd/image-service/internal/service"
)

type ImageHandler struct {
	service       service.ImageService
	maxUploadSize int64
}

// NewImageHandler creates the image endpoints. A non-positive maxUploadSize disables the size check.
func NewImageHandler(service service.ImageService, maxUploadSize int64) *ImageHandler {
	return &ImageHandler{service: service, maxUploadSize: maxUploadSize}
}

type UserHandler struct {
	service service.UserService
	tokens  auth.TokenIssuer
}

func NewUserHandler(service service.UserService, tokens auth.TokenIssuer) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}
