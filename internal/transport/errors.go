package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidParameters), errors.Is(err, entity.ErrEmptyUpload):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrInvalidCredentials), errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrImageNotFound), errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled error")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
