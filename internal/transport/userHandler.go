package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *UserHandler) Register(c *gin.Context) {
	var req entity.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req entity.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, entity.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong username or password"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		logrus.WithError(err).WithField("username", user.Username).Error("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, entity.TokenResponse{Token: token})
}
