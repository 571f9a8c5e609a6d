package middleware

import (
	"net/http"
	"strings"

	"github.com/ds124wfegd/image-service/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ContextUsername = "username"
	ContextUserID   = "user_id"
)

// Auth requires a valid "Authorization: Bearer <token>" header.
func Auth(tokens auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Debug("Rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUsername, claims.Subject)
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
