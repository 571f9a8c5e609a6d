package transport

import (
	"net/http"
	"time"

	"github.com/ds124wfegd/image-service/internal/pkg/auth"
	"github.com/ds124wfegd/image-service/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	RequestTimeout time.Duration
	RequireToken   bool
	// FilesDir is served under /files when blobs are kept on local disk.
	FilesDir string
}

func InitRoutes(cfg RouterConfig, tokens auth.TokenIssuer, imgHandler *ImageHandler, userHandler *UserHandler) *gin.Engine {
	router := gin.New()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	images := router.Group("/image")
	if cfg.RequireToken {
		images.Use(middleware.Auth(tokens))
	}
	{
		images.POST("/upload", imgHandler.UploadImage)
		images.POST("/resize", imgHandler.Resize)
		images.POST("/crop", imgHandler.Crop)
		images.POST("/rotate", imgHandler.Rotate)
		images.POST("/watermark", imgHandler.Watermark)
		images.POST("/flip", imgHandler.Flip)
		images.POST("/mirror", imgHandler.Mirror)
		images.POST("/compress", imgHandler.Compress)
		images.POST("/changeformat", imgHandler.ChangeFormat)
		images.POST("/applyfilter", imgHandler.ApplyFilter)
	}

	users := router.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
	}

	if cfg.FilesDir != "" {
		router.Static("/files", cfg.FilesDir)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "image-service",
		})
	})

	return router
}
