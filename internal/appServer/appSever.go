// launching the server, postgres, redis, object storage, kafka
package appServer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/image-service/config"
	repository "github.com/ds124wfegd/image-service/internal/database/postgres"
	cache "github.com/ds124wfegd/image-service/internal/database/redis"
	"github.com/ds124wfegd/image-service/internal/pkg/auth"
	"github.com/ds124wfegd/image-service/internal/pkg/kafka"
	"github.com/ds124wfegd/image-service/internal/pkg/processor"
	"github.com/ds124wfegd/image-service/internal/pkg/rabbitMQ"
	"github.com/ds124wfegd/image-service/internal/pkg/storage"
	"github.com/ds124wfegd/image-service/internal/service"
	"github.com/ds124wfegd/image-service/internal/transport"
	"github.com/ds124wfegd/image-service/pkg/postgres"
	"github.com/ds124wfegd/image-service/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = newHTTPServer(cfg, handler)
	return s.httpServer.ListenAndServe()
}

// newHTTPServer serves plain HTTP; TLS is terminated in front of the service.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func ConfigureLogger(cfg *config.LoggerConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// NewServer wires all dependencies and serves HTTP until SIGINT or SIGTERM.
func NewServer(cfg *config.Config) error {
	ConfigureLogger(&cfg.Logger)
	ctx := context.Background()

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		return err
	}

	redisClient, err := redis.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	blobStore, filesDir, err := newBlobStore(ctx, &cfg.Storage)
	if err != nil {
		return err
	}

	events, err := newEventPublisher(cfg)
	if err != nil {
		return err
	}
	defer events.Close()

	tokens, err := auth.NewTokenIssuer(cfg.JWT.Key, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		return err
	}

	// Initialize services
	imgService := service.NewImageService(
		blobStore,
		cache.NewCacheRepository(redisClient, cfg.Cache.TTL),
		processor.NewImageProcessor(cfg.Server.MaxPixels),
		events,
	)
	userService := service.NewUserService(repository.NewUserRepository(db))

	imgHandler := transport.NewImageHandler(imgService, cfg.Server.MaxUploadSize)
	userHandler := transport.NewUserHandler(userService, tokens)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := transport.InitRoutes(transport.RouterConfig{
		RequestTimeout: cfg.Server.RequestTimeout,
		RequireToken:   cfg.Auth.RequireToken,
		FilesDir:       filesDir,
	}, tokens, imgHandler, userHandler)

	srv := new(Server)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Run(cfg, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	logrus.WithField("port", cfg.Server.Port).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("error occured while running http server: %w", err)
	}

	logrus.Print("App Shutting Down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
	return nil
}

// Migrate applies database migrations and exits.
func Migrate(cfg *config.Config) error {
	ConfigureLogger(&cfg.Logger)

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return postgres.RunMigrations(context.Background(), db)
}

type eventPublisher interface {
	service.EventPublisher
	Close() error
}

// newEventPublisher prefers kafka, then RabbitMQ. With neither enabled events are only logged.
func newEventPublisher(cfg *config.Config) (eventPublisher, error) {
	switch {
	case cfg.Kafka.Enabled:
		return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic), nil
	case cfg.RabbitMQ.Enabled:
		return rabbitMQ.NewPublisher(rabbitMQ.RabbitMQConfig{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.Queue,
		})
	default:
		logrus.Info("No message broker enabled, upload events are not published")
		return kafka.NewMockProducer(cfg.Kafka.Topic), nil
	}
}

// newBlobStore also returns the directory to expose under /files, empty for remote backends.
func newBlobStore(ctx context.Context, cfg *config.StorageConfig) (storage.BlobStore, string, error) {
	switch cfg.Backend {
	case "local":
		store, err := storage.NewFileStorage(cfg.LocalPath, cfg.PublicURL)
		return store, cfg.LocalPath, err
	case "s3", "minio":
		store, err := storage.NewMinioStorage(ctx, storage.MinioConfig{
			Endpoint:     cfg.Endpoint,
			AccessKey:    cfg.AccessKey,
			SecretKey:    cfg.SecretKey,
			Bucket:       cfg.Bucket,
			Region:       cfg.Region,
			UseSSL:       cfg.UseSSL,
			CreateBucket: cfg.CreateBucket,
			PublicURL:    cfg.PublicURL,
		})
		return store, "", err
	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
