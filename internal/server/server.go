package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"devconnect-service/internal/adapters/database"
	"devconnect-service/internal/adapters/kafka"
	"devconnect-service/internal/auth"
	"devconnect-service/internal/config"
	"devconnect-service/internal/feed"
	"devconnect-service/internal/middleware"
	"devconnect-service/internal/request"
	"devconnect-service/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type App struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.NewMySQLDB(
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	// Kafka and MinIO are best-effort collaborators: the API stays up
	// without them, with events and photo uploads disabled.
	var events request.EventPublisher
	if producer, err := kafka.NewSyncProducer(cfg.Kafka.Brokers); err != nil {
		slog.Warn("kafka unavailable, connection events disabled", "error", err)
	} else {
		events = kafka.NewEventPublisher(producer, cfg.Kafka.Topic)
	}

	var photos user.PhotoStore
	if store, err := database.NewPhotoStore(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket); err != nil {
		slog.Warn("minio unavailable, photo uploads disabled", "error", err)
	} else {
		photos = store
	}

	// Repositories, services, handlers
	tokenStore := auth.NewTokenStore(redisClient)

	authRepo := auth.NewAuthRepository(db)
	authService := auth.NewAuthService(authRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	authHandler := auth.NewAuthHandler(authService)

	userRepo := user.NewUserRepository(db)
	userService := user.NewUserService(userRepo, photos, cfg.Minio.MaxPhotoSize)
	userHandler := user.NewUserHandler(userService)

	requestRepo := request.NewRequestRepository(db)
	requestService := request.NewRequestService(requestRepo, userRepo, events)
	requestHandler := request.NewRequestHandler(requestService)

	feedService := feed.NewFeedService(requestRepo, userRepo, cfg.Feed.DefaultLimit, cfg.Feed.MaxLimit)
	feedHandler := feed.NewFeedHandler(feedService)

	limiter := middleware.NewRateLimiter(redisClient)

	router := gin.New()
	router.Use(middleware.LogAPI(), gin.Recovery(), middleware.CORS(cfg.Server.AllowedOrigins))

	SetupRoutes(router, cfg, limiter, tokenStore, authHandler, userHandler, requestHandler, feedHandler)

	return &App{router: router, db: db, cfg: cfg}, nil
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:      a.router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", srv.Addr)
	return srv.ListenAndServe()
}
