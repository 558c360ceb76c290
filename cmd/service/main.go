package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	configs "edulegit_service/config"
	"edulegit_service/internal/cache"
	"edulegit_service/internal/edulegit"
	"edulegit_service/internal/repository"
	"edulegit_service/internal/server/httpapi"
	"edulegit_service/internal/service"
	"edulegit_service/pkg/db"
	"edulegit_service/pkg/kafka"
	"edulegit_service/pkg/logger"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pg, err := db.NewPostgres(db.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DBName:   cfg.DB.DBName,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = pg.Close() }()

	submissionRepo := repository.NewSubmissionRepository(pg.DB())
	configRepo := repository.NewPluginConfigRepository(pg.DB())

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		log.Fatalf("Failed to create kafka producer: %v", err)
	}
	defer func() { _ = producer.Close() }()

	var eventCache service.Cache
	if cfg.Redis.Address != "" {
		redisConn := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
		eventCache = cache.NewRedisCache(redisConn)
		defer func() { _ = redisConn.Close() }()
	}

	client := edulegit.NewClient(edulegit.Config{
		BaseURL:        cfg.EduLegit.BaseURL,
		APIToken:       cfg.EduLegit.APIToken,
		ConnectTimeout: cfg.EduLegit.ConnectTimeout,
		Timeout:        cfg.EduLegit.Timeout,
	})

	settings := service.NewSettings(configRepo, cfg.GlobalSettings())

	manager := service.NewSyncManager(
		submissionRepo,
		client,
		settings,
		configRepo,
		producer,
		log,
		service.ManagerConfig{
			CallbackURL:   cfg.EduLegit.CallbackURL,
			MoodleRelease: cfg.Host.Release,
			PluginRelease: cfg.Host.PluginRelease,
		},
	)

	callback := service.NewCallbackService(submissionRepo, producer, eventCache, log)

	handler := httpapi.NewHandler(manager, callback, configRepo, settings, log)
	router := httpapi.NewRouter(handler, log)

	server := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("address", cfg.HTTP.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down HTTP server: %v", err)
	}
}
