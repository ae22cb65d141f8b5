// Package main is the entry point for the gym-tracker-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/config"
	"gym-tracker-service/internal/domain"
	"gym-tracker-service/internal/infra/feed"
	"gym-tracker-service/internal/infra/postgres"
	"gym-tracker-service/internal/infra/postgres/migrations"
	rediscache "gym-tracker-service/internal/infra/redis"
	"gym-tracker-service/internal/job"
	"gym-tracker-service/internal/logger"
	"gym-tracker-service/internal/transport/httpserver"
	"gym-tracker-service/internal/validator"
	"gym-tracker-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting gym-tracker-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	// Run migrations
	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	// Create repository
	repo := postgres.NewRepository(db)

	// Create feed clients, one per configured gym chain
	feeds := make([]domain.ScheduleFeed, 0, len(cfg.Feeds.Sources))
	for _, src := range cfg.Feeds.Sources {
		feeds = append(feeds, feed.New(
			feed.ClientConfig{
				Name:    src.Name,
				BaseURL: src.BaseURL,
				Timeout: cfg.Feeds.Timeout,
				Retry: feed.RetryConfig{
					MaxAttempts: cfg.Feeds.Retry.MaxAttempts,
					WaitTime:    cfg.Feeds.Retry.WaitTime,
					MaxWaitTime: cfg.Feeds.Retry.MaxWaitTime,
				},
				CB: feed.CBConfig{
					MaxRequests:  cfg.Feeds.CB.MaxRequests,
					Interval:     cfg.Feeds.CB.Interval,
					Timeout:      cfg.Feeds.CB.Timeout,
					FailureRatio: cfg.Feeds.CB.FailureRatio,
				},
			},
			log.Logger,
		))
	}
	log.Info("feed clients configured", zap.Int("count", len(feeds)))

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Ping Redis to verify connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	log.Info("connected to Redis",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)

	// Create cache implementation (optional, based on config)
	var cache domain.Cache
	if cfg.Cache.Enabled {
		cache = rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		log.Info("snapshot cache enabled",
			zap.Duration("snapshot_ttl", cfg.Cache.SnapshotTTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("snapshot cache disabled")
	}

	// Create services
	snapshotSvc := service.NewSnapshotService(repo, cache, cfg.Cache.SnapshotTTL, log.Logger)
	trackerSvc := service.NewTrackerService(repo, snapshotSvc, log.Logger)
	recommendSvc := service.NewRecommendService(snapshotSvc, cfg.Recommend.TopN, domain.MajorArea(cfg.Recommend.DefaultArea), log.Logger)
	syncSvc := service.NewFeedSyncService(repo, snapshotSvc, feeds, log.Logger)

	// Seed the user roster from config
	users := make([]domain.User, len(cfg.Users))
	for i, u := range cfg.Users {
		users[i] = domain.User{Name: u.Name, Color: u.Color, Icon: u.Icon}
	}
	if err := trackerSvc.EnsureUsers(ctx, users); err != nil {
		log.Fatal("failed to seed users", zap.Error(err))
	}
	log.Info("user roster seeded", zap.Int("count", len(users)))

	// Create distributed locker
	distLocker := locker.NewRedisLocker(redisClient, cfg.Cache.KeyPrefix, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			Debug:     cfg.App.Debug,
		},
		recommendSvc,
		trackerSvc,
		syncSvc,
		db,
		v,
		log.Logger,
	)

	// Start feed scheduler with distributed locking
	scheduler := job.NewFeedScheduler(
		syncSvc,
		job.FeedConfig{
			Interval:  cfg.Sync.Interval,
			Timeout:   cfg.Sync.Timeout,
			OnStartup: cfg.Sync.OnStartup,
		},
		log.Logger,
		distLocker,
	)
	scheduler.Start(cfg.Sync.OnStartup)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		// Stop scheduler
		scheduler.Stop()

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
