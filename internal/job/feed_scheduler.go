// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/pkg/locker"
)

// FeedScheduler runs periodic new-set feed synchronization with distributed
// locking to ensure only one instance imports schedules at a time.
type FeedScheduler struct {
	syncService *service.FeedSyncService
	interval    time.Duration
	timeout     time.Duration
	logger      *zap.Logger
	locker      locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// FeedConfig holds feed scheduler configuration.
type FeedConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewFeedScheduler creates a new FeedScheduler with distributed locking support.
func NewFeedScheduler(
	syncSvc *service.FeedSyncService,
	cfg FeedConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *FeedScheduler {
	return &FeedScheduler{
		syncService: syncSvc,
		interval:    cfg.Interval,
		timeout:     cfg.Timeout,
		logger:      logger,
		locker:      locker,
	}
}

// Start begins the background sync job.
func (s *FeedScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting feed scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *FeedScheduler) Stop() {
	s.logger.Info("stopping feed scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("feed scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *FeedScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	// Run immediately if configured
	if runOnStartup {
		s.executeSync()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeSync()
		}
	}
}

// executeSync performs a sync operation with distributed locking and timeout.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: Lock held for full interval to prevent duplicate imports
//   - Failure: Lock released immediately to allow retry by another instance
func (s *FeedScheduler) executeSync() {
	const lockKey = "feed:scheduler:lock"

	// Try to acquire lock with interval-based TTL (cooldown model)
	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is running feed sync, skipping execution")

		return
	}

	// Lock acquired - run sync with timeout
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	results := s.syncService.SyncAll(ctx)

	// Analyze results
	totalAdded := 0
	totalErrors := 0
	hasError := false

	for _, r := range results {
		if r.Error != nil {
			totalErrors++
			hasError = true
			s.logger.Warn("feed sync failed",
				zap.String("feed", r.Feed),
				zap.Error(r.Error),
			)
		} else {
			totalAdded += r.Added
		}
	}

	// Handle success vs error scenarios
	if hasError {
		// Release lock immediately on error (allow immediate retry)
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after sync error", zap.Error(err))
		}
		s.logger.Info("feed sync completed with errors, lock released for retry",
			zap.Int("total_added", totalAdded),
			zap.Int("feeds_failed", totalErrors),
		)
	} else {
		// Lock will expire naturally after interval (cooldown period)
		s.logger.Info("feed sync completed successfully, lock held for cooldown",
			zap.Int("total_added", totalAdded),
			zap.Duration("cooldown", s.interval),
		)
	}
}
