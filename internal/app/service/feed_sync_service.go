package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gym-tracker-service/internal/domain"
)

// FeedSyncService imports new-set schedules from the configured feeds.
type FeedSyncService struct {
	store     domain.Store
	snapshots *SnapshotService
	feeds     []domain.ScheduleFeed
	logger    *zap.Logger
}

// NewFeedSyncService creates a new FeedSyncService.
func NewFeedSyncService(store domain.Store, snapshots *SnapshotService, feeds []domain.ScheduleFeed, logger *zap.Logger) *FeedSyncService {
	return &FeedSyncService{
		store:     store,
		snapshots: snapshots,
		feeds:     feeds,
		logger:    logger,
	}
}

// SyncResult holds the outcome of one feed's sync.
type SyncResult struct {
	Feed     string
	Fetched  int
	Added    int
	Duration time.Duration
	Error    error
}

// SyncAll fetches every feed concurrently, then appends the schedules not
// yet stored (by gym+start+end identity). Partial failures are allowed;
// the snapshot is invalidated once if anything was added.
func (s *FeedSyncService) SyncAll(ctx context.Context) []SyncResult {
	results := make([]SyncResult, len(s.feeds))
	fetched := make([][]domain.Schedule, len(s.feeds))

	s.logger.Info("starting feed sync", zap.Int("feed_count", len(s.feeds)))

	var wg sync.WaitGroup
	for i, f := range s.feeds {
		wg.Add(1)
		go func(idx int, feed domain.ScheduleFeed) {
			defer wg.Done()

			start := time.Now()
			schedules, err := feed.Fetch(ctx)
			results[idx] = SyncResult{
				Feed:     feed.Name(),
				Fetched:  len(schedules),
				Duration: time.Since(start),
				Error:    err,
			}
			fetched[idx] = schedules
		}(i, f)
	}
	wg.Wait()

	known, err := s.knownScheduleKeys(ctx)
	if err != nil {
		s.logger.Error("loading existing schedules failed", zap.Error(err))
		for i := range results {
			if results[i].Error == nil {
				results[i].Error = err
			}
		}
		return results
	}

	totalAdded := 0
	for i := range s.feeds {
		if results[i].Error != nil {
			continue
		}

		fresh := make([]domain.Schedule, 0, len(fetched[i]))
		for _, schedule := range fetched[i] {
			key := schedule.Key()
			if known[key] {
				continue
			}
			known[key] = true
			fresh = append(fresh, schedule)
		}

		if len(fresh) == 0 {
			continue
		}

		if err := s.store.AppendSchedules(ctx, fresh); err != nil {
			results[i].Error = err
			s.logger.Error("appending feed schedules failed",
				zap.String("feed", results[i].Feed),
				zap.Error(err),
			)
			continue
		}

		results[i].Added = len(fresh)
		totalAdded += len(fresh)
	}

	if totalAdded > 0 {
		s.snapshots.Invalidate(ctx)
	}

	s.logger.Info("feed sync completed",
		zap.Int("added", totalAdded),
	)

	return results
}

// SyncFeed syncs a single feed by name. Returns nil when unknown.
func (s *FeedSyncService) SyncFeed(ctx context.Context, name string) (*SyncResult, error) {
	for i, f := range s.feeds {
		if f.Name() != name {
			continue
		}

		single := &FeedSyncService{
			store:     s.store,
			snapshots: s.snapshots,
			feeds:     s.feeds[i : i+1],
			logger:    s.logger,
		}
		results := single.SyncAll(ctx)
		return &results[0], results[0].Error
	}

	return nil, nil // Feed not found
}

// FeedNames returns the names of all configured feeds.
func (s *FeedSyncService) FeedNames() []string {
	names := make([]string, len(s.feeds))
	for i, f := range s.feeds {
		names[i] = f.Name()
	}
	return names
}

// knownScheduleKeys builds the identity set of stored schedules.
func (s *FeedSyncService) knownScheduleKeys(ctx context.Context) (map[string]bool, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(snap.Schedules))
	for i := range snap.Schedules {
		known[snap.Schedules[i].Key()] = true
	}

	return known, nil
}
