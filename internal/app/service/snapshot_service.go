// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"gym-tracker-service/internal/domain"
)

const (
	snapshotVersionKey = "snapshot:version"
	snapshotKeyPrefix  = "snapshot:v"
)

// SnapshotService serves versioned read snapshots of the domain store.
//
// The version counter lives in the cache and is bumped on every write;
// cached snapshots are keyed by version, so a stale snapshot simply stops
// being addressed. The domain core never sees the token.
type SnapshotService struct {
	store  domain.Store
	cache  domain.Cache // nil disables caching
	ttl    time.Duration
	logger *zap.Logger
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(store domain.Store, cache domain.Cache, ttl time.Duration, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Snapshot returns the current snapshot, from cache when possible.
// Each caller gets its own copy; snapshots are never shared mutable state.
func (s *SnapshotService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if s.cache == nil {
		return s.store.Snapshot(ctx)
	}

	version := s.currentVersion(ctx)
	key := snapshotKeyPrefix + version

	if data, err := s.cache.Get(ctx, key); err == nil && data != nil {
		var snap domain.Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
		// Corrupt cache entry: fall through to the store.
		s.logger.Warn("discarding unreadable cached snapshot", zap.String("key", key))
	}

	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	snap.Version = version

	if data, err := json.Marshal(snap); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn("snapshot cache write failed", zap.Error(err))
		}
	}

	return snap, nil
}

// Invalidate bumps the snapshot version so the next read refetches.
// Called after every store write.
func (s *SnapshotService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if _, err := s.cache.Incr(ctx, snapshotVersionKey); err != nil {
		// The versioned key scheme means a failed bump only delays
		// freshness until the TTL expires.
		s.logger.Warn("snapshot invalidation failed", zap.Error(err))
	}
}

// currentVersion reads the version counter; a missing counter is version 0.
func (s *SnapshotService) currentVersion(ctx context.Context) string {
	data, err := s.cache.Get(ctx, snapshotVersionKey)
	if err != nil || data == nil {
		return "0"
	}
	return string(data)
}
