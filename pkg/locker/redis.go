package locker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisLocker implements DistributedLocker on top of Redsync, which
// implements the Redlock algorithm for distributed mutual exclusion.
type RedisLocker struct {
	rs      *redsync.Redsync
	prefix  string
	logger  *zap.Logger
	mutexes map[string]*redsync.Mutex
	mu      sync.Mutex
}

// NewRedisLocker creates a Redis-based distributed locker. All lock keys
// are namespaced under prefix so several deployments can share one Redis.
func NewRedisLocker(client *redis.Client, prefix string, logger *zap.Logger) *RedisLocker {
	pool := goredis.NewPool(client)

	return &RedisLocker{
		rs:      redsync.New(pool),
		prefix:  prefix,
		logger:  logger,
		mutexes: make(map[string]*redsync.Mutex),
	}
}

func (r *RedisLocker) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Acquire attempts to acquire a distributed lock using the Redlock algorithm.
// Returns true if the lock was acquired, false if another instance holds it.
// The lock expires after ttl if not released, so a crashed holder cannot
// deadlock the system.
func (r *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	name := r.key(key)
	mutex := r.rs.NewMutex(
		name,
		redsync.WithExpiry(ttl),
		redsync.WithTries(1), // Don't retry, return immediately
	)

	if err := mutex.LockContext(ctx); err != nil {
		// Redsync reports contention either as ErrFailed or as a wrapped
		// "lock already taken, locked nodes: [X]" error.
		if err == redsync.ErrFailed || strings.Contains(err.Error(), "lock already taken") {
			r.logger.Debug("lock already held by another instance",
				zap.String("key", name),
			)
			return false, nil
		}
		// Real errors (Redis connection issues, context cancellation, etc.)
		return false, fmt.Errorf("acquire lock %s: %w", name, err)
	}

	// Store mutex for later release
	r.mu.Lock()
	r.mutexes[name] = mutex
	r.mu.Unlock()

	r.logger.Debug("lock acquired",
		zap.String("key", name),
		zap.Duration("ttl", ttl),
	)

	return true, nil
}

// Release releases the lock if and only if this instance owns it. Redsync
// verifies the holder token internally, so releasing a lock owned by another
// instance is a safe no-op.
func (r *RedisLocker) Release(ctx context.Context, key string) error {
	name := r.key(key)

	r.mu.Lock()
	mutex, exists := r.mutexes[name]
	if exists {
		delete(r.mutexes, name)
	}
	r.mu.Unlock()

	if !exists {
		r.logger.Debug("no mutex found for key, lock not owned by this instance",
			zap.String("key", name),
		)
		return nil
	}

	ok, err := mutex.UnlockContext(ctx)
	if err != nil {
		return fmt.Errorf("release lock %s: %w", name, err)
	}

	if ok {
		r.logger.Debug("lock released",
			zap.String("key", name),
		)
	} else {
		r.logger.Debug("lock not owned by this instance or already expired",
			zap.String("key", name),
		)
	}

	return nil
}
