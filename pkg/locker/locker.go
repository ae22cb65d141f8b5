// Package locker provides distributed locking for coordinating background
// work across multiple service instances.
package locker

import (
	"context"
	"time"
)

// DistributedLocker provides distributed lock capabilities across instances.
// Implementations must be safe for concurrent use.
type DistributedLocker interface {
	// Acquire attempts to acquire a distributed lock with the given key.
	// Returns true if the lock was acquired, false if another instance holds it.
	// The lock automatically expires after ttl if not released. Choose ttl by
	// purpose: operation timeout for mutual exclusion, cooldown period for
	// rate limiting.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release releases the lock identified by key. Safe to call when this
	// instance does not own the lock (no-op).
	Release(ctx context.Context, key string) error
}
