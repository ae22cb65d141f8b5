package domain

import (
	"context"
	"errors"
	"time"
)

// ErrMissingLogID is returned when a delete is requested for an activity
// log without an id. Programmer error, not domain data.
var ErrMissingLogID = errors.New("activity log id is required for deletion")

// Snapshot is an immutable read of all record sets. Version is the store's
// invalidation token; the core never interprets it.
type Snapshot struct {
	Version   string        `json:"version"`
	Gyms      []Gym         `json:"gyms"`
	Areas     []Area        `json:"areas"`
	Schedules []Schedule    `json:"schedules"`
	Logs      []ActivityLog `json:"logs"`
	Users     []User        `json:"users"`
}

// Store defines the persistence interface for the tracker.
// Implementations: internal/infra/postgres/repository.go
type Store interface {
	// Snapshot reads all record sets in one pass.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// AppendLogs inserts activity log rows; ids are assigned by the store.
	AppendLogs(ctx context.Context, logs []ActivityLog) error

	// DeleteLog removes a single activity log by id.
	DeleteLog(ctx context.Context, id string) error

	// AppendGym inserts a gym.
	AppendGym(ctx context.Context, gym Gym) error

	// AppendSchedules inserts new-set schedules.
	AppendSchedules(ctx context.Context, schedules []Schedule) error

	// EnsureUsers inserts any of the given users that don't exist yet.
	EnsureUsers(ctx context.Context, users []User) error
}

// Cache defines the interface for snapshot caching and version counting.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Incr atomically increments the counter at key and returns the
	// new value.
	Incr(ctx context.Context, key string) (int64, error)
}

// ScheduleFeed defines the interface for external new-set announcement
// feeds. Implementations: internal/infra/feed/source.go
type ScheduleFeed interface {
	// Name returns the unique identifier for this feed.
	Name() string

	// Fetch retrieves the feed's published new-set schedules.
	Fetch(ctx context.Context) ([]Schedule, error)

	// HealthCheck verifies the feed is accessible.
	HealthCheck(ctx context.Context) error
}
