// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

// ActivitySource delivers raw activity records for one robot. Feeds are
// newest-first; reversing them is the pipeline's job, not the source's.
type ActivitySource interface {
	// Name identifies the source in logs and fetch-run records.
	Name() string

	// Fetch retrieves up to limit of the most recent activity records.
	Fetch(ctx context.Context, limit int) (*schema.CachedActivity, error)
}

// CacheManager defines the interface for managing the persistence stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetActivityStore() CacheStore
	GetRunsStore() RunsStore
}

// CacheStore defines the interface for activity cache storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Clear() error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunsStore defines the interface for tracking fetch runs.
type RunsStore interface {
	// BeginRun creates a new fetch-run record and returns its unique ID.
	BeginRun(startTime time.Time, robotSerial, source string) (int64, error)

	// EndRun updates the fetch-run record with completion data.
	EndRun(runID int64, endTime time.Time, eventCount int) error

	// GetStatus returns status information about the runs store.
	GetStatus() (schema.RunsStatus, error)

	// Close closes the underlying connection.
	Close() error
}
