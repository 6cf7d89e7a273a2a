package schema

import "time"

// CacheStatus represents the status of the activity cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunsStatus represents the status of the fetch-run tracking store.
type RunsStatus struct {
	Backend            string    `json:"backend"`
	Connected          bool      `json:"connected"`
	TotalRuns          int       `json:"total_runs"`
	LastRunID          int64     `json:"last_run_id"`
	LastRunTime        time.Time `json:"last_run_time"`
	OldestRunTime      time.Time `json:"oldest_run_time"`
	TotalEventsFetched int       `json:"total_events_fetched"`
}

// FetchRun is one recorded pull from an activity source.
type FetchRun struct {
	RunID       int64
	RobotSerial string
	Source      string
	StartTime   time.Time
	EndTime     *time.Time
	EventCount  int
}
