package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

// FileSource reads activity records from a JSON dump, either a bare array of
// raw events or a full cached-activity document (as written by the cache
// export). Useful for replaying captured feeds without vendor credentials.
type FileSource struct {
	path      string
	robotName string
}

// NewFileSource returns a source backed by the given JSON file.
func NewFileSource(path, robotName string) *FileSource {
	return &FileSource{path: path, robotName: robotName}
}

// Name identifies the source in logs and fetch-run records.
func (s *FileSource) Name() string { return "file" }

// Fetch loads the dump. The newest-first contract is the caller's to keep:
// dumps are stored exactly as the vendor feed delivered them. limit truncates
// to the newest records when the dump is larger.
func (s *FileSource) Fetch(_ context.Context, limit int) (*schema.CachedActivity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read activity file: %w", err)
	}

	var payload schema.CachedActivity
	if err := json.Unmarshal(data, &payload); err != nil || payload.Events == nil {
		// Fall back to a bare event array.
		var events []schema.RawEvent
		if err := json.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("parse activity file %s: %w", s.path, err)
		}
		payload = schema.CachedActivity{Events: events}
	}

	if payload.RobotName == "" {
		payload.RobotName = s.robotName
	}
	if payload.FetchedAt.IsZero() {
		payload.FetchedAt = time.Now().UTC()
	}
	if limit > 0 && len(payload.Events) > limit {
		payload.Events = payload.Events[:limit]
	}
	return &payload, nil
}
