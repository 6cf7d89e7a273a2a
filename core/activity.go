package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/iocache"
	"github.com/whiskerlabs/litterlog/internal/source"
	"github.com/whiskerlabs/litterlog/schema"
)

// LoadActivity returns the activity payload the pipeline runs on. Online it
// fetches from the configured source, records the fetch run, and refreshes
// the cache; offline it reads the cache alone. A failed online fetch falls
// back to the cache so a flaky vendor API does not break reruns.
func LoadActivity(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.CachedActivity, error) {
	if cfg.Offline {
		activity, err := loadFromCache(cfg, mgr)
		if err != nil {
			return nil, fmt.Errorf("offline mode needs a populated cache: %w", err)
		}
		return activity, nil
	}

	src, err := source.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Begin fetch-run tracking (if configured)
	var runID int64
	runs := mgr.GetRunsStore()
	if runs != nil {
		runID, err = runs.BeginRun(time.Now(), cfg.RobotSerial, src.Name())
		if err != nil {
			contract.LogWarn("Fetch-run tracking initialization failed", err)
			runID = 0
		}
	}

	activity, fetchErr := src.Fetch(ctx, cfg.HistoryLimit)
	if fetchErr != nil {
		// Close the run with a zero event count so it never dangles open.
		endRun(runs, runID, 0)
		cached, cacheErr := loadFromCache(cfg, mgr)
		if cacheErr != nil {
			return nil, fmt.Errorf("fetch from %s source failed: %w", src.Name(), fetchErr)
		}
		contract.LogWarn("Fetch failed, using cached activity", fetchErr)
		return cached, nil
	}

	storeInCache(cfg, mgr, activity)
	endRun(runs, runID, len(activity.Events))

	return activity, nil
}

// endRun finalizes a fetch run if tracking is active.
func endRun(runs contract.RunsStore, runID int64, eventCount int) {
	if runs == nil || runID <= 0 {
		return
	}
	if err := runs.EndRun(runID, time.Now(), eventCount); err != nil {
		contract.LogWarn("Failed to finalize fetch-run tracking", err)
	}
}

// loadFromCache reads and validates the cached payload for the configured robot.
func loadFromCache(cfg *contract.Config, mgr contract.CacheManager) (*schema.CachedActivity, error) {
	store := mgr.GetActivityStore()
	if store == nil {
		return nil, fmt.Errorf("activity caching is disabled")
	}

	key := cfg.CacheKey()
	data, version, _, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("no cached activity for %q", key)
	}
	if version != iocache.CacheVersion {
		return nil, fmt.Errorf("cached activity for %q has version %d, want %d", key, version, iocache.CacheVersion)
	}

	var activity schema.CachedActivity
	if err := json.Unmarshal(data, &activity); err != nil {
		return nil, fmt.Errorf("failed to decode cached activity for %q: %w", key, err)
	}
	return &activity, nil
}

// storeInCache refreshes the cache after a successful fetch. A write failure
// only costs the next offline run, so it warns instead of failing the fetch.
func storeInCache(cfg *contract.Config, mgr contract.CacheManager, activity *schema.CachedActivity) {
	store := mgr.GetActivityStore()
	if store == nil {
		return
	}
	data, err := json.Marshal(activity)
	if err != nil {
		contract.LogWarn("Failed to encode activity for caching", err)
		return
	}
	if err := store.Set(cfg.CacheKey(), data, iocache.CacheVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("Failed to cache activity", err)
	}
}
