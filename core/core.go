// Package core has core logic for classifying events, reconstructing visits
// and building the summary document.
package core

import (
	"context"
	"time"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/outwriter"
	"github.com/whiskerlabs/litterlog/schema"
)

// ExecutorFunc defines the function signature for executing different command modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// BuildDocument runs the full pipeline over an activity payload.
func BuildDocument(activity *schema.CachedActivity, cfg *contract.Config, now time.Time) schema.Report {
	summary := ReduceActivity(activity.Events)
	stats := BuildStats(summary, cfg.Location)
	traits := PersonalityTraits(stats)

	robotName := cfg.RobotName
	if activity.RobotName != "" {
		robotName = activity.RobotName
	}
	if robotName == "" {
		robotName = contract.DefaultRobotName
	}
	return BuildReport(stats, traits, cfg.CatName, robotName, cfg.Location, now)
}

// ExecuteReport loads activity, runs the pipeline and emits the summary
// document. It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	activity, err := LoadActivity(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	report := BuildDocument(activity, cfg, time.Now())

	if cfg.SiteDir != "" {
		if err := WriteSiteData(report, cfg.SiteDir); err != nil {
			return err
		}
	}
	return outwriter.WriteReport(report, cfg)
}

// ExecuteEvents loads activity and emits the normalized chronological event
// stream. It serves as the main entry point for the 'events' command.
func ExecuteEvents(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	activity, err := LoadActivity(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	events := NormalizeEvents(Chronological(activity.Events))
	return outwriter.WriteEvents(events, cfg)
}

// ExecuteVisits loads activity and emits the reconstructed visits.
// It serves as the main entry point for the 'visits' command.
func ExecuteVisits(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	activity, err := LoadActivity(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	summary := ReduceActivity(activity.Events)
	return outwriter.WriteVisits(summary.Visits, cfg)
}
