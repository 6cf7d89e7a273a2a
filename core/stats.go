package core

import (
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

const secondsPerDay = 86400

// BuildStats computes the aggregate statistics for a reduced activity
// summary. All calendar and hour-of-day bucketing happens in loc; duration
// arithmetic stays on the underlying instants.
func BuildStats(summary schema.ActivitySummary, loc *time.Location) *schema.Stats {
	stats := &schema.Stats{
		Visits:               summary.Visits,
		Weights:              summary.Weights,
		CleanCyclesCompleted: summary.CleanCyclesCompleted,
		SensorInterruptions:  summary.SensorInterruptions,
		VisitsByDate:         make(map[string]*schema.DateBucket),
	}

	if summary.HasEvents {
		stats.DateRangeStart = summary.FirstEventTime
		stats.DateRangeEnd = summary.LastEventTime
		stats.HasDateRange = true
		stats.DaysCovered = summary.LastEventTime.Sub(summary.FirstEventTime).Seconds() / secondsPerDay
	}

	for _, visit := range summary.Visits {
		local := visit.Timestamp.In(loc)
		stats.VisitsByHour[local.Hour()]++

		key := local.Format("2006-01-02")
		bucket, ok := stats.VisitsByDate[key]
		if !ok {
			bucket = &schema.DateBucket{
				Weekday:     mondayWeekday(local.Weekday()),
				WeekdayName: local.Format("Mon"),
				Display:     local.Format("01/02"),
			}
			stats.VisitsByDate[key] = bucket
		}
		bucket.Count++
	}

	for i := 1; i < len(summary.Visits); i++ {
		gap := summary.Visits[i].Timestamp.Sub(summary.Visits[i-1].Timestamp)
		stats.Gaps = append(stats.Gaps, gap)
	}
	if len(stats.Gaps) > 0 {
		stats.HasGaps = true
		stats.LongestGap = stats.Gaps[0]
		stats.ShortestGap = stats.Gaps[0]
		for _, gap := range stats.Gaps[1:] {
			if gap > stats.LongestGap {
				stats.LongestGap = gap
			}
			if gap < stats.ShortestGap {
				stats.ShortestGap = gap
			}
		}
	}

	stats.WeightTrend, stats.WeightChange = weightTrend(summary.Weights)

	return stats
}

// weightTrend compares the first and second half of the samples in recording
// order. It needs at least four samples; below that there is no trend and
// no change value. The 0.1 lbs thresholds are strict, so a change of exactly
// 0.1 still reads as stable.
func weightTrend(weights []float64) (string, float64) {
	if len(weights) < 4 {
		return "", 0
	}
	mid := len(weights) / 2
	firstAvg := mean(weights[:mid])
	secondAvg := mean(weights[mid:])
	change := secondAvg - firstAvg
	switch {
	case change > 0.1:
		return schema.TrendGaining, change
	case change < -0.1:
		return schema.TrendLosing, change
	default:
		return schema.TrendStable, change
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// mondayWeekday converts Go's Sunday-based weekday to the Monday-based
// index used throughout the stats (0=Mon .. 6=Sun).
func mondayWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
