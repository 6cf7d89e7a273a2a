package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiskerlabs/litterlog/schema"
)

// visitAt builds a Visit at a fixed instant.
func visitAt(ts time.Time) schema.Visit {
	return schema.Visit{Timestamp: ts}
}

// TestBuildStatsBuckets tests hourly and daily bucketing in the local zone.
func TestBuildStatsBuckets(t *testing.T) {
	// Monday June 2, 2025.
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	summary := schema.ActivitySummary{
		Visits: []schema.Visit{
			visitAt(day.Add(7 * time.Hour)),
			visitAt(day.Add(7*time.Hour + 30*time.Minute)),
			visitAt(day.Add(22 * time.Hour)),
			visitAt(day.Add(24 * time.Hour)), // Tuesday midnight
		},
		FirstEventTime: day,
		LastEventTime:  day.Add(24 * time.Hour),
		HasEvents:      true,
	}

	stats := BuildStats(summary, time.UTC)

	assert.Equal(t, 4, stats.TotalVisits())
	assert.Equal(t, 2, stats.VisitsByHour[7])
	assert.Equal(t, 1, stats.VisitsByHour[22])
	assert.Equal(t, 1, stats.VisitsByHour[0])

	total := 0
	for _, count := range stats.VisitsByHour {
		total += count
	}
	assert.Equal(t, stats.TotalVisits(), total)

	require.Len(t, stats.VisitsByDate, 2)
	monday := stats.VisitsByDate["2025-06-02"]
	require.NotNil(t, monday)
	assert.Equal(t, 3, monday.Count)
	assert.Equal(t, 0, monday.Weekday)
	assert.Equal(t, "Mon", monday.WeekdayName)
	assert.Equal(t, "06/02", monday.Display)

	tuesday := stats.VisitsByDate["2025-06-03"]
	require.NotNil(t, tuesday)
	assert.Equal(t, 1, tuesday.Count)
	assert.Equal(t, 1, tuesday.Weekday)

	assert.True(t, stats.HasDateRange)
	assert.InDelta(t, 1.0, stats.DaysCovered, 1e-9)
}

// TestBuildStatsLocalZoneBucketing tests that a UTC instant lands in the
// configured zone's calendar date and hour.
func TestBuildStatsLocalZoneBucketing(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 03:00 UTC on June 2 is 20:00 PDT on June 1.
	ts := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)
	summary := schema.ActivitySummary{
		Visits:         []schema.Visit{visitAt(ts)},
		FirstEventTime: ts,
		LastEventTime:  ts,
		HasEvents:      true,
	}

	stats := BuildStats(summary, loc)
	assert.Equal(t, 1, stats.VisitsByHour[20])
	assert.Contains(t, stats.VisitsByDate, "2025-06-01")
	assert.Equal(t, 6, stats.VisitsByDate["2025-06-01"].Weekday) // Sunday
}

// TestBuildStatsGaps tests gap extraction between consecutive visits.
func TestBuildStatsGaps(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	summary := schema.ActivitySummary{
		Visits: []schema.Visit{
			visitAt(t0),
			visitAt(t0.Add(2 * time.Hour)),
			visitAt(t0.Add(11 * time.Hour)),
		},
		HasEvents:      true,
		FirstEventTime: t0,
		LastEventTime:  t0.Add(11 * time.Hour),
	}

	stats := BuildStats(summary, time.UTC)
	require.True(t, stats.HasGaps)
	require.Len(t, stats.Gaps, 2)
	assert.Equal(t, 9*time.Hour, stats.LongestGap)
	assert.Equal(t, 2*time.Hour, stats.ShortestGap)
}

// TestBuildStatsNoGaps tests that a single visit yields no gap data.
func TestBuildStatsNoGaps(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	summary := schema.ActivitySummary{
		Visits:         []schema.Visit{visitAt(t0)},
		HasEvents:      true,
		FirstEventTime: t0,
		LastEventTime:  t0,
	}

	stats := BuildStats(summary, time.UTC)
	assert.False(t, stats.HasGaps)
	assert.Empty(t, stats.Gaps)
}

// TestBuildStatsEmpty tests the all-default stats for an empty summary.
func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(schema.ActivitySummary{}, time.UTC)
	assert.Zero(t, stats.TotalVisits())
	assert.False(t, stats.HasDateRange)
	assert.Zero(t, stats.DaysCovered)
	assert.Empty(t, stats.VisitsByDate)
	assert.Empty(t, stats.WeightTrend)
}

// TestWeightTrend tests the first-half/second-half comparison.
func TestWeightTrend(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		trend   string
		change  float64
	}{
		{"too few samples", []float64{10, 10, 10}, "", 0},
		{"boundary change is stable", []float64{10.0, 10.0, 10.1, 10.1}, schema.TrendStable, 0.1},
		{"gaining", []float64{10.0, 10.0, 10.5, 10.5}, schema.TrendGaining, 0.5},
		{"losing", []float64{10.5, 10.5, 10.0, 10.0}, schema.TrendLosing, -0.5},
		{"odd count splits at floor midpoint", []float64{10.0, 10.0, 11.0, 11.0, 11.0}, schema.TrendGaining, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trend, change := weightTrend(tc.weights)
			assert.Equal(t, tc.trend, trend)
			assert.InDelta(t, tc.change, change, 1e-9)
		})
	}
}

// TestMondayWeekday tests the Sunday-based to Monday-based conversion.
func TestMondayWeekday(t *testing.T) {
	assert.Equal(t, 0, mondayWeekday(time.Monday))
	assert.Equal(t, 4, mondayWeekday(time.Friday))
	assert.Equal(t, 5, mondayWeekday(time.Saturday))
	assert.Equal(t, 6, mondayWeekday(time.Sunday))
}
