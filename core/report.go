package core

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

// ouncesPerVisit is the fixed linear estimate behind the output block.
const ouncesPerVisit = 2.5

// BuildReport shapes stats and traits into the document the dashboard
// consumes. It is total: sparse or empty stats degrade to the documented
// defaults instead of failing. now is passed in so callers (and tests)
// control the generated_at stamp.
func BuildReport(stats *schema.Stats, traits []string, catName, robotName string, loc *time.Location, now time.Time) schema.Report {
	report := schema.Report{
		CatName:           catName,
		RobotName:         robotName,
		GeneratedAt:       now.In(loc).Format(time.RFC3339),
		PersonalityTraits: traits,
		TotalVisits:       stats.TotalVisits(),
		DateRange:         buildDateRange(stats, loc),
		ChartData:         buildChartData(stats),
		Timing:            buildTiming(stats),
		Weight:            buildWeightBlock(stats),
		PeakHour:          buildPeakHour(stats),
		BusiestDate:       buildBusiestDate(stats),
		RobotStats: schema.RobotStats{
			CleanCycles:   stats.CleanCyclesCompleted,
			Interruptions: stats.SensorInterruptions,
		},
	}
	if report.PersonalityTraits == nil {
		report.PersonalityTraits = []string{}
	}

	days := stats.DaysCovered
	if days == 0 {
		days = 1
	}
	report.VisitsPerDay = roundTo(float64(stats.TotalVisits())/days, 1)

	oz := float64(stats.TotalVisits()) * ouncesPerVisit
	report.Output = schema.OutputBlock{
		Oz:  math.Round(oz),
		Lbs: roundTo(oz/16, 1),
	}

	return report
}

func buildDateRange(stats *schema.Stats, loc *time.Location) schema.DateRange {
	if !stats.HasDateRange {
		return schema.DateRange{}
	}
	start := stats.DateRangeStart.In(loc).Format("Jan 02")
	end := stats.DateRangeEnd.In(loc).Format("Jan 02, 2006")
	return schema.DateRange{
		Start:   &start,
		End:     &end,
		Display: start + " - " + end,
	}
}

// buildChartData emits one point per dated bucket, ordered by date
// ascending. The "2006-01-02" keys sort lexicographically in date order.
func buildChartData(stats *schema.Stats) []schema.ChartPoint {
	keys := make([]string, 0, len(stats.VisitsByDate))
	for key := range stats.VisitsByDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	chart := []schema.ChartPoint{}
	for _, key := range keys {
		bucket := stats.VisitsByDate[key]
		chart = append(chart, schema.ChartPoint{
			Weekday: bucket.WeekdayName,
			Display: bucket.Display,
			Count:   bucket.Count,
		})
	}
	return chart
}

func buildTiming(stats *schema.Stats) schema.Timing {
	if !stats.HasGaps {
		return schema.Timing{LongestGap: "N/A", ShortestGap: "N/A"}
	}
	return schema.Timing{
		LongestGap:  FormatDuration(stats.LongestGap),
		ShortestGap: FormatDuration(stats.ShortestGap),
	}
}

func buildWeightBlock(stats *schema.Stats) schema.WeightBlock {
	block := schema.WeightBlock{Trend: schema.TrendStable}
	if stats.WeightTrend != "" {
		block.Trend = stats.WeightTrend
		block.Change = roundTo(stats.WeightChange, 2)
	}
	if len(stats.Weights) == 0 {
		return block
	}
	minW, maxW := stats.Weights[0], stats.Weights[0]
	for _, w := range stats.Weights[1:] {
		if w < minW {
			minW = w
		}
		if w > maxW {
			maxW = w
		}
	}
	block.Average = roundTo(mean(stats.Weights), 1)
	block.Min = roundTo(minW, 1)
	block.Max = roundTo(maxW, 1)
	return block
}

// buildPeakHour picks the busiest local hour; on equal counts the earliest
// hour wins so the result is stable across runs.
func buildPeakHour(stats *schema.Stats) schema.PeakHour {
	peak := 0
	for h, count := range stats.VisitsByHour {
		if count > stats.VisitsByHour[peak] {
			peak = h
		}
	}
	return schema.PeakHour{
		Hour:    peak,
		Count:   stats.VisitsByHour[peak],
		Display: FormatHour(peak),
	}
}

// buildBusiestDate picks the dated bucket with the most visits, or nil when
// no visits landed on any date. On equal counts the earliest date wins.
func buildBusiestDate(stats *schema.Stats) *schema.BusiestDate {
	if len(stats.VisitsByDate) == 0 {
		return nil
	}
	keys := make([]string, 0, len(stats.VisitsByDate))
	for key := range stats.VisitsByDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bestKey := keys[0]
	for _, key := range keys[1:] {
		if stats.VisitsByDate[key].Count > stats.VisitsByDate[bestKey].Count {
			bestKey = key
		}
	}
	bucket := stats.VisitsByDate[bestKey]
	return &schema.BusiestDate{
		DayName:   schema.DayNames[bucket.Weekday],
		Display:   bucket.Display,
		Count:     bucket.Count,
		IsWeekend: bucket.Weekday >= 5,
	}
}

// FormatDuration renders a duration as "3h 20m", or just "45m" under an hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatHour renders an hour of day on a 12-hour clock ("12:00 AM" for 0).
func FormatHour(hour int) string {
	display := hour % 12
	if display == 0 {
		display = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
