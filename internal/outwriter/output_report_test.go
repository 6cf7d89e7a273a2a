package outwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/schema"
)

func testReport() schema.Report {
	start := "2025-06-01T08:00:00-07:00"
	end := "2025-06-07T21:30:00-07:00"
	return schema.Report{
		CatName:           "Whiskers",
		RobotName:         "Dusty",
		GeneratedAt:       "2025-06-08T10:00:00-07:00",
		DateRange:         schema.DateRange{Start: &start, End: &end, Display: "Jun 01 - Jun 07, 2025"},
		PersonalityTraits: []string{schema.TraitEarlyBird, schema.TraitCreatureOfHabit},
		TotalVisits:       21,
		VisitsPerDay:      3.0,
		ChartData: []schema.ChartPoint{
			{Weekday: "Sunday", Display: "06/01", Count: 4},
			{Weekday: "Monday", Display: "06/02", Count: 3},
		},
		Timing:      schema.Timing{LongestGap: "9h 15m", ShortestGap: "45m"},
		Weight:      schema.WeightBlock{Average: 11.4, Min: 11.1, Max: 11.8, Trend: schema.TrendStable, Change: 0},
		PeakHour:    schema.PeakHour{Hour: 8, Count: 6, Display: "8:00 AM"},
		BusiestDate: &schema.BusiestDate{DayName: "Sunday", Display: "06/01", Count: 4, IsWeekend: true},
		RobotStats:  schema.RobotStats{CleanCycles: 20, Interruptions: 1},
		Output:      schema.OutputBlock{Oz: 53, Lbs: 3.3},
	}
}

func TestWriteReportCard(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 100, UseColors: false}

	var buf bytes.Buffer
	err := writeReportCard(&buf, testReport(), cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Whiskers")
	assert.Contains(t, out, "Jun 01 - Jun 07, 2025")
	assert.Contains(t, out, "Early Bird, Creature of Habit")
	assert.Contains(t, out, "9h 15m")
	assert.Contains(t, out, "8:00 AM (6 visits)")
	assert.Contains(t, out, "Sunday 06/01 (4 visits)")
	assert.Contains(t, out, "53 oz")
}

func TestWriteReportCardDefaults(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 100, UseColors: false}

	report := schema.Report{
		CatName:   "Kitty",
		RobotName: "Litter-Robot",
		DateRange: schema.DateRange{Display: "No data"},
		Timing:    schema.Timing{LongestGap: "N/A", ShortestGap: "N/A"},
		Weight:    schema.WeightBlock{Trend: schema.TrendStable},
		PeakHour:  schema.PeakHour{Hour: 0, Count: 0, Display: "12:00 AM"},
	}

	var buf bytes.Buffer
	err := writeReportCard(&buf, report, cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "N/A", "Empty logs show N/A for the busiest date and gaps")
	assert.Contains(t, out, "no samples")
	assert.Contains(t, out, "none yet")
}

func TestWriteReportRejectsTabularModes(t *testing.T) {
	for _, mode := range []schema.OutputMode{schema.CSVOut, schema.ParquetOut} {
		cfg := &contract.Config{Precision: 1, Output: mode}
		err := WriteReport(testReport(), cfg)
		assert.Error(t, err, "Report has no flat row shape for %s", mode)
	}
}

func TestWriteReportCardWidthCapsValues(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Width: 40, UseColors: false}

	var buf bytes.Buffer
	err := writeReportCard(&buf, testReport(), cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "avg 11.4 / min ...", "Narrow terminals shorten the weight line")
	assert.NotContains(t, out, "max 11.8")
}

func TestGetTableWidth(t *testing.T) {
	cfg := &contract.Config{Width: 120}
	assert.Equal(t, 120, GetTableWidth(cfg), "Explicit width wins over detection")
}

func TestGetMaxLabelWidth(t *testing.T) {
	assert.Equal(t, 8, GetMaxLabelWidth(&contract.Config{Width: 30}, eventTableBaseWidth), "Floor keeps labels readable")
	assert.Equal(t, 35, GetMaxLabelWidth(&contract.Config{Width: 80}, eventTableBaseWidth))
	assert.Equal(t, 60, GetMaxLabelWidth(&contract.Config{Width: 200}, eventTableBaseWidth), "Cap keeps tables compact")
}
