package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/schema"
)

// WriteReport outputs the summary document. JSON is the document's native
// form; text renders a summary card. CSV and parquet do not apply to the
// nested document shape.
func WriteReport(report schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCard(w, report, cfg)
		}, "Wrote report")

	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")

	default:
		return fmt.Errorf("unsupported output mode for report: %s (use text or json)", cfg.Output)
	}
}

// writeReportCard renders the human-readable summary card.
func writeReportCard(w io.Writer, report schema.Report, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	header := fmt.Sprintf("🐱 Litter-Box Wrapped: %s (%s)", report.CatName, report.RobotName)
	if cfg.UseColors {
		header = contract.HeaderColor.Sprint(header)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "Range: %s\n", report.DateRange.Display)

	traits := "none yet"
	if len(report.PersonalityTraits) > 0 {
		labels := make([]string, len(report.PersonalityTraits))
		for i, trait := range report.PersonalityTraits {
			if cfg.UseColors {
				labels[i] = contract.TraitColor.Sprint(trait)
			} else {
				labels[i] = trait
			}
		}
		traits = strings.Join(labels, ", ")
	}
	fmt.Fprintf(w, "Personality: %s\n\n", traits)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	busiest := "N/A"
	if report.BusiestDate != nil {
		busiest = fmt.Sprintf("%s %s (%d visits)", report.BusiestDate.DayName, report.BusiestDate.Display, report.BusiestDate.Count)
	}

	data := [][]string{
		{"Total Visits", strconv.Itoa(report.TotalVisits)},
		{"Visits / Day", fmtFloat(report.VisitsPerDay)},
		{"Longest Gap", report.Timing.LongestGap},
		{"Shortest Gap", report.Timing.ShortestGap},
		{"Peak Hour", fmt.Sprintf("%s (%d visits)", report.PeakHour.Display, report.PeakHour.Count)},
		{"Busiest Date", busiest},
		{"Weight", formatWeightLine(report.Weight, cfg, fmtFloat)},
		{"Clean Cycles", strconv.Itoa(report.RobotStats.CleanCycles)},
		{"Interruptions", strconv.Itoa(report.RobotStats.Interruptions)},
		{"Est. Output", fmt.Sprintf("%.0f oz (%s lbs)", report.Output.Oz, fmtFloat(report.Output.Lbs))},
	}
	labelWidth := GetMaxLabelWidth(cfg, reportTableBaseWidth)
	for _, row := range data {
		// Colored cells keep their full width so escape sequences stay intact.
		if strings.ContainsRune(row[1], '\x1b') {
			continue
		}
		row[1] = contract.TruncateLabel(row[1], labelWidth)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	return writeChartTable(w, report.ChartData)
}

// formatWeightLine condenses the weight block into one row.
func formatWeightLine(weight schema.WeightBlock, cfg *contract.Config, fmtFloat func(float64) string) string {
	trend := contract.GetTrendLabel(weight.Trend, cfg.UseColors)
	if weight.Average == 0 {
		return fmt.Sprintf("no samples (%s)", trend)
	}
	return fmt.Sprintf("avg %s / min %s / max %s lbs, %s %+.2f",
		fmtFloat(weight.Average), fmtFloat(weight.Min), fmtFloat(weight.Max), trend, weight.Change)
}

// writeChartTable renders the visits-per-date chart data.
func writeChartTable(w io.Writer, chart []schema.ChartPoint) error {
	if len(chart) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Weekday", "Visits"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, point := range chart {
		data = append(data, []string{point.Display, point.Weekday, strconv.Itoa(point.Count)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
