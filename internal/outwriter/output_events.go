package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/parquet"
	"github.com/whiskerlabs/litterlog/schema"
)

// WriteEvents outputs the normalized event stream, dispatching based on the
// output format configured.
func WriteEvents(events []schema.Event, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, events)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEventCSV(w, events, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteEventRows(w, parquet.ConvertEvents(events))
		}, "Wrote parquet")

	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEventTable(w, events, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeEventCSV writes events as CSV rows with an RFC3339 timestamp column.
func writeEventCSV(w io.Writer, events []schema.Event, fmtFloat func(float64) string) error {
	header := []string{"timestamp", "kind", "weight_lbs"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, e := range events {
			weight := ""
			if e.Kind == schema.WeightRecorded {
				weight = fmtFloat(e.WeightLbs)
			}
			row := []string{e.Timestamp.Format(contract.DateTimeFormat), string(e.Kind), weight}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeEventTable generates and writes the human-readable table.
func writeEventTable(w io.Writer, events []schema.Event, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Time", "Kind", "Weight"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Unrecognized vendor labels pass through as-is, so the kind column
	// can be arbitrarily long.
	labelWidth := GetMaxLabelWidth(cfg, eventTableBaseWidth)

	var data [][]string
	for i, e := range events {
		weight := "-"
		if e.Kind == schema.WeightRecorded {
			weight = fmtFloat(e.WeightLbs) + " lbs"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			formatLocalTime(e.Timestamp, cfg),
			contract.TruncateLabel(string(e.Kind), labelWidth),
			weight,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Total events: %d\n", len(events))
	return nil
}

// formatLocalTime renders a timestamp in the configured timezone.
func formatLocalTime(t time.Time, cfg *contract.Config) string {
	if cfg.Location != nil {
		t = t.In(cfg.Location)
	}
	return t.Format("2006-01-02 15:04:05")
}
