package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/parquet"
	"github.com/whiskerlabs/litterlog/schema"
)

// WriteVisits outputs the reconstructed visits, dispatching based on the
// output format configured.
func WriteVisits(visits []schema.Visit, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, visits)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVisitCSV(w, visits, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteVisitRows(w, parquet.ConvertVisits(visits))
		}, "Wrote parquet")

	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVisitTable(w, visits, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeVisitCSV writes visits as CSV rows; optional columns stay empty when
// the surrounding events were missing from the log.
func writeVisitCSV(w io.Writer, visits []schema.Visit, fmtFloat func(float64) string) error {
	header := []string{"timestamp", "weight_lbs", "clean_cycle_duration_seconds"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, v := range visits {
			weight := ""
			if v.WeightLbs != nil {
				weight = fmtFloat(*v.WeightLbs)
			}
			cycle := ""
			if v.CleanCycleSeconds != nil {
				cycle = fmtFloat(*v.CleanCycleSeconds)
			}
			row := []string{v.Timestamp.Format(contract.DateTimeFormat), weight, cycle}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeVisitTable generates and writes the human-readable table.
func writeVisitTable(w io.Writer, visits []schema.Visit, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Time", "Weight", "Cycle"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, v := range visits {
		weight := "-"
		if v.WeightLbs != nil {
			weight = fmtFloat(*v.WeightLbs) + " lbs"
		}
		cycle := "-"
		if v.CleanCycleSeconds != nil {
			cycle = fmtFloat(*v.CleanCycleSeconds) + "s"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			formatLocalTime(v.Timestamp, cfg),
			weight,
			cycle,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Total visits: %d\n", len(visits))
	return nil
}
