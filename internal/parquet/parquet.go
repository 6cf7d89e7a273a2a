// Package parquet provides data structures and functions for exporting
// litter-box activity data to Parquet using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/whiskerlabs/litterlog/schema"
)

// VisitRow represents a single reconstructed visit in Parquet form.
type VisitRow struct {
	// Timestamp is when the cat was detected (nanosecond precision TIMESTAMP)
	Timestamp int64 `parquet:"timestamp,timestamp,snappy"`

	// WeightLbs is the recorded weight in pounds (nullable)
	WeightLbs *float64 `parquet:"weight_lbs,optional,snappy"`

	// CleanCycleSeconds is the duration of the following clean cycle (nullable)
	CleanCycleSeconds *float64 `parquet:"clean_cycle_duration_seconds,optional,snappy"`
}

// EventRow represents a single normalized event in Parquet form.
type EventRow struct {
	// Timestamp is when the event occurred (nanosecond precision TIMESTAMP)
	Timestamp int64 `parquet:"timestamp,timestamp,snappy"`

	// Kind is the classified event kind
	Kind string `parquet:"kind,snappy"`

	// WeightLbs is the extracted weight; zero unless Kind is weight_recorded
	WeightLbs float64 `parquet:"weight_lbs,snappy"`
}

// ConvertVisits converts schema.Visit records to VisitRow for Parquet export.
func ConvertVisits(visits []schema.Visit) []VisitRow {
	rows := make([]VisitRow, len(visits))
	for i, v := range visits {
		rows[i] = VisitRow{
			Timestamp:         v.Timestamp.UnixNano(),
			WeightLbs:         v.WeightLbs,
			CleanCycleSeconds: v.CleanCycleSeconds,
		}
	}
	return rows
}

// ConvertEvents converts schema.Event records to EventRow for Parquet export.
func ConvertEvents(events []schema.Event) []EventRow {
	rows := make([]EventRow, len(events))
	for i, e := range events {
		rows[i] = EventRow{
			Timestamp: e.Timestamp.UnixNano(),
			Kind:      string(e.Kind),
			WeightLbs: e.WeightLbs,
		}
	}
	return rows
}

// WriteVisitRows writes visit rows to w as a Parquet file.
func WriteVisitRows(w io.Writer, rows []VisitRow) error {
	// Schema is inferred from the VisitRow struct tags
	writer := parquet.NewGenericWriter[VisitRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write visit rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet output: %w", err)
	}
	return nil
}

// WriteEventRows writes event rows to w as a Parquet file.
func WriteEventRows(w io.Writer, rows []EventRow) error {
	// Schema is inferred from the EventRow struct tags
	writer := parquet.NewGenericWriter[EventRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write event rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet output: %w", err)
	}
	return nil
}
