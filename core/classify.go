package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/whiskerlabs/litterlog/schema"
)

// weightRe captures the numeric portion of labels like "Pet Weight Recorded: 8.5 lbs".
var weightRe = regexp.MustCompile(`([\d.]+)\s*lbs`)

// ClassifyAction maps an opaque activity label to a canonical event kind.
// The vendor emits both long-form labels and two/three letter short codes,
// so matching is substring-based for the long forms and exact for the codes.
// For WeightRecorded the parsed weight in lbs is returned as well; a label
// that looks like a weight reading but has no parseable number is treated
// as Unrecognized rather than failing.
func ClassifyAction(action string) (schema.EventKind, float64) {
	switch {
	case strings.Contains(action, "CAT_DETECTED") || action == "CD":
		return schema.CatDetected, 0
	case strings.Contains(action, "Pet Weight Recorded"):
		m := weightRe.FindStringSubmatch(action)
		if m == nil {
			return schema.Unrecognized, 0
		}
		w, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return schema.Unrecognized, 0
		}
		return schema.WeightRecorded, w
	case strings.Contains(action, "CLEAN_CYCLE:") || action == "CCP":
		return schema.CycleStarted, 0
	case strings.Contains(action, "CLEAN_CYCLE_COMPLETE") || action == "CCC":
		return schema.CycleCompleted, 0
	case strings.Contains(action, "CAT_SENSOR_INTERRUPTED") || action == "CSI":
		return schema.SensorInterrupted, 0
	default:
		return schema.Unrecognized, 0
	}
}

// NormalizeEvents classifies a batch of raw events, preserving order.
func NormalizeEvents(raw []schema.RawEvent) []schema.Event {
	events := make([]schema.Event, len(raw))
	for i, r := range raw {
		kind, w := ClassifyAction(r.Action)
		events[i] = schema.Event{Timestamp: r.Timestamp, Kind: kind, WeightLbs: w}
	}
	return events
}
