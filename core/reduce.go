package core

import (
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

// reduceState is the accumulator threaded through the visit reconstruction
// fold. A visit is open between a CatDetected and the CycleCompleted that
// finalizes it; cycleStart tracks the latest unconsumed CycleStarted.
type reduceState struct {
	open       *schema.Visit
	cycleStart time.Time
	hasCycle   bool
}

// advance applies one event to the accumulator and returns the next state
// plus the completed visit, if this event finalized one.
//
// A CatDetected while a visit is already open silently discards the earlier,
// never-completed visit. That matches the device log interpretation this
// tool was built against; do not change it without revisiting the counters
// downstream.
func advance(st reduceState, ev schema.Event) (reduceState, *schema.Visit) {
	switch ev.Kind {
	case schema.CatDetected:
		st.open = &schema.Visit{Timestamp: ev.Timestamp}
		return st, nil

	case schema.WeightRecorded:
		if st.open != nil {
			w := ev.WeightLbs
			st.open.WeightLbs = &w
		}
		return st, nil

	case schema.CycleStarted:
		st.cycleStart = ev.Timestamp
		st.hasCycle = true
		return st, nil

	case schema.CycleCompleted:
		var done *schema.Visit
		if st.open != nil {
			if st.hasCycle {
				dur := ev.Timestamp.Sub(st.cycleStart).Seconds()
				st.open.CleanCycleSeconds = &dur
			}
			done = st.open
			st.open = nil
		}
		st.cycleStart = time.Time{}
		st.hasCycle = false
		return st, done

	default:
		// SensorInterrupted and Unrecognized never touch visit state.
		return st, nil
	}
}

// Chronological returns a reversed copy of a newest-first event slice.
// The vendor feed arrives newest-first; every consumer of Reduce wants
// oldest-first.
func Chronological(raw []schema.RawEvent) []schema.RawEvent {
	out := make([]schema.RawEvent, len(raw))
	for i, r := range raw {
		out[len(raw)-1-i] = r
	}
	return out
}

// Reduce folds a chronologically ordered raw event stream into completed
// visits and the auxiliary counters. An open visit left dangling at stream
// end is dropped. The min/max timestamps span all raw events, including
// ones that never contributed to a visit.
func Reduce(raw []schema.RawEvent) schema.ActivitySummary {
	summary := schema.ActivitySummary{TotalEvents: len(raw)}

	var st reduceState
	for _, r := range raw {
		kind, w := ClassifyAction(r.Action)
		ev := schema.Event{Timestamp: r.Timestamp, Kind: kind, WeightLbs: w}

		switch kind {
		case schema.WeightRecorded:
			summary.Weights = append(summary.Weights, w)
		case schema.CycleCompleted:
			summary.CleanCyclesCompleted++
		case schema.SensorInterrupted:
			summary.SensorInterruptions++
		}

		var done *schema.Visit
		st, done = advance(st, ev)
		if done != nil {
			summary.Visits = append(summary.Visits, *done)
		}

		if !summary.HasEvents {
			summary.FirstEventTime = r.Timestamp
			summary.LastEventTime = r.Timestamp
			summary.HasEvents = true
			continue
		}
		if r.Timestamp.Before(summary.FirstEventTime) {
			summary.FirstEventTime = r.Timestamp
		}
		if r.Timestamp.After(summary.LastEventTime) {
			summary.LastEventTime = r.Timestamp
		}
	}

	return summary
}

// ReduceActivity reverses a newest-first vendor feed and reduces it.
func ReduceActivity(raw []schema.RawEvent) schema.ActivitySummary {
	return Reduce(Chronological(raw))
}
