// Package schema has configs, models and constants for all parts of litterlog.
package schema

import "time"

// RawEvent is a single activity record as delivered by the device vendor.
// The vendor feed is newest-first; the core pipeline reverses it before
// processing. Action is an opaque label (free text or a short code).
type RawEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
}

// Event is a RawEvent after classification. WeightLbs is only meaningful
// when Kind is WeightRecorded.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      EventKind `json:"kind"`
	WeightLbs float64   `json:"weight_lbs,omitempty"`
}

// Visit is one reconstructed episode of litter-box use, bounded by a
// detection event and a cycle-completion event. Weight and cycle duration
// are optional because the surrounding events may be missing from the log.
type Visit struct {
	Timestamp         time.Time `json:"timestamp"`
	WeightLbs         *float64  `json:"weight_lbs,omitempty"`
	CleanCycleSeconds *float64  `json:"clean_cycle_duration_seconds,omitempty"`
}

// ActivitySummary is the output of the visit reconstruction pass over a
// chronologically ordered event stream.
type ActivitySummary struct {
	// Visits is in non-decreasing timestamp order because it is built by a
	// single forward pass over the chronological stream.
	Visits []Visit

	// Weights holds every recorded weight sample in recording order,
	// independent of visit association.
	Weights []float64

	CleanCyclesCompleted int
	SensorInterruptions  int

	// FirstEventTime and LastEventTime span ALL raw events, including ones
	// that never became visits. HasEvents guards the zero value.
	FirstEventTime time.Time
	LastEventTime  time.Time
	HasEvents      bool

	TotalEvents int
}

// CachedActivity is the payload persisted in the activity cache and the unit
// returned by every activity source. Events are newest-first, exactly as the
// vendor feed delivers them.
type CachedActivity struct {
	RobotName   string     `json:"robot_name"`
	RobotSerial string     `json:"robot_serial"`
	FetchedAt   time.Time  `json:"fetched_at"`
	Events      []RawEvent `json:"events"`
}
