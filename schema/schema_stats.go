package schema

import "time"

// DateBucket holds per-calendar-date visit counts in the local time zone.
type DateBucket struct {
	Count       int
	Weekday     int    // Monday-based: 0=Mon .. 6=Sun
	WeekdayName string // abbreviated, e.g. "Mon"
	Display     string // "MM/DD"
}

// Stats is the immutable aggregate computed from an ActivitySummary.
// It is consumed by the trait rules and the report builder.
type Stats struct {
	Visits  []Visit
	Weights []float64

	CleanCyclesCompleted int
	SensorInterruptions  int

	DateRangeStart time.Time
	DateRangeEnd   time.Time
	HasDateRange   bool
	DaysCovered    float64

	// VisitsByHour counts visits per local hour of day.
	VisitsByHour [24]int

	// VisitsByDate is keyed by local calendar date ("2006-01-02").
	VisitsByDate map[string]*DateBucket

	// Gaps holds durations between chronologically consecutive visits.
	Gaps        []time.Duration
	LongestGap  time.Duration
	ShortestGap time.Duration
	HasGaps     bool

	// WeightTrend is empty unless at least four weight samples exist.
	WeightTrend  string
	WeightChange float64
}

// TotalVisits returns the number of reconstructed visits.
func (s *Stats) TotalVisits() int {
	return len(s.Visits)
}
