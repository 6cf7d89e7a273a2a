package schema

// Report is the output document consumed by the dashboard. Field names and
// shapes match the site's data.json contract.
type Report struct {
	CatName           string       `json:"cat_name"`
	RobotName         string       `json:"robot_name"`
	GeneratedAt       string       `json:"generated_at"`
	DateRange         DateRange    `json:"date_range"`
	PersonalityTraits []string     `json:"personality_traits"`
	TotalVisits       int          `json:"total_visits"`
	VisitsPerDay      float64      `json:"visits_per_day"`
	ChartData         []ChartPoint `json:"chart_data"`
	Timing            Timing       `json:"timing"`
	Weight            WeightBlock  `json:"weight"`
	PeakHour          PeakHour     `json:"peak_hour"`
	BusiestDate       *BusiestDate `json:"busiest_date"`
	RobotStats        RobotStats   `json:"robot_stats"`
	Output            OutputBlock  `json:"output"`
}

// DateRange describes the covered span in local display form.
// Start and End are null when the event log is empty.
type DateRange struct {
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Display string  `json:"display"`
}

// ChartPoint is one bar of the visits-per-date chart, ordered by date ascending.
type ChartPoint struct {
	Weekday string `json:"weekday"`
	Display string `json:"display"`
	Count   int    `json:"count"`
}

// Timing holds formatted gap durations, or "N/A" with fewer than two visits.
type Timing struct {
	LongestGap  string `json:"longest_gap"`
	ShortestGap string `json:"shortest_gap"`
}

// WeightBlock summarizes recorded weight samples.
type WeightBlock struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Trend   string  `json:"trend"`
	Change  float64 `json:"change"`
}

// PeakHour is the busiest local hour of day.
type PeakHour struct {
	Hour    int    `json:"hour"`
	Count   int    `json:"count"`
	Display string `json:"display"`
}

// BusiestDate is the local calendar date with the most visits.
type BusiestDate struct {
	DayName   string `json:"day_name"`
	Display   string `json:"display"`
	Count     int    `json:"count"`
	IsWeekend bool   `json:"is_weekend"`
}

// RobotStats holds device-side counters.
type RobotStats struct {
	CleanCycles   int `json:"clean_cycles"`
	Interruptions int `json:"interruptions"`
}

// OutputBlock is the fixed linear waste estimate derived from visit count.
type OutputBlock struct {
	Oz  float64 `json:"oz"`
	Lbs float64 `json:"lbs"`
}
