package schema

// Custom string types for type safety.
type (
	// EventKind is the canonical classification of a raw activity label.
	EventKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string

	// SourceKind represents where activity records come from.
	SourceKind string
)

// All event kinds produced by classification.
const (
	CatDetected       EventKind = "cat_detected"
	WeightRecorded    EventKind = "weight_recorded"
	CycleStarted      EventKind = "cycle_started"
	CycleCompleted    EventKind = "cycle_completed"
	SensorInterrupted EventKind = "sensor_interrupted"
	Unrecognized      EventKind = "unrecognized"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All activity sources supported.
const (
	VendorSource SourceKind = "vendor" // default
	FileSource   SourceKind = "file"
)

// ValidOutputModes is the set of accepted output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends is the set of accepted database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSourceKinds is the set of accepted activity sources.
var ValidSourceKinds = map[SourceKind]struct{}{
	VendorSource: {},
	FileSource:   {},
}

// Personality trait labels. Each heuristic rule contributes at most one.
const (
	TraitNightOwl           = "Night Owl"
	TraitEarlyBird          = "Early Bird"
	TraitAfternoonAristocat = "Afternoon Aristocat"
	TraitEveningEliminator  = "Evening Eliminator"
	TraitCreatureOfHabit    = "Creature of Habit"
	TraitChaoticPooper      = "Chaotic Pooper"
	TraitWeekendWarrior     = "Weekend Warrior"
	TraitWeekdayRegular     = "Weekday Regular"
)

// Weight trend values.
const (
	TrendGaining = "gaining"
	TrendLosing  = "losing"
	TrendStable  = "stable"
)

// DayNames maps a Monday-based weekday index (0=Mon .. 6=Sun) to its
// full English name.
var DayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
