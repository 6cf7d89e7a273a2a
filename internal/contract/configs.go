package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

// Default values for configuration.
const (
	DefaultHistoryLimit = 1000
	MaxHistoryLimit     = 5000
	DefaultPrecision    = 1
	DefaultPort         = 8000
	DefaultTimezone     = "America/Los_Angeles"
	DefaultSiteDir      = "site"
	DefaultCatName      = "Kitty"
	DefaultRobotName    = "Litter-Robot"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	CatName     string
	RobotName   string
	RobotSerial string

	// Location is the single fixed zone used for all calendar and hour
	// bucketing. Instants keep their own offsets for duration arithmetic.
	Location *time.Location

	Source       schema.SourceKind
	InputFile    string
	Offline      bool
	HistoryLimit int

	Output     schema.OutputMode
	OutputFile string
	SiteDir    string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Port int

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext

	VendorBaseURL string
	Username      string
	Password      string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	CatName     string `mapstructure:"cat-name"`
	RobotName   string `mapstructure:"robot-name"`
	RobotSerial string `mapstructure:"robot-serial"`
	Timezone    string `mapstructure:"timezone"`

	Source       string `mapstructure:"source"`
	InputFile    string `mapstructure:"input-file"`
	Offline      bool   `mapstructure:"offline"`
	HistoryLimit int    `mapstructure:"history-limit"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	SiteDir    string `mapstructure:"site-dir"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	Port int `mapstructure:"port"`

	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	RunsBackend    string `mapstructure:"runs-backend"`
	RunsDBConnect  string `mapstructure:"runs-db-connect"`

	VendorBaseURL string `mapstructure:"vendor-base-url"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimezone(cfg, input); err != nil {
		return err
	}
	if err := processSource(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.CatName = input.CatName
	if cfg.CatName == "" {
		cfg.CatName = DefaultCatName
	}
	cfg.RobotName = input.RobotName
	cfg.RobotSerial = input.RobotSerial

	cfg.HistoryLimit = input.HistoryLimit
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.HistoryLimit > MaxHistoryLimit {
		return fmt.Errorf("history-limit %d exceeds maximum of %d", cfg.HistoryLimit, MaxHistoryLimit)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.SiteDir = input.SiteDir

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 6 {
		return fmt.Errorf("precision %d out of range [0, 6]", input.Precision)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.Port = input.Port
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range [1, 65535]", input.Port)
	}

	return nil
}

func processTimezone(cfg *Config, input *ConfigRawInput) error {
	name := input.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	cfg.Location = loc
	return nil
}

func processSource(cfg *Config, input *ConfigRawInput) error {
	cfg.Source = schema.SourceKind(strings.ToLower(input.Source))
	if _, ok := schema.ValidSourceKinds[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be vendor or file", input.Source)
	}
	cfg.InputFile = input.InputFile
	cfg.Offline = input.Offline
	cfg.VendorBaseURL = input.VendorBaseURL
	cfg.Username = input.Username
	cfg.Password = input.Password

	if cfg.Source == schema.FileSource && cfg.InputFile == "" {
		return fmt.Errorf("input-file is required when source is file")
	}
	if cfg.Source == schema.VendorSource && !cfg.Offline {
		if cfg.Username == "" || cfg.Password == "" {
			return fmt.Errorf("vendor credentials missing: set LITTERLOG_USERNAME and LITTERLOG_PASSWORD (or use --offline / --source file)")
		}
	}
	return nil
}

func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if input.RunsBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
			return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
		}
		cfg.RunsDBConnect = input.RunsDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
			return err
		}
		if cfg.RunsBackend == cfg.CacheBackend && cfg.RunsBackend != schema.SQLiteBackend &&
			cfg.RunsBackend != schema.NoneBackend && cfg.RunsDBConnect == cfg.CacheDBConnect {
			return fmt.Errorf("runs-db-connect must differ from cache-db-connect when sharing a backend")
		}
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// Clone returns a shallow copy of the configuration. Callers that override
// per-request fields (MCP tools) mutate the copy, not the shared base.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CacheKey returns the activity-cache key for this configuration. Entries are
// kept per robot serial so multiple devices on one account do not clobber
// each other; an unset serial falls back to a shared slot.
func (c *Config) CacheKey() string {
	serial := c.RobotSerial
	if serial == "" {
		serial = "latest"
	}
	return "activity:" + serial
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".litterlog_cache.db"
	}
	return filepath.Join(homeDir, ".litterlog_cache.db")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".litterlog_runs.db"
	}
	return filepath.Join(homeDir, ".litterlog_runs.db")
}
