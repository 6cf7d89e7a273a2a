package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiskerlabs/litterlog/schema"
)

// validInput returns a raw input that passes validation, for tests to mutate.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		CatName:      "Whiskers",
		Timezone:     "UTC",
		Source:       "file",
		InputFile:    "activity.json",
		HistoryLimit: 500,
		Output:       "text",
		Precision:    1,
		Color:        "yes",
		Port:         8000,
		CacheBackend: "sqlite",
	}
}

// TestProcessAndValidate tests the happy path end to end.
func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "Whiskers", cfg.CatName)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, schema.FileSource, cfg.Source)
	assert.Equal(t, 500, cfg.HistoryLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
}

// TestProcessAndValidateDefaults tests the fallbacks for omitted fields.
func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput()
	input.CatName = ""
	input.Timezone = ""
	input.HistoryLimit = 0

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DefaultCatName, cfg.CatName)
	assert.Equal(t, DefaultTimezone, cfg.Location.String())
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
}

// TestProcessAndValidateRejects tests each validation failure in isolation.
func TestProcessAndValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		errPart string
	}{
		{"history limit too large", func(in *ConfigRawInput) { in.HistoryLimit = MaxHistoryLimit + 1 }, "history-limit"},
		{"bad output mode", func(in *ConfigRawInput) { in.Output = "xml" }, "invalid output mode"},
		{"negative precision", func(in *ConfigRawInput) { in.Precision = -1 }, "precision"},
		{"excess precision", func(in *ConfigRawInput) { in.Precision = 7 }, "precision"},
		{"bad color", func(in *ConfigRawInput) { in.Color = "maybe" }, "color"},
		{"port zero", func(in *ConfigRawInput) { in.Port = 0 }, "port"},
		{"port too large", func(in *ConfigRawInput) { in.Port = 70000 }, "port"},
		{"bad timezone", func(in *ConfigRawInput) { in.Timezone = "Mars/Olympus" }, "timezone"},
		{"bad source", func(in *ConfigRawInput) { in.Source = "carrier-pigeon" }, "invalid source"},
		{"file source without input file", func(in *ConfigRawInput) { in.InputFile = "" }, "input-file"},
		{"bad cache backend", func(in *ConfigRawInput) { in.CacheBackend = "oracle" }, "invalid cache backend"},
		{"bad runs backend", func(in *ConfigRawInput) { in.RunsBackend = "oracle" }, "invalid runs backend"},
		{
			"mysql cache without connect string",
			func(in *ConfigRawInput) { in.CacheBackend = "mysql" },
			"connection string is required",
		},
		{
			"shared mysql connect string",
			func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pw@tcp(localhost:3306)/litterlog"
				in.RunsBackend = "mysql"
				in.RunsDBConnect = "user:pw@tcp(localhost:3306)/litterlog"
			},
			"must differ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

// TestProcessAndValidateVendorCredentials tests the credential requirement
// for online vendor fetches.
func TestProcessAndValidateVendorCredentials(t *testing.T) {
	vendorInput := func() *ConfigRawInput {
		input := validInput()
		input.Source = "vendor"
		input.InputFile = ""
		return input
	}

	t.Run("missing credentials rejected", func(t *testing.T) {
		err := ProcessAndValidate(&Config{}, vendorInput())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LITTERLOG_USERNAME")
	})

	t.Run("offline skips credential check", func(t *testing.T) {
		input := vendorInput()
		input.Offline = true
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("credentials accepted", func(t *testing.T) {
		input := vendorInput()
		input.Username = "cat@example.com"
		input.Password = "hunter2"
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})
}

// TestValidateDatabaseConnectionString tests per-backend format checks.
func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty ok", schema.SQLiteBackend, "", false},
		{"none empty ok", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pw@tcp(localhost:3306)/db", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pw@localhost/db", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=litterlog", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tc.backend, tc.connStr)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestCacheKey tests per-serial cache keys with the shared fallback.
func TestCacheKey(t *testing.T) {
	cfg := &Config{RobotSerial: "LR4-001"}
	assert.Equal(t, "activity:LR4-001", cfg.CacheKey())

	cfg.RobotSerial = ""
	assert.Equal(t, "activity:latest", cfg.CacheKey())
}

// TestClone tests that mutating a clone leaves the base untouched.
func TestClone(t *testing.T) {
	base := &Config{CatName: "Whiskers", HistoryLimit: 100}
	clone := base.Clone()
	clone.CatName = "Mochi"
	clone.HistoryLimit = 50

	assert.Equal(t, "Whiskers", base.CatName)
	assert.Equal(t, 100, base.HistoryLimit)
}

// TestParseBoolString tests accepted spellings and rejection.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", TruncateLabel("short", 10))
	assert.Equal(t, "cat_de...", TruncateLabel("cat_detected", 9))
	assert.Equal(t, "abc", TruncateLabel("abc", 3), "Widths of 3 or less never truncate")
}

// TestGetTrendLabel tests that disabled colors return the plain trend text.
func TestGetTrendLabel(t *testing.T) {
	assert.Equal(t, "gaining", GetTrendLabel("gaining", false))
	assert.Equal(t, "stable", GetTrendLabel("stable", false))
	assert.NotEmpty(t, GetTrendLabel("losing", true))
}
