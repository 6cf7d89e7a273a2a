package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/iocache"
	"github.com/whiskerlabs/litterlog/schema"
)

// runsSetup loads minimal configuration needed for run-tracking operations.
// This is used by commands that need runs access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get runs-related config values
	backendStr := viper.GetString("runs-backend")
	connStr := viper.GetString("runs-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize stores with the loaded config (no activity cache for runs commands)
	if err := iocache.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This specialized setup does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("runs-backend")
	connStr := viper.GetString("runs-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRunsDBFilePath()
	}

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for the migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// runsCmd focused on fetch-run tracking management.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage fetch-run tracking",
	Long: `Manage the history of activity fetches against the vendor API.

When enabled, litterlog records every fetch run, storing:
- Run timestamps (start and end)
- Robot serial and activity source
- Number of records fetched

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show tracking statistics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  LITTERLOG_RUNS_BACKEND=sqlite litterlog runs status`,
}

// runsStatusCmd shows run-tracking status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display fetch-run statistics and connection details",
	Long: `Show detailed information about fetch-run tracking.

Displays:
- Backend type and connection status
- Total number of fetch runs stored
- Last and oldest run timestamps
- Total activity records fetched across all runs

Examples:
  # Check run tracking status
  LITTERLOG_RUNS_BACKEND=sqlite litterlog runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetRunsStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get runs status", err)
		}
		iocache.PrintRunsStatus(status)
	},
}

// runsClearCmd clears the run-tracking data.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all fetch-run tracking data",
	Long: `Delete all stored fetch-run history.

WARNING: This action cannot be undone.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Rolls back the runs migrations

Examples:
  LITTERLOG_RUNS_BACKEND=sqlite litterlog runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearRuns(cfg.RunsBackend, contract.GetRunsDBFilePath(), cfg.RunsDBConnect); err != nil {
			contract.LogFatal("Failed to clear runs data", err)
		}
		fmt.Println("Runs data cleared successfully.")
	},
}

// runsMigrateCmd runs database schema migrations for the runs store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations for run tracking",
	Long: `Bring the fetch-run schema to a target version.

The stores migrate automatically on startup; this command exists for
rolling back and for preparing shared databases ahead of time.

Target versions:
  -1 (default) - migrate to the latest version
   0           - roll back all migrations
   N           - migrate to version N

Examples:
  # Migrate to latest
  LITTERLOG_RUNS_BACKEND=sqlite litterlog runs migrate

  # Roll back everything
  LITTERLOG_RUNS_BACKEND=sqlite litterlog runs migrate --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateRuns(cfg.RunsBackend, cfg.RunsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println("Migrations applied successfully.")
	},
}
