// Package cmd defines the command-line interface for litterlog.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(visitsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsMigrateCmd)
	runsCmd.AddCommand(runsClearCmd)

	// Bind all persistent flags of rootCmd to Viper.
	// Vendor credentials deliberately have no flags; they come from
	// LITTERLOG_USERNAME / LITTERLOG_PASSWORD or the config file.
	rootCmd.PersistentFlags().String("cat-name", contract.DefaultCatName, "Cat name used in the report header")
	rootCmd.PersistentFlags().String("robot-name", "", "Robot display name override (defaults to the vendor nickname)")
	rootCmd.PersistentFlags().String("robot-serial", "", "Robot serial to select when the account has several")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA timezone for hour and date bucketing")
	rootCmd.PersistentFlags().String("source", string(schema.VendorSource), "Activity source: vendor or file")
	rootCmd.PersistentFlags().String("input-file", "", "JSON activity dump (required when source is file)")
	rootCmd.PersistentFlags().Bool("offline", false, "Use cached activity instead of fetching")
	rootCmd.PersistentFlags().Int("history-limit", contract.DefaultHistoryLimit, "Maximum activity records to fetch")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("runs-backend", "", "Fetch-run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("vendor-base-url", "", "Vendor API base URL override")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("site-dir", "", "Also write data.json into this site directory")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().Int("port", contract.DefaultPort, "HTTP port for the dashboard server")
	serveCmd.Flags().Bool("build-only", false, "Fetch and build data.json without serving")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
