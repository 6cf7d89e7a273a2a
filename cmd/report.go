package cmd

import (
	"github.com/spf13/cobra"
	"github.com/whiskerlabs/litterlog/core"
	"github.com/whiskerlabs/litterlog/internal/contract"
)

// runPipeline executes a pipeline entry point with shared fatal handling.
func runPipeline(executeFunc core.ExecutorFunc, failMsg string) {
	if err := executeFunc(rootCtx, cfg, cacheManager); err != nil {
		contract.LogFatal(failMsg, err)
	}
}

// reportCmd builds the full summary document.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the litter-box summary report.",
	Long: `Fetch activity, reconstruct visits and build the full summary document.

The report covers:
- Total visits, visits per day and the covered date range
- Visit timing (longest/shortest gap, peak hour, busiest date)
- Weight trend from recorded samples
- Personality traits derived from visit patterns
- Device counters (clean cycles, sensor interruptions)

Examples:
  # Print a summary card for the configured robot
  litterlog report

  # Emit the full JSON document
  litterlog report --output json --output-file report.json

  # Rebuild the dashboard data from cache
  litterlog report --offline --site-dir site

  # Report on a local activity dump
  litterlog report --source file --input-file activity.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runPipeline(core.ExecuteReport, "Cannot build report")
	},
}
