package cmd

import (
	"github.com/spf13/cobra"
	"github.com/whiskerlabs/litterlog/core"
)

// visitsCmd inspects the reconstructed visits.
var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Show the reconstructed litter-box visits.",
	Long: `Reconstruct individual visits from the activity feed and list them.

Each visit pairs a cat detection with the weight reading and clean-cycle
completion that followed it, when those events exist in the log.

Examples:
  # List visits as a table
  litterlog visits

  # Export visits as CSV
  litterlog visits --output csv --output-file visits.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runPipeline(core.ExecuteVisits, "Cannot list visits")
	},
}
