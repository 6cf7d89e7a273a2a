package cmd

import (
	"github.com/spf13/cobra"
	"github.com/whiskerlabs/litterlog/core"
)

// eventsCmd inspects the normalized event stream.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the classified activity events in chronological order.",
	Long: `List every activity record after classification, oldest first.

Useful for checking how raw vendor labels map onto event kinds before
they are folded into visits. Unrecognized labels are shown too; the
report pipeline ignores them.

Examples:
  # Inspect recent events
  litterlog events

  # Export the event stream for analysis elsewhere
  litterlog events --output parquet --output-file events.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runPipeline(core.ExecuteEvents, "Cannot list events")
	},
}
