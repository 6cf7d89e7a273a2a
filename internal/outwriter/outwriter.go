// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/whiskerlabs/litterlog/internal/contract"
)

// GetTableWidth returns the usable terminal width for table output,
// honoring an absolute width override from flag/env.
func GetTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}

// Fixed-column budgets per table layout. Each covers the other columns of
// that table plus borders, separators and padding.
const (
	eventTableBaseWidth  = 45 // # + Time + Weight columns with formatting
	reportTableBaseWidth = 22 // Metric column with formatting
)

// GetMaxLabelWidth calculates the maximum width for the free-text column of
// a table based on terminal width and that table's fixed columns.
func GetMaxLabelWidth(cfg *contract.Config, baseWidth int) int {
	available := GetTableWidth(cfg) - baseWidth
	if available < 8 {
		// Minimum readable label width
		return 8
	}
	if available > 60 {
		// Maximum label width to keep tables compact
		return 60
	}
	return available
}
