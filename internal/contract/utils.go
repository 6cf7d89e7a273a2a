package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	TraitColor   = color.New(color.FgMagenta, color.Bold) // personality trait labels
	GainingColor = color.New(color.FgYellow, color.Bold)  // weight trending up
	LosingColor  = color.New(color.FgCyan, color.Bold)    // weight trending down
	StableColor  = color.New(color.FgGreen)               // weight holding steady
	HeaderColor  = color.New(color.FgWhite, color.Bold)   // section headers
)

// GetTrendLabel returns a colored trend label for console output, or the
// plain text when colors are disabled.
func GetTrendLabel(trend string, useColors bool) string {
	if !useColors {
		return trend
	}
	switch trend {
	case "gaining":
		return GainingColor.Sprint(trend)
	case "losing":
		return LosingColor.Sprint(trend)
	default:
		return StableColor.Sprint(trend)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." marker and at least one character of content.
// Without this check, small maxWidth values could cause slice bounds errors in the truncation calculation.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
