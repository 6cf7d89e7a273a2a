package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/whiskerlabs/litterlog/schema"
)

// siteDataFile is the document name the dashboard fetches.
const siteDataFile = "data.json"

// WriteSiteData writes the summary document into the site directory as
// data.json, creating the directory if needed.
func WriteSiteData(report schema.Report, siteDir string) error {
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return fmt.Errorf("failed to create site directory %s: %w", siteDir, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode site data: %w", err)
	}

	path := filepath.Join(siteDir, siteDataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
