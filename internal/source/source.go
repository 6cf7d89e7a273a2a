// Package source has activity sources that deliver raw device events.
package source

import (
	"fmt"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/schema"
)

// NewFromConfig builds the activity source selected by the configuration.
func NewFromConfig(cfg *contract.Config) (contract.ActivitySource, error) {
	switch cfg.Source {
	case schema.VendorSource:
		return NewVendorSource(VendorConfig{
			BaseURL:     cfg.VendorBaseURL,
			Username:    cfg.Username,
			Password:    cfg.Password,
			RobotSerial: cfg.RobotSerial,
		}), nil
	case schema.FileSource:
		return NewFileSource(cfg.InputFile, cfg.RobotName), nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Source)
	}
}
