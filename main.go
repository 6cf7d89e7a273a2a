// main is the entry point for the litterlog CLI.
package main

import (
	"os"

	"github.com/whiskerlabs/litterlog/cmd"
	"github.com/whiskerlabs/litterlog/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Stores must close before exiting so SQLite handles flush cleanly.
	iocache.CloseStores()

	if err != nil {
		os.Exit(1)
	}
}
