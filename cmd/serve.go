package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whiskerlabs/litterlog/core"
	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/webserve"
)

// serveCmd builds the dashboard data and serves the site.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the report and serve the dashboard site.",
	Long: `Fetch activity, write data.json into the site directory and serve it.

The server ships with an embedded dashboard page, so an empty site
directory still renders; put your own index.html there to replace it.

Examples:
  # Fetch, build and serve on the default port
  litterlog serve

  # Serve cached data without hitting the vendor API
  litterlog serve --offline

  # Refresh data.json and exit
  litterlog serve --build-only`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		siteDir := cfg.SiteDir
		if siteDir == "" {
			siteDir = contract.DefaultSiteDir
		}

		activity, err := core.LoadActivity(rootCtx, cfg, cacheManager)
		if err != nil {
			contract.LogFatal("Cannot load activity", err)
		}
		report := core.BuildDocument(activity, cfg, time.Now())
		if err := core.WriteSiteData(report, siteDir); err != nil {
			contract.LogFatal("Cannot write site data", err)
		}

		if viper.GetBool("build-only") {
			return
		}

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := webserve.Serve(ctx, siteDir, cfg.Port); err != nil {
			contract.LogFatal("Dashboard server failed", err)
		}
	},
}
