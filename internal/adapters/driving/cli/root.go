// Package cli wires the runbooks commands together with cobra.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opskit/runbooks/internal/adapters/driven/config/file"
	"github.com/opskit/runbooks/internal/adapters/driven/storage/memory"
	"github.com/opskit/runbooks/internal/core/ports/driven"
	"github.com/opskit/runbooks/internal/core/ports/driving"
	"github.com/opskit/runbooks/internal/core/services"
	"github.com/opskit/runbooks/internal/logger"
	"github.com/opskit/runbooks/internal/scraper"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// verbose mirrors the --verbose persistent flag.
var verbose bool

// Services backing the commands, wired by InitServices. Tests inject
// their own implementations directly.
var (
	runbookService driving.RunbookService
	configStore    driven.ConfigStore
)

// Config keys honoured by InitServices. All are optional; absent keys
// fall back to the scraper defaults.
const (
	cfgKeyBaseURL   = "scraper.base_url"
	cfgKeyUserAgent = "scraper.user_agent"
	cfgKeyTimeout   = "scraper.timeout_seconds"
	cfgKeyMCPPort   = "mcp.port"
)

var rootCmd = &cobra.Command{
	Use:   "runbooks",
	Short: "Kubernetes troubleshooting runbooks in your terminal",
	Long: `Runbooks scrapes the Container Solutions Kubernetes runbooks site,
caches every topic in memory, and serves the guides to AI assistants
over the Model Context Protocol or directly in your terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// InitServices wires the default stack: TOML config store, HTTP client,
// scraper, in-memory cache, and the runbook service on top. Services
// that are already set are left alone.
func InitServices() error {
	if runbookService != nil {
		return nil
	}

	if configStore == nil {
		cfg, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("opening config store: %w", err)
		}
		configStore = cfg
	}

	var clientOpts []scraper.ClientOption
	if secs := configStore.GetInt(cfgKeyTimeout); secs > 0 {
		clientOpts = append(clientOpts, scraper.WithTimeout(time.Duration(secs)*time.Second))
	}
	if ua := configStore.GetString(cfgKeyUserAgent); ua != "" {
		clientOpts = append(clientOpts, scraper.WithUserAgent(ua))
	}

	client := scraper.NewClient(clientOpts...)

	extractor, err := scraper.New(client, configStore.GetString(cfgKeyBaseURL))
	if err != nil {
		return fmt.Errorf("creating scraper: %w", err)
	}

	runbookService = services.NewRunbookService(memory.NewRunbookStore(), extractor)
	return nil
}
