// Package cli implements the tubedraft command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tubedraft/tubedraft-cli/internal/adapters/driven/config/file"
	"github.com/tubedraft/tubedraft-cli/internal/core/ports/driving"
	"github.com/tubedraft/tubedraft-cli/internal/core/services"
	"github.com/tubedraft/tubedraft-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// Shared services wired once in initServices and used by all commands.
var (
	profileStore       *file.ConfigStore
	descriptionService driving.DescriptionService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tubedraft",
	Short: "Compose and score YouTube video descriptions",
	Long: `Tubedraft composes SEO-scored YouTube video descriptions from a
structured request: title, concept, style, keywords and optional
timestamps, links and social handles.

Run it one-shot with "tubedraft describe", or expose it to AI
assistants as an MCP server with "tubedraft mcp serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// initServices builds the shared service graph. A .env file, when
// present, may set TUBEDRAFT_CONFIG_DIR before the config store is
// opened; a missing .env is not an error.
func initServices() error {
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env")
	}

	store, err := file.NewConfigStore(os.Getenv("TUBEDRAFT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	profileStore = store
	logger.Debug("Config: %s", store.Path())

	descriptionService = services.NewDescriptionService(store)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
