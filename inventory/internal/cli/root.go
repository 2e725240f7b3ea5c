// Package cli provides the command-line interface of the inventory service.
package cli

import (
	"fmt"
	"os"

	"shelf_life/inventory/internal/config"
	"shelf_life/inventory/internal/fixture"
	"shelf_life/inventory/internal/logic"

	"github.com/juju/loggo"
	"github.com/spf13/cobra"
)

var envFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Shelf-life inventory service.",
	Long: `Tracks how the shop's stock ages. Each night every item loses a ` +
		`day of sell-in and its quality moves according to its category.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional .env file to load")
	rootCmd.AddCommand(newSimulateCmd(), newSeedCmd(), newServeCmd())
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies its logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := loggo.ConfigureLoggers(cfg.LogConfig); err != nil {
		return nil, fmt.Errorf("invalid LOG_CONFIG %q: %w", cfg.LogConfig, err)
	}
	return cfg, nil
}

func loadItems(path string) ([]logic.Item, error) {
	if path == "" {
		return fixture.Default(), nil
	}
	return fixture.Load(path)
}
