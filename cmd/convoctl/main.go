// Package main implements the convoctl CLI for converting and filtering
// exported chat conversation archives.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/convoctl/internal/config"
	"github.com/fyrsmithlabs/convoctl/internal/logging"
)

var (
	// configPath overrides the default config file location
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "convoctl",
	Short: "Convert and filter exported chat conversation archives",
	Long: `convoctl works with chat conversation exports: a JSON array of
conversation records. It converts each conversation into a readable
Markdown document, or filters an archive down to a subset selected by
identifier or by name pattern.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/convoctl/config.yaml)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(filterCmd)
}

// setup loads configuration and builds the logger shared by subcommands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
