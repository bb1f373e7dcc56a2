// Package main provides the swing_pose command line tool for the stick-figure pose dataset.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/config"
	"github.com/swingtrack/swing-pose/internal/logging"
)

var (
	configPath string

	// Populated by loadRuntime before any subcommand runs.
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "swing_pose",
	Short: "Golf swing stick-figure pose tool",
	Long: "swing_pose validates, exports, projects and renders the P1-P10 reference golf swing poses, " +
		"and serves them over HTTP.",
	PersistentPreRunE: loadRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file (optional)")
}

func loadRuntime(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = logging.New(os.Stderr, cfg.LogLevel, cfg.LogJSON)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
