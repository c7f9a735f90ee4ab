package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/globesim/internal/config"
	"github.com/philipparndt/globesim/internal/logging"
	"github.com/philipparndt/globesim/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "globesim",
	Short: "Mapping catheter simulator around a spherical heart model",
	Long: `globesim simulates a ring-shaped electrophysiology mapping catheter moving
around an idealized spherical heart. It reports electrode contact signals,
runs the automatic mapping sweep and exports the catheter geometry.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		cfg.Log = logging.FromEnv(cfg.Log)
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if logFormat != "" {
			cfg.Log.Format = logFormat
		}
		logger = logging.WithSession(logging.New(os.Stderr, cfg.Log))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text or json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
