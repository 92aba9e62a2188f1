// Package main provides the CLI entrypoint for themegen.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/adapter/output"
	"github.com/jmylchreest/themegen/internal/config"
	"github.com/jmylchreest/themegen/internal/store"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themegen",
	Short: "Generate Eclipse icon themes from the stock styles",
	Long: `themegen creates a new Eclipse icon theme from the stock SCSS styles.

For every theme group in the CSS tree it clones styles/stock into
styles/<name>, points the cloned stylesheets at the new theme and writes
a master stylesheet styles/<name>.scss next to stock.scss.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/themegen/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// resolveFormat picks the output format from the flag or the config.
func resolveFormat(flag string) (output.FormatType, error) {
	format := flag
	if format == "" {
		format = cfg.Generate.Format
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", err
	}
	return output.FormatType(format), nil
}

// openHistory opens the run history file named by the config.
func openHistory() (*store.JSONLPersistence, error) {
	p, err := store.NewJSONLPersistence(cfg.HistoryPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return p, nil
}
