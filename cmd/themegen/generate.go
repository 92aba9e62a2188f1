package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/adapter/output"
	"github.com/jmylchreest/themegen/internal/config"
	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/theme"
)

var generateOpts struct {
	name      string
	baseDir   string
	format    string
	noHistory bool
	showFiles bool
	maxErrors int
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a new icon theme from the stock styles",
	Long: `Create a new icon theme named --name in every theme group of the CSS tree.

Groups without a styles/stock directory are skipped. An existing empty theme
directory is replaced; a populated one is left alone and reported as failed.
Individual failures are logged and reported but do not change the exit status.

Every directory of the CSS tree is a candidate group, the root styles
directory included. It has no styles/stock of its own, so each run logs a
"source dir doesn't exist" error for it and reports it as skipped.

The theme name falls back to the ` + config.ThemeNameEnv + ` environment variable.

Examples:
  # Generate the Dark theme under ./eclipse-css
  themegen generate --name Dark

  # Use another CSS tree and print the report as JSON
  themegen generate -n Dark --base-dir bundles/eclipse-css --format json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOpts.name, "name", "n", "",
		"Name of the theme to create (env: "+config.ThemeNameEnv+")")
	generateCmd.Flags().StringVar(&generateOpts.baseDir, "base-dir", "",
		"CSS tree containing the theme groups (default from config: eclipse-css)")
	generateCmd.Flags().StringVarP(&generateOpts.format, "format", "f", "",
		"Output format (plain, json, yaml; default from config)")
	generateCmd.Flags().BoolVar(&generateOpts.noHistory, "no-history", false,
		"Do not record this run in the history file")
	generateCmd.Flags().BoolVar(&generateOpts.showFiles, "show-files", false,
		"List every rewritten stylesheet (plain format)")
	generateCmd.Flags().IntVar(&generateOpts.maxErrors, "max-errors", output.DefaultFormatterOptions().MaxErrors,
		"Failures listed before eliding (0=unlimited, plain format)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(generateOpts.format)
	if err != nil {
		return err
	}

	baseDir := generateOpts.baseDir
	if baseDir == "" {
		baseDir = cfg.Generate.BaseDir
	}

	report, err := theme.Generate(theme.Options{
		BaseDir:   baseDir,
		ThemeName: config.ThemeName(generateOpts.name),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("generation finished",
		"theme", report.ThemeName,
		"groups", len(report.Groups()),
		"failed", len(report.Failed()),
		"duration", report.Duration())

	if cfg.History.Enabled && !generateOpts.noHistory {
		recordRun(report)
	}

	formatter := output.NewFormatter(format, output.FormatterOptions{
		ShowFiles: generateOpts.showFiles,
		MaxErrors: generateOpts.maxErrors,
	})
	if err := formatter.FormatReport(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// recordRun appends the report to the history file. Failures only warn,
// the generated files are already in place.
func recordRun(report *model.Report) {
	p, err := openHistory()
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}
	defer p.Close()

	if err := p.Append(*report); err != nil {
		logger.Warn("failed to record run", "path", p.Path(), "error", err)
	}
}
