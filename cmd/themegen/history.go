package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themegen/internal/adapter/output"
	"github.com/jmylchreest/themegen/internal/core"
	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/store"
)

var historyOpts struct {
	since        string
	theme        string
	limit        int
	failuresOnly bool
	sortBy       string
	sortOrder    string
	format       string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past generation runs",
	Long: `Show generation runs recorded in the history file.

Examples:
  # Runs from the last week
  themegen history --since 7d

  # Every run of the Dark theme that had a failure, as JSON
  themegen history --theme Dark --failures --limit 0 --format json`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded runs",
	Long:  `Remove all recorded runs from the history file.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().StringVar(&historyOpts.since, "since", "",
		"Show runs from the last duration (e.g., 48h, 7d, 1w; 0=all; default from config)")
	historyCmd.Flags().StringVar(&historyOpts.theme, "theme", "",
		"Filter by theme name (exact match)")
	historyCmd.Flags().IntVarP(&historyOpts.limit, "limit", "n", -1,
		"Maximum number of runs to show (0=unlimited; default from config)")
	historyCmd.Flags().BoolVar(&historyOpts.failuresOnly, "failures", false,
		"Only show runs with skipped or failed items")
	historyCmd.Flags().StringVar(&historyOpts.sortBy, "sort", "",
		"Sort by field (time, theme, groups; default time)")
	historyCmd.Flags().StringVar(&historyOpts.sortOrder, "order", "",
		"Sort order (asc, desc; default desc)")
	historyCmd.Flags().StringVarP(&historyOpts.format, "format", "f", "",
		"Output format (plain, json, yaml; default from config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(historyOpts.format)
	if err != nil {
		return err
	}

	opts := core.FilterOptions{
		Theme:        historyOpts.theme,
		FailuresOnly: historyOpts.failuresOnly,
		Limit:        historyOpts.limit,
	}
	if opts.Limit < 0 {
		opts.Limit = cfg.History.Limit
	}

	since := historyOpts.since
	if since == "" {
		since = cfg.History.Since
	}
	if opts.Since, err = core.ParseDuration(since); err != nil {
		return err
	}

	sortOpts := core.DefaultSortOptions()
	if historyOpts.sortBy != "" {
		sortOpts.Field = core.ParseSortField(historyOpts.sortBy)
	}
	if historyOpts.sortOrder != "" {
		sortOpts.Order = core.ParseSortOrder(historyOpts.sortOrder)
	}

	p, err := openHistory()
	if err != nil {
		return err
	}
	defer p.Close()

	reports, err := queryHistory(p, opts, sortOpts)
	if err != nil {
		return err
	}
	logger.Debug("listing history", "path", p.Path(), "count", len(reports))

	formatter := output.NewFormatter(format, output.DefaultFormatterOptions())
	return formatter.FormatHistory(cmd.OutOrStdout(), reports)
}

// queryHistory loads every recorded run, then filters and sorts it.
func queryHistory(p store.Persistence, filter core.FilterOptions, sortOpts core.SortOptions) ([]model.Report, error) {
	reports, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	reports = core.Filter(reports, filter)
	core.Sort(reports, sortOpts)
	return reports, nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	p, err := openHistory()
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared history in %s\n", p.Path())
	return nil
}
