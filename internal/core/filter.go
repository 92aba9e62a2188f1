// Package core provides filtering and sorting of generation history.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmylchreest/themegen/internal/model"
)

// FilterOptions specifies criteria for filtering reports.
type FilterOptions struct {
	Since        time.Duration // Filter to runs newer than now-since (0=all)
	Theme        string        // Exact match on theme name
	FailuresOnly bool          // Only runs with a skipped or failed item
	Limit        int           // Maximum results (0=unlimited)
}

// Filter filters reports based on the provided options.
// The limit keeps the last matching reports, which are the newest in history order.
func Filter(reports []model.Report, opts FilterOptions) []model.Report {
	now := time.Now()
	result := make([]model.Report, 0, len(reports))

	for _, r := range reports {
		if opts.Since > 0 {
			cutoff := now.Add(-opts.Since)
			if r.StartedAtTime().Before(cutoff) {
				continue
			}
		}

		if opts.Theme != "" && r.ThemeName != opts.Theme {
			continue
		}

		if opts.FailuresOnly && !r.HasFailures() {
			continue
		}

		result = append(result, r)
	}

	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[len(result)-opts.Limit:]
	}

	return result
}

// ParseDuration parses a duration string with support for days and weeks.
// Examples: "48h", "7d", "1w", "30m", "0" (no filter)
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	// Special case: 0 means no filter (all time)
	if s == "0" || s == "" {
		return 0, nil
	}

	// Handle day suffix (7d -> 168h)
	if daysStr, found := strings.CutSuffix(s, "d"); found {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	// Handle week suffix (1w -> 168h)
	if weeksStr, found := strings.CutSuffix(s, "w"); found {
		weeks, err := strconv.Atoi(weeksStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		return time.Duration(weeks) * 7 * 24 * time.Hour, nil
	}

	return time.ParseDuration(s)
}
