package core

import (
	"sort"
	"strings"

	"github.com/jmylchreest/themegen/internal/model"
)

// SortField represents a field to sort by.
type SortField string

const (
	SortByTime   SortField = "time"
	SortByTheme  SortField = "theme"
	SortByGroups SortField = "groups"
)

// SortOrder represents ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOptions specifies sorting criteria.
type SortOptions struct {
	Field SortField
	Order SortOrder
}

// DefaultSortOptions returns default sort options (newest first).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field: SortByTime,
		Order: SortDesc,
	}
}

// Sort sorts reports in place based on the provided options.
func Sort(reports []model.Report, opts SortOptions) {
	if len(reports) == 0 {
		return
	}

	sort.SliceStable(reports, func(i, j int) bool {
		a, b := &reports[i], &reports[j]
		if opts.Order == SortDesc {
			a, b = b, a
		}

		var less bool
		switch opts.Field {
		case SortByTheme:
			less = strings.ToLower(a.ThemeName) < strings.ToLower(b.ThemeName)
		case SortByGroups:
			less = a.Count(model.KindGroup, model.StatusOK) < b.Count(model.KindGroup, model.StatusOK)
		default:
			// ULIDs sort by creation time, breaking ties within the same second
			less = a.StartedAt < b.StartedAt || (a.StartedAt == b.StartedAt && a.ID < b.ID)
		}

		return less
	})
}

// ParseSortField parses a sort field string.
func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "theme", "name", "n":
		return SortByTheme
	case "groups", "g":
		return SortByGroups
	default:
		return SortByTime
	}
}

// ParseSortOrder parses a sort order string.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "a":
		return SortAsc
	default:
		return SortDesc
	}
}
