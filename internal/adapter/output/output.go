// Package output provides formatters for generation reports, run history and
// theme inventories.
package output

import (
	"io"

	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/theme"
)

// Formatter renders themegen results.
type Formatter interface {
	// FormatReport writes the result of a single generation run.
	FormatReport(w io.Writer, r *model.Report) error

	// FormatHistory writes a list of past runs.
	FormatHistory(w io.Writer, reports []model.Report) error

	// FormatInventory writes the groups and themes found in a CSS tree.
	FormatInventory(w io.Writer, inv *theme.Inventory) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	ShowFiles bool // List every rewritten stylesheet, not only failures (plain)
	MaxErrors int  // Failures listed before eliding (0 = unlimited, plain)
}

// DefaultFormatterOptions returns sensible defaults for terminal output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowFiles: false,
		MaxErrors: 20,
	}
}
