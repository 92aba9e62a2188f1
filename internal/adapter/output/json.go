package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/theme"
)

// JSONFormatter formats results as indented JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// FormatReport writes the report as a JSON object.
func (f *JSONFormatter) FormatReport(w io.Writer, r *model.Report) error {
	return f.encode(w, r)
}

// FormatHistory writes reports as a JSON array.
func (f *JSONFormatter) FormatHistory(w io.Writer, reports []model.Report) error {
	if reports == nil {
		reports = []model.Report{}
	}
	return f.encode(w, reports)
}

// FormatInventory writes the inventory as a JSON object.
func (f *JSONFormatter) FormatInventory(w io.Writer, inv *theme.Inventory) error {
	return f.encode(w, inv)
}

func (f *JSONFormatter) encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
