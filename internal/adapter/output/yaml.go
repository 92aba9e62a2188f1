package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/theme"
)

// YAMLFormatter formats results as YAML documents.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// FormatReport writes the report as a YAML mapping.
func (f *YAMLFormatter) FormatReport(w io.Writer, r *model.Report) error {
	return f.encode(w, r)
}

// FormatHistory writes reports as a YAML sequence.
func (f *YAMLFormatter) FormatHistory(w io.Writer, reports []model.Report) error {
	if reports == nil {
		reports = []model.Report{}
	}
	return f.encode(w, reports)
}

// FormatInventory writes the inventory as a YAML mapping.
func (f *YAMLFormatter) FormatInventory(w io.Writer, inv *theme.Inventory) error {
	return f.encode(w, inv)
}

func (f *YAMLFormatter) encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
