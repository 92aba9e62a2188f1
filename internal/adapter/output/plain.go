package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/theme"
)

// PlainFormatter formats results as human-readable text.
// Colour is only emitted when the writer is a terminal.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

type plainStyles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	ok      lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
}

func newPlainStyles(w io.Writer) plainStyles {
	r := lipgloss.NewRenderer(w)
	return plainStyles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Foreground(lipgloss.Color("8")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("3")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s plainStyles) status(st model.Status) string {
	label := fmt.Sprintf("%-7s", st)
	switch st {
	case model.StatusOK:
		return s.ok.Render(label)
	case model.StatusSkipped:
		return s.skipped.Render(label)
	default:
		return s.failed.Render(label)
	}
}

// FormatReport writes one line per group, followed by file and master
// failures and a summary line.
func (f *PlainFormatter) FormatReport(w io.Writer, r *model.Report) error {
	st := newPlainStyles(w)
	var sb strings.Builder

	sb.WriteString(st.header.Render(fmt.Sprintf("Theme %q", r.ThemeName)))
	sb.WriteString(st.label.Render(fmt.Sprintf(" in %s (run %s)", r.BaseDir, r.ID)))
	sb.WriteString("\n")

	listed := 0
	for _, o := range r.Outcomes {
		switch o.Kind {
		case model.KindGroup:
			sb.WriteString("  " + st.status(o.Status) + " " + o.Group)
			if o.Status == model.StatusOK {
				sb.WriteString(st.label.Render(" (" + humanize.Bytes(uint64(o.Bytes)) + ")"))
			} else if o.Error != "" {
				sb.WriteString(st.label.Render(": " + o.Error))
			}
			sb.WriteString("\n")

		case model.KindFile, model.KindMaster:
			if o.Status == model.StatusOK && !(f.opts.ShowFiles && o.Kind == model.KindFile) {
				continue
			}
			if o.Status != model.StatusOK {
				listed++
				if f.opts.MaxErrors > 0 && listed > f.opts.MaxErrors {
					continue
				}
			}
			sb.WriteString("      " + st.status(o.Status) + " " + o.Path)
			if o.Error != "" {
				sb.WriteString(st.label.Render(": " + o.Error))
			}
			sb.WriteString("\n")
		}
	}

	if f.opts.MaxErrors > 0 && listed > f.opts.MaxErrors {
		sb.WriteString(fmt.Sprintf("      ... and %d more\n", listed-f.opts.MaxErrors))
	}

	sb.WriteString(summaryLine(r))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// summaryLine describes a report in one line.
func summaryLine(r *model.Report) string {
	groups := len(r.Groups())
	ok := r.Count(model.KindGroup, model.StatusOK)
	files := r.Count(model.KindFile, model.StatusOK)
	return fmt.Sprintf("Generated %d of %d %s, rewrote %d %s, copied %s",
		ok, groups, plural(groups, "group", "groups"),
		files, plural(files, "stylesheet", "stylesheets"),
		humanize.Bytes(uint64(r.BytesCopied())))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatHistory writes one line per run.
func (f *PlainFormatter) FormatHistory(w io.Writer, reports []model.Report) error {
	st := newPlainStyles(w)

	if len(reports) == 0 {
		_, err := io.WriteString(w, "No generation runs recorded\n")
		return err
	}

	for _, r := range reports {
		status := model.StatusOK
		if r.Count(model.KindGroup, model.StatusFailed) > 0 || r.Count(model.KindFile, model.StatusFailed) > 0 {
			status = model.StatusFailed
		} else if r.HasFailures() {
			status = model.StatusSkipped
		}

		line := fmt.Sprintf("%s %s %s %s\n",
			st.label.Render(r.ID),
			st.status(status),
			r.ThemeName,
			st.label.Render(fmt.Sprintf("(%s, %s)", humanize.Time(r.StartedAtTime()), summaryLine(&r))))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatInventory writes each group with its themes, then the master stylesheets.
func (f *PlainFormatter) FormatInventory(w io.Writer, inv *theme.Inventory) error {
	st := newPlainStyles(w)
	var sb strings.Builder

	sb.WriteString(st.header.Render(inv.BaseDir))
	sb.WriteString("\n")

	for _, g := range inv.Groups {
		marker := st.ok.Render("stock")
		if !g.HasStock {
			marker = st.skipped.Render("no stock")
		}
		sb.WriteString(fmt.Sprintf("  %s [%s]", g.Name, marker))

		var themes []string
		for _, name := range g.Themes {
			if name == theme.StockTheme {
				continue
			}
			if slices.Contains(g.Stale, name) {
				name += st.failed.Render(" (imports stock)")
			}
			themes = append(themes, name)
		}
		if len(themes) > 0 {
			sb.WriteString(st.label.Render(": ") + strings.Join(themes, ", "))
		}
		sb.WriteString("\n")
	}

	if len(inv.Masters) > 0 {
		sb.WriteString(st.label.Render("master stylesheets: ") + strings.Join(inv.Masters, ", ") + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
