package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// MarkdownFormatter renders reports as GitHub flavored Markdown tables.
type MarkdownFormatter struct {
	// MaxSeriesRows limits the series table; 0 shows every row.
	MaxSeriesRows int
}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(reports []*domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "# %s\n\n", heading(r))
		fmt.Fprintln(&buf, "| Result | Value |")
		fmt.Fprintln(&buf, "|---|--:|")
		for _, f := range r.Fields {
			fmt.Fprintf(&buf, "| %s | %s |\n", escapeCell(f.Label), escapeCell(DisplayValue(f)))
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(&buf, "\n> **Warning:** %s\n", w)
		}
		if len(r.Series) == 0 {
			continue
		}

		fmt.Fprintln(&buf, "\n## Projection")
		fmt.Fprintln(&buf)
		headers := seriesHeaders(r)
		fmt.Fprintf(&buf, "| %s |\n", strings.Join(headers, " | "))
		align := make([]string, len(headers))
		for j := range align {
			align[j] = "--:"
		}
		align[0] = "---"
		fmt.Fprintf(&buf, "|%s|\n", strings.Join(align, "|"))

		series := r.Series
		if m.MaxSeriesRows > 0 && len(series) > m.MaxSeriesRows {
			series = series[:m.MaxSeriesRows]
		}
		for _, p := range series {
			fmt.Fprintf(&buf, "| %s |\n", strings.Join(seriesRow(p), " | "))
		}
		if len(series) < len(r.Series) {
			fmt.Fprintf(&buf, "\n_%d more rows omitted._\n", len(r.Series)-len(series))
		}
	}
	return buf.Bytes(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// PrettyFormatter renders the Markdown form through glamour for terminals.
type PrettyFormatter struct {
	// Style is a glamour standard style name; empty means "notty".
	Style    string
	WordWrap int
	Markdown MarkdownFormatter
}

func (p PrettyFormatter) Name() string { return "pretty" }

func (p PrettyFormatter) Format(reports []*domain.Report) ([]byte, error) {
	md, err := p.Markdown.Format(reports)
	if err != nil {
		return nil, err
	}
	style := p.Style
	if style == "" {
		style = "notty"
	}
	wrap := p.WordWrap
	if wrap <= 0 {
		wrap = 120
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return []byte(out), nil
}
