package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// ConsoleFormatter renders reports as aligned plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(reports []*domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		title := strings.ToUpper(heading(r))
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", len(title)))

		labelWidth := 0
		for _, f := range r.Fields {
			labelWidth = max(labelWidth, len(f.Label))
		}
		for _, f := range r.Fields {
			fmt.Fprintf(&buf, "  %-*s  %s\n", labelWidth, f.Label, DisplayValue(f))
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(&buf, "  ! %s\n", w)
		}

		if len(r.Series) > 0 {
			fmt.Fprintln(&buf)
			writeTable(&buf, seriesHeaders(r), seriesRows(r))
		}
	}
	return buf.Bytes(), nil
}

func seriesRows(r *domain.Report) [][]string {
	rows := make([][]string, 0, len(r.Series))
	for _, p := range r.Series {
		rows = append(rows, seriesRow(p))
	}
	return rows
}

// writeTable writes right-aligned columns with a dashed rule under the header.
func writeTable(buf *bytes.Buffer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i == 0 {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			} else {
				parts[i] = fmt.Sprintf("%*s", widths[i], cell)
			}
		}
		fmt.Fprintf(buf, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(headers)
	rule := make([]string, len(headers))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	line(rule)
	for _, row := range rows {
		line(row)
	}
}
