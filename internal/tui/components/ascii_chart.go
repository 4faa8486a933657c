package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// DataSeries is one plotted line.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws report series as a character line chart.
type ASCIIChart struct {
	Title  string
	Series []*DataSeries
	Labels []string // first and last are printed under the axis
	Width  int
	Height int
}

var seriesColors = []lipgloss.Color{
	tuistyles.ColorPrimary,
	tuistyles.ColorAccent,
	tuistyles.ColorSecondary,
	tuistyles.ColorSuccess,
}

// NewASCIIChart creates an empty chart.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{Title: title, Width: 60, Height: 12}
}

// ChartFromReport plots the named series keys of a report. Keys the series
// does not carry are skipped.
func ChartFromReport(r *domain.Report, keys ...string) *ASCIIChart {
	c := NewASCIIChart(r.Title)
	if len(r.Series) == 0 {
		return c
	}
	for _, p := range r.Series {
		c.Labels = append(c.Labels, p.Label)
	}
	for _, k := range keys {
		points := make([]float64, 0, len(r.Series))
		label := k
		found := false
		for _, p := range r.Series {
			for _, v := range p.Values {
				if v.Key != k {
					continue
				}
				found = true
				label = v.Label
				d, err := decimal.NewFromString(v.Value)
				if err != nil {
					d = decimal.Zero
				}
				points = append(points, d.InexactFloat64())
			}
		}
		if found {
			c.AddSeries(label, points)
		}
	}
	return c
}

// AddSeries adds a data series with the next palette color.
func (c *ASCIIChart) AddSeries(name string, points []float64) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  seriesColors[len(c.Series)%len(seriesColors)],
	})
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No projection to chart")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		content.WriteString("\n\n")
	}

	lo, hi := c.bounds()
	content.WriteString(c.renderGrid(lo, hi))
	if len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

// bounds returns the value range across all series, padded by 10%.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 0) {
		return 0, 1
	}
	if hi == lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}

const yAxisWidth = 10

func (c *ASCIIChart) renderGrid(lo, hi float64) string {
	chartWidth := max(c.Width-yAxisWidth-3, 2)
	height := max(c.Height, 2)

	grid := make([][]rune, height)
	owner := make([][]int, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
		owner[i] = make([]int, chartWidth)
	}

	toX := func(i, n int) int {
		if n <= 1 {
			return 0
		}
		return int(float64(i) / float64(n-1) * float64(chartWidth-1))
	}
	toY := func(v float64) int {
		return height - 1 - int((v-lo)/(hi-lo)*float64(height-1))
	}

	for idx, s := range c.Series {
		mark := seriesMark(idx)
		for i, p := range s.Points {
			x, y := toX(i, len(s.Points)), toY(p)
			if i > 0 {
				drawLine(grid, owner, toX(i-1, len(s.Points)), toY(s.Points[i-1]), x, y, mark, idx)
			} else {
				plot(grid, owner, x, y, mark, idx)
			}
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	var out strings.Builder
	for i, row := range grid {
		out.WriteString(axis.Render(chartValue(hi - float64(i)/float64(height-1)*(hi-lo))))
		out.WriteString(" │ ")
		for j, r := range row {
			if r == ' ' {
				out.WriteRune(r)
				continue
			}
			out.WriteString(lipgloss.NewStyle().Foreground(c.Series[owner[i][j]].Color).Render(string(r)))
		}
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth+1))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		first, last := c.Labels[0], c.Labels[len(c.Labels)-1]
		gap := max(chartWidth+3-len(first)-len(last), 1)
		out.WriteString(strings.Repeat(" ", yAxisWidth))
		out.WriteString(tuistyles.MetricLabelStyle.Render(first + strings.Repeat(" ", gap) + last))
		out.WriteString("\n")
	}
	return out.String()
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		mark := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesMark(i)))
		items = append(items, fmt.Sprintf("%s %s", mark, s.Name))
	}
	return tuistyles.MetricLabelStyle.Render(strings.Join(items, "   "))
}

func seriesMark(index int) rune {
	marks := []rune{'●', '■', '▲', '♦'}
	return marks[index%len(marks)]
}

func plot(grid [][]rune, owner [][]int, x, y int, mark rune, idx int) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = mark
	owner[y][x] = idx
}

// drawLine connects two points with Bresenham's algorithm.
func drawLine(grid [][]rune, owner [][]int, x0, y0, x1, y1 int, mark rune, idx int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		plot(grid, owner, x0, y0, mark, idx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// chartValue abbreviates an axis value.
func chartValue(v float64) string {
	switch {
	case math.Abs(v) >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case math.Abs(v) >= 1_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
