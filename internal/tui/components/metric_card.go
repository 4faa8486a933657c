package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// MetricCard displays a single headline result.
type MetricCard struct {
	Label    string
	Value    string
	Negative bool
	Width    int
}

// NewMetricCard creates a card for a report field.
func NewMetricCard(f domain.Field) *MetricCard {
	value := output.DisplayValue(f)
	return &MetricCard{
		Label:    f.Label,
		Value:    value,
		Negative: tuistyles.IsNegative(value),
		Width:    26,
	}
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Render(m.Value)
	if m.Negative {
		value = tuistyles.MetricTrendStyle(false).Bold(true).Render(m.Value)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value)
}

// RenderCompact returns an inline "label: value" form without a border.
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
}

// HeadlineCards builds cards for the named report fields that are present,
// in the given order.
func HeadlineCards(r *domain.Report, keys ...string) []*MetricCard {
	cards := make([]*MetricCard, 0, len(keys))
	for _, k := range keys {
		if f, ok := r.Field(k); ok {
			cards = append(cards, NewMetricCard(f))
		}
	}
	return cards
}

// MetricGrid renders multiple metric cards in a grid layout
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := []string{}
	currentRow := []string{}
	for i, card := range cards {
		currentRow = append(currentRow, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
