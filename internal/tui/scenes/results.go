package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// headlines are the fields shown as cards for each calculator.
var headlines = map[string][]string{
	calculation.CarLoan:     {"monthly_payment", "total_interest", "total_cost"},
	calculation.CreditCard:  {"monthly_payment", "months_to_payoff", "total_interest"},
	calculation.Paycheck:    {"net_pay_per_period", "total_tax", "effective_tax_rate"},
	calculation.Million:     {"final_balance", "months_to_goal", "age_at_goal"},
	calculation.SavingsGoal: {"final_balance", "months_to_goal", "goal_date"},
	calculation.Growth:      {"final_balance", "total_contributions", "total_interest"},
}

// charted are the series keys plotted for each calculator.
var charted = map[string][]string{
	calculation.CarLoan:     {"balance"},
	calculation.CreditCard:  {"balance"},
	calculation.Million:     {"balance", "contributions"},
	calculation.SavingsGoal: {"balance", "contributions"},
	calculation.Growth:      {"balance", "contributions"},
}

// ResultsModel shows one report in a scrollable viewport.
type ResultsModel struct {
	report   *domain.Report
	viewport viewport.Model
	width    int
	height   int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{viewport: viewport.New(80, 20)}
}

// SetReport replaces the displayed report and scrolls to the top.
func (m *ResultsModel) SetReport(r *domain.Report) {
	m.report = r
	m.refresh()
	m.viewport.GotoTop()
}

// Report returns the displayed report.
func (m *ResultsModel) Report() *domain.Report { return m.report }

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-6, 5)
	m.refresh()
}

// Update scrolls the viewport.
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g", "home"))):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G", "end"))):
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil {
		return tuistyles.BorderStyle.Render("No results to display.\n\nPress ESC to go back.")
	}
	help := tuistyles.InfoStyle.Render("↑/↓ scroll • g/G top/bottom • e edit inputs • esc back")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), help)
}

func (m *ResultsModel) refresh() {
	if m.report == nil {
		return
	}
	m.viewport.SetContent(RenderReport(m.report, m.viewport.Width))
}

// RenderReport lays out a report for the terminal: headline cards, every
// result field, warnings, a chart and the projection table.
func RenderReport(r *domain.Report, width int) string {
	sections := []string{lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(r.Title)}

	if cards := components.HeadlineCards(r, headlines[r.Calculator]...); len(cards) > 0 {
		sections = append(sections, components.MetricGrid(cards, max(width/28, 1)))
	}

	var fields strings.Builder
	for _, f := range r.Fields {
		fields.WriteString(tuistyles.ParameterLabelStyle.Render(f.Label))
		fields.WriteString(tuistyles.MetricValueStyle.Render(output.DisplayValue(f)))
		fields.WriteString("\n")
	}
	sections = append(sections, fields.String())

	for _, w := range r.Warnings {
		sections = append(sections, tuistyles.WarningStyle.Render("! "+w))
	}

	if len(r.Series) > 0 {
		if keys := charted[r.Calculator]; len(keys) > 0 {
			chart := components.ChartFromReport(r, keys...).WithSize(max(width-2, 30), 10)
			chart.Title = "Projection"
			sections = append(sections, chart.Render())
		}
		sections = append(sections, renderSeriesTable(r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSeriesTable(r *domain.Report) string {
	out, err := output.ConsoleFormatter{}.Format([]*domain.Report{{
		Title:  "Schedule",
		Series: r.Series,
	}})
	if err != nil {
		return tuistyles.ErrorStyle.Render(err.Error())
	}
	return strings.TrimRight(string(out), "\n")
}
