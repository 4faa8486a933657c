package scenes

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
)

func mustInfo(t *testing.T, name string) calculation.CalculatorInfo {
	t.Helper()
	info, ok := calculation.Info(name)
	require.True(t, ok)
	return info
}

func TestPickerModel(t *testing.T) {
	m := NewPickerModel(calculation.Calculators())
	assert.Equal(t, calculation.CarLoan, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, calculation.CarLoan, m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, calculation.Growth, m.Selected())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, calculation.Growth, m.Selected())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tuimsg.CalculatorSelectedMsg{Name: calculation.Growth}, cmd())
	assert.Contains(t, m.View(), "Compound Growth")

	empty := NewPickerModel(nil)
	assert.Equal(t, "", empty.Selected())
	_, cmd = empty.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestFormModel_Editing(t *testing.T) {
	m := NewFormModel(mustInfo(t, calculation.CreditCard), domain.Form{"interest_rate": "18"})
	assert.Equal(t, calculation.CreditCard, m.Calculator())
	assert.Equal(t, domain.Form{"interest_rate": "18", "mode": "payment"}, m.Values())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1000")})
	assert.Equal(t, "1000", m.Values()["balance"])

	// balance -> interest_rate -> mode
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "months", m.Values()["mode"])
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "payment", m.Values()["mode"])
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "months", m.Values()["mode"])

	// wrap backwards to the last field and submit with enter
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(tuimsg.FormSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, calculation.CreditCard, msg.Calculator)
	assert.Equal(t, "months", msg.Form["mode"])
	assert.Equal(t, "1000", msg.Form["balance"])
}

func TestFormModel_FlagToggle(t *testing.T) {
	info := mustInfo(t, calculation.Paycheck)
	m := NewFormModel(info, nil)
	idx := -1
	for i, f := range info.Fields {
		if f.Kind == calculation.InputFlag {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	for i := 0; i < idx; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "true", m.Values()[info.Fields[idx].Key])
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "false", m.Values()[info.Fields[idx].Key])
}

func TestCycle(t *testing.T) {
	opts := []string{"a", "b", "c"}
	assert.Equal(t, "b", cycle(opts, "a", 1))
	assert.Equal(t, "c", cycle(opts, "a", -1))
	assert.Equal(t, "a", cycle(opts, " C ", 1))
	assert.Equal(t, "a", cycle(opts, "zzz", 1))
	assert.Equal(t, "x", cycle(nil, "x", 1))
}

func TestResultsModel(t *testing.T) {
	m := NewResultsModel()
	assert.Contains(t, m.View(), "No results")

	report := &domain.Report{
		Calculator: calculation.Growth,
		Title:      "Compound Growth",
		Fields: []domain.Field{
			domain.Currency("final_balance", "Final Balance", decimal.NewFromInt(17908)),
		},
		Warnings: []string{"something odd"},
	}
	for i := 0; i <= 10; i++ {
		report.Series = append(report.Series, domain.SeriesPoint{
			Period: i,
			Label:  "Year",
			Values: []domain.Field{
				domain.Currency("balance", "Balance", decimal.NewFromInt(int64(10000+i*700))),
				domain.Currency("contributions", "Contributions", decimal.NewFromInt(int64(i*600))),
			},
		})
	}
	m.SetSize(120, 200)
	m.SetReport(report)
	assert.Same(t, report, m.Report())

	view := m.View()
	assert.Contains(t, view, "Compound Growth")
	assert.Contains(t, view, "$17,908.00")
	assert.Contains(t, view, "! something odd")

	content := RenderReport(report, 120)
	assert.Contains(t, content, "Projection")
	assert.True(t, strings.Contains(content, "Contributions"))
}
