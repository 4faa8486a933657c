package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// PickerModel lists the calculators.
type PickerModel struct {
	calculators   []calculation.CalculatorInfo
	selectedIndex int
	width         int
	height        int
}

// NewPickerModel creates a picker over the given calculators.
func NewPickerModel(calculators []calculation.CalculatorInfo) *PickerModel {
	return &PickerModel{calculators: calculators}
}

// SetSize updates the scene dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted calculator name, or "" when the list is empty.
func (m *PickerModel) Selected() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.calculators) {
		return m.calculators[m.selectedIndex].Name
	}
	return ""
}

// Update handles messages for the picker scene
func (m *PickerModel) Update(msg tea.Msg) (*PickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.calculators)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G"))):
		m.selectedIndex = max(len(m.calculators)-1, 0)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		name := m.Selected()
		if name == "" {
			return m, nil
		}
		return m, func() tea.Msg { return tuimsg.CalculatorSelectedMsg{Name: name} }
	}
	return m, nil
}

// View renders the calculator list
func (m *PickerModel) View() string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render("Choose a calculator"))
	b.WriteString("\n\n")
	for i, c := range m.calculators {
		line := "  " + c.Title
		if i == m.selectedIndex {
			b.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + c.Title))
		} else {
			b.WriteString(tuistyles.UnselectedItemStyle.Render(line))
		}
		b.WriteString(tuistyles.MetricLabelStyle.Render("  " + c.Name))
		b.WriteString("\n")
	}
	return tuistyles.BorderStyle.Render(b.String())
}
