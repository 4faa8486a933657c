package scenes

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// FormModel edits the inputs of one calculator. Text fields are typed;
// choice fields cycle with left/right and flags toggle with space.
type FormModel struct {
	info    calculation.CalculatorInfo
	inputs  []textinput.Model
	focused int
	width   int
	height  int
}

// NewFormModel builds a form for info pre-filled from values, falling back
// to the field defaults.
func NewFormModel(info calculation.CalculatorInfo, values domain.Form) *FormModel {
	m := &FormModel{info: info}
	for _, f := range info.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 20
		ti.Width = 20
		ti.Placeholder = placeholder(f)
		v := values[f.Key]
		if v == "" {
			v = f.Default
		}
		ti.SetValue(v)
		m.inputs = append(m.inputs, ti)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func placeholder(f calculation.InputField) string {
	switch f.Kind {
	case calculation.InputCurrency:
		return "0.00"
	case calculation.InputPercent:
		return "0"
	case calculation.InputDate:
		return domain.DateLayout
	case calculation.InputFlag:
		return "false"
	case calculation.InputChoice:
		return strings.Join(f.Options, "/")
	default:
		return ""
	}
}

// Calculator returns the name of the calculator being edited.
func (m *FormModel) Calculator() string { return m.info.Name }

// Values returns the current field values; empty fields are omitted.
func (m *FormModel) Values() domain.Form {
	out := domain.Form{}
	for i, f := range m.info.Fields {
		if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
			out[f.Key] = v
		}
	}
	return out
}

// SetSize updates the scene dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	field := m.info.Fields[m.focused]
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s"))):
		return m, m.submit()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if m.focused == len(m.inputs)-1 {
			return m, m.submit()
		}
		return m, m.move(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "down"))):
		return m, m.move(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
		return m, m.move(-1)
	case field.Kind == calculation.InputChoice &&
		key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "right"))):
		step := 1
		if keyMsg.String() == "left" {
			step = -1
		}
		m.inputs[m.focused].SetValue(cycle(field.Options, m.inputs[m.focused].Value(), step))
		return m, nil
	case field.Kind == calculation.InputFlag &&
		key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "left", "right"))):
		current := domain.Form{field.Key: m.inputs[m.focused].Value()}
		if current.Bool(field.Key) {
			m.inputs[m.focused].SetValue("false")
		} else {
			m.inputs[m.focused].SetValue("true")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) submit() tea.Cmd {
	name, values := m.info.Name, m.Values()
	return func() tea.Msg {
		return tuimsg.FormSubmittedMsg{Calculator: name, Form: values}
	}
}

func (m *FormModel) move(step int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + step + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focused].Focus()
}

// cycle returns the option step positions away from current; an unknown
// current value starts from the first option.
func cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, strings.ToLower(strings.TrimSpace(current)))
	if i < 0 {
		return options[0]
	}
	return options[(i+step+len(options))%len(options)]
}

// View renders the form
func (m *FormModel) View() string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(m.info.Title))
	b.WriteString("\n\n")
	for i, f := range m.info.Fields {
		label := tuistyles.ParameterLabelStyle.Render(f.Label)
		if i == m.focused {
			label = tuistyles.SelectedItemStyle.Width(28).Render(f.Label)
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.InfoStyle.Render("enter/tab next • ←/→ change choice • ctrl+s calculate • esc back"))
	return tuistyles.BorderStyle.Render(b.String())
}
