package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pickerModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		if m.formModel != nil {
			m.formModel.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Scene), nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.BackMsg:
		return m.back(), nil

	case tuimsg.CalculatorSelectedMsg:
		return m.openForm(msg.Name)

	case tuimsg.FormSubmittedMsg:
		m.forms[msg.Calculator] = msg.Form.Clone()
		m.loading = true
		return m, calculateCmd(m.engine, msg.Calculator, msg.Form)

	case tuimsg.CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultsModel.SetReport(msg.Report)
		return m.navigate(SceneResults), nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	editing := m.currentScene == SceneForm
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !editing {
			return m, tea.Quit
		}
	case "?":
		if !editing {
			return m.navigate(SceneHelp), nil
		}
	case "esc":
		return m.back(), nil
	case "e":
		if m.currentScene == SceneResults && m.formModel != nil {
			return m.navigate(SceneForm), nil
		}
	}

	return m.updateCurrentScene(msg)
}

// back returns from the form to the picker and from results or help to
// wherever they were opened.
func (m Model) back() Model {
	switch m.currentScene {
	case SceneForm:
		if m.formModel != nil {
			m.forms[m.formModel.Calculator()] = m.formModel.Values()
		}
		return m.navigate(ScenePicker)
	case SceneResults:
		return m.navigate(SceneForm)
	case SceneHelp:
		if m.previousScene == SceneHelp {
			return m.navigate(ScenePicker)
		}
		return m.navigate(m.previousScene)
	}
	return m
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case ScenePicker:
		m.pickerModel, cmd = m.pickerModel.Update(msg)
	case SceneForm:
		if m.formModel != nil {
			m.formModel, cmd = m.formModel.Update(msg)
		}
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
