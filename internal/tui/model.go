package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/tui/scenes"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	engine *calculation.Engine
	// forms keeps the last inputs per calculator so returning to a form
	// restores them.
	forms map[string]domain.Form

	pickerModel  *scenes.PickerModel
	formModel    *scenes.FormModel
	resultsModel *scenes.ResultsModel

	err     error
	loading bool
}

// NewModel creates the application model over engine. initial pre-fills
// calculator forms, keyed by calculator name; it may be nil.
func NewModel(engine *calculation.Engine, initial map[string]domain.Form) Model {
	forms := make(map[string]domain.Form, len(initial))
	for name, f := range initial {
		forms[name] = f.Clone()
	}
	return Model{
		currentScene: ScenePicker,
		engine:       engine,
		forms:        forms,
		pickerModel:  scenes.NewPickerModel(calculation.Calculators()),
		resultsModel: scenes.NewResultsModel(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentScene returns the active scene.
func (m Model) CurrentScene() Scene { return m.currentScene }

// Err returns the error being displayed, if any.
func (m Model) Err() error { return m.err }

// Report returns the last calculated report.
func (m Model) Report() *domain.Report { return m.resultsModel.Report() }

// calculateCmd runs a calculator off the update loop.
func calculateCmd(engine *calculation.Engine, name string, form domain.Form) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.Calculate(context.Background(), name, form)
		return tuimsg.CalculationCompleteMsg{Calculator: name, Report: report, Err: err}
	}
}

func (m Model) openForm(name string) (Model, tea.Cmd) {
	info, ok := calculation.Info(name)
	if !ok {
		m.err = calculation.ErrUnknownCalculator
		return m, nil
	}
	m.formModel = scenes.NewFormModel(info, m.forms[name])
	m.formModel.SetSize(m.width, m.height)
	return m.navigate(SceneForm), nil
}

func (m Model) navigate(s Scene) Model {
	if s != m.currentScene {
		m.previousScene = m.currentScene
		m.currentScene = s
	}
	return m
}
