package tui

import "fmt"

// Scene represents different screens in the TUI
type Scene int

const (
	ScenePicker Scene = iota
	SceneForm
	SceneResults
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case ScenePicker:
		return "Calculators"
	case SceneForm:
		return "Inputs"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return fmt.Sprintf("Scene(%d)", int(s))
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
