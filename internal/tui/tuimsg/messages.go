// Package tuimsg defines messages shared by the TUI root model and its
// scenes.
package tuimsg

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CalculatorSelectedMsg signals a calculator was picked from the list.
type CalculatorSelectedMsg struct {
	Name string
}

// FormSubmittedMsg asks the root model to run a calculation.
type FormSubmittedMsg struct {
	Calculator string
	Form       domain.Form
}

// CalculationCompleteMsg carries the report of a finished calculation.
type CalculationCompleteMsg struct {
	Calculator string
	Report     *domain.Report
	Err        error
}

// BackMsg asks the root model to return to the previous scene.
type BackMsg struct{}
