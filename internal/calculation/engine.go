package calculation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
)

// DefaultTaxYear is used when neither the form nor the engine names a year.
const DefaultTaxYear = 2024

// ErrUnknownCalculator is returned for a calculator name that is not registered.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Engine runs the registered calculators. It is read-only once configured
// and safe for concurrent use.
type Engine struct {
	Tables        *taxtable.Lookup
	ReferenceDate time.Time // start date for payoff and goal dates
	TaxYear       int       // used when a paycheck form has no tax_year
	Mode          BracketMode
	Logger        Logger
}

// NewEngine creates an engine over tables with the given reference date.
func NewEngine(tables *taxtable.Lookup, reference time.Time) *Engine {
	if tables == nil {
		tables = taxtable.Default()
	}
	return &Engine{
		Tables:        tables,
		ReferenceDate: reference,
		TaxYear:       DefaultTaxYear,
		Mode:          BracketReference,
		Logger:        NopLogger{},
	}
}

// Calculators lists the registered calculators in display order.
func Calculators() []CalculatorInfo {
	out := make([]CalculatorInfo, 0, len(registry))
	for _, r := range registry {
		out = append(out, r.info)
	}
	return out
}

// Info returns the description of a named calculator.
func Info(name string) (CalculatorInfo, bool) {
	r, ok := lookupCalculator(name)
	return r.info, ok
}

// Calculate runs the named calculator on form. Degenerate inputs never fail;
// the only errors are an unknown name and a cancelled context.
func (e *Engine) Calculate(ctx context.Context, name string, form domain.Form) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reg, ok := lookupCalculator(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculator, name)
	}
	if form == nil {
		form = domain.Form{}
	}
	e.logger().Debugf("running %s with %d inputs", name, len(form))

	report := reg.run(e, form)
	report.Calculator = reg.info.Name
	report.Title = reg.info.Title
	for _, w := range report.Warnings {
		e.logger().Warnf("%s: %s", name, w)
	}
	return report, nil
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *Engine) federal() *FederalTaxCalculator {
	return NewFederalTaxCalculator(e.Tables, e.Mode)
}

func (e *Engine) defaultTaxYear() int {
	if e.TaxYear > 0 {
		return e.TaxYear
	}
	return DefaultTaxYear
}

func (e *Engine) paycheck(f domain.Form) *domain.Report {
	in := PaycheckInputFromForm(f, e.defaultTaxYear())
	fed := e.federal()
	res := NewPaycheckCalculator(fed).Calculate(in)
	report := PaycheckReport(in, res)
	if res.TaxYear != in.TaxYear {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("tax year %d not available, using %d", in.TaxYear, res.TaxYear))
	}
	if e.Mode == BracketProgressive {
		report.Fields = append(report.Fields, domain.Text("bracket_mode", "Bracket Mode", e.Mode.String()))
	}
	return report
}
