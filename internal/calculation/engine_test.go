package calculation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	NopLogger
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

var sampleForms = map[string]domain.Form{
	CarLoan: {
		"car_price": "30000", "down_payment": "5000", "loan_term": "5",
		"interest_rate": "6", "monthly_budget": "450", "monthly_income": "4000",
	},
	CreditCard:  {"balance": "5000", "interest_rate": "20", "monthly_payment": "100"},
	Paycheck:    {"salary": "85000", "state_tax_rate": "4", "children_under_17": "1", "pay_frequency": "biweekly"},
	Million:     {"current_age": "30", "target_age": "60", "contribution": "500", "annual_return": "7"},
	SavingsGoal: {"goal": "20000", "contribution": "400", "annual_return": "4", "timeline_months": "36"},
	Growth:      {"principal": "10000", "contribution": "200", "annual_return": "6", "years": "20"},
}

func newTestEngine() *Engine {
	return NewEngine(taxtable.Default(), referenceDate)
}

func TestCalculatorsRegistry(t *testing.T) {
	infos := Calculators()
	require.Len(t, infos, 6)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Title)
		assert.NotEmpty(t, info.Fields)
	}
	assert.Equal(t, []string{CarLoan, CreditCard, Paycheck, Million, SavingsGoal, Growth}, names)

	info, ok := Info(Million)
	require.True(t, ok)
	assert.Equal(t, "1000000", info.Defaults()["goal"])

	_, ok = Info("mortgage")
	assert.False(t, ok)
}

func TestEngineCalculateEveryCalculator(t *testing.T) {
	engine := newTestEngine()

	for name, form := range sampleForms {
		t.Run(name, func(t *testing.T) {
			report, err := engine.Calculate(context.Background(), name, form)
			require.NoError(t, err)
			assert.Equal(t, name, report.Calculator)
			assert.NotEmpty(t, report.Title)
			assert.NotEmpty(t, report.Fields)
		})
	}
}

func TestEngineIsIdempotent(t *testing.T) {
	engine := newTestEngine()

	for name, form := range sampleForms {
		t.Run(name, func(t *testing.T) {
			first, err := engine.Calculate(context.Background(), name, form)
			require.NoError(t, err)
			second, err := engine.Calculate(context.Background(), name, form.Clone())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestEngineReportValues(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()

	car, err := engine.Calculate(ctx, CarLoan, sampleForms[CarLoan])
	require.NoError(t, err)
	assert.Equal(t, "483.32", car.Value("monthly_payment"))
	assert.Equal(t, "false", car.Value("is_affordable"))
	assert.Equal(t, "600.00", car.Value("recommended_max_payment"))
	assert.Len(t, car.Series, 60)
	assert.Equal(t, []string{"payment", "principal", "interest", "balance"}, car.SeriesKeys())

	card, err := engine.Calculate(ctx, CreditCard, domain.Form{"balance": "5000", "interest_rate": "20", "monthly_payment": "80"})
	require.NoError(t, err)
	assert.Equal(t, domain.Never, card.Value("months_to_payoff"))
	assert.Equal(t, domain.Never, card.Value("total_interest"))
	assert.Equal(t, domain.Never, card.Value("payoff_date"))
	assert.Equal(t, domain.NotAvailable, card.Value("interest_saved"))
	assert.Len(t, card.Series, 1)
	assert.NotEmpty(t, card.Warnings)

	card, err = engine.Calculate(ctx, CreditCard, sampleForms[CreditCard])
	require.NoError(t, err)
	assert.Equal(t, "109", card.Value("months_to_payoff"))
	assert.Equal(t, "2033-02-15", card.Value("payoff_date"))
	assert.Equal(t, "true", card.Value("interest_saved_lower_bound"))

	pay, err := engine.Calculate(ctx, Paycheck, domain.Form{})
	require.NoError(t, err)
	assert.Equal(t, domain.NotAvailable, pay.Value("take_home_percent"))
	assert.Equal(t, "2024", pay.Value("tax_year"))

	million, err := engine.Calculate(ctx, Million, sampleForms[Million])
	require.NoError(t, err)
	assert.Equal(t, "Age 30", million.Series[0].Label)
	assert.Equal(t, "Age 60", million.Series[len(million.Series)-1].Label)
}

func TestEngineTaxYearFallback(t *testing.T) {
	logger := &recordingLogger{}
	engine := newTestEngine()
	engine.Logger = logger

	report, err := engine.Calculate(context.Background(), Paycheck, domain.Form{"salary": "50000", "tax_year": "2031"})
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "tax year 2031 not available, using 2024", report.Warnings[0])
	assert.Equal(t, "2024", report.Value("tax_year"))
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "tax year 2031")
}

func TestEngineDefaultTaxYearAndMode(t *testing.T) {
	engine := newTestEngine()
	engine.TaxYear = 2023
	engine.Mode = BracketProgressive

	report, err := engine.Calculate(context.Background(), Paycheck, domain.Form{"salary": "50000"})
	require.NoError(t, err)
	assert.Equal(t, "2023", report.Value("tax_year"))
	assert.Equal(t, "13850.00", report.Value("standard_deduction"))
	assert.Equal(t, "progressive", report.Value("bracket_mode"))
}

func TestEngineErrors(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Calculate(context.Background(), "mortgage", domain.Form{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCalculator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Calculate(ctx, Growth, domain.Form{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngineNilFormAndLogger(t *testing.T) {
	engine := &Engine{Tables: taxtable.Default(), ReferenceDate: referenceDate}

	report, err := engine.Calculate(context.Background(), Growth, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.00", report.Value("final_balance"))
}

func TestEngineFinishesOnHugeInputs(t *testing.T) {
	forms := map[string]domain.Form{
		CarLoan:     {"car_price": "30000", "down_payment": "5000", "loan_term": "10000000000", "interest_rate": "6", "monthly_budget": "450"},
		CreditCard:  {"balance": "5000", "interest_rate": "20", "mode": "months", "target_months": "1e12"},
		Million:     {"current_age": "-1e19", "target_age": "1e19", "contribution": "500", "annual_return": "7"},
		SavingsGoal: {"goal": "20000", "contribution": "400", "annual_return": "4", "timeline_months": "1e30"},
		Growth:      {"principal": "10000", "annual_return": "6", "years": "99999999999999999999", "goal": "50000"},
	}

	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := newTestEngine().Calculate(context.Background(), name, form)
				done <- err
			}()
			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(10 * time.Second):
				t.Fatalf("%s did not finish", name)
			}
		})
	}
}
