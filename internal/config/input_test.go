package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenarios = `
reference_date: 2024-06-01
tax_year: 2023
scenarios:
  - name: Commuter car
    calculator: car-loan
    inputs:
      car_price: 30000
      down_payment: "$5,000"
      loan_term: 5
      interest_rate: 6.5
  - calculator: Credit-Card
    inputs:
      balance: 5000
      interest_rate: 20
      monthly_payment: 100
  - calculator: growth
`

func TestParseScenarios(t *testing.T) {
	file, err := NewInputParser().Parse([]byte(sampleScenarios))
	require.NoError(t, err)

	assert.Equal(t, 2023, file.TaxYear)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), file.Reference(time.Time{}))
	require.Len(t, file.Scenarios, 3)

	car := file.Scenarios[0]
	assert.Equal(t, "Commuter car", car.Name)
	assert.Equal(t, calculation.CarLoan, car.Calculator)
	assert.Equal(t, "30000", car.Inputs["car_price"])
	assert.Equal(t, "6.5", car.Inputs["interest_rate"])
	assert.Equal(t, "5000", car.Inputs.Decimal("down_payment").String())

	card := file.Scenarios[1]
	assert.Equal(t, calculation.CreditCard, card.Calculator)
	assert.Equal(t, "credit-card-2", card.Name)

	growth := file.Scenarios[2]
	assert.NotNil(t, growth.Inputs)
	assert.Equal(t, "growth-3", growth.Name)
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", "scenarios: [", "failed to parse YAML"},
		{"empty", "scenarios: []", "at least one scenario"},
		{"unknown calculator", "scenarios:\n  - calculator: mortgage\n", "unknown calculator"},
		{"bad date", "reference_date: June 1\nscenarios:\n  - calculator: growth\n", "reference_date"},
		{"negative year", "tax_year: -1\nscenarios:\n  - calculator: growth\n", "tax_year"},
		{"bad bracket mode", "bracket_mode: flat\nscenarios:\n  - calculator: growth\n", "bracket mode"},
		{
			"duplicate names",
			"scenarios:\n  - name: a\n    calculator: growth\n  - name: a\n    calculator: million\n",
			"duplicate name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScenarios), 0o644))

	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Scenarios, 3)

	_, err = NewInputParser().LoadFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestReferenceDefault(t *testing.T) {
	def := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	file := &ScenarioFile{}
	assert.Equal(t, def, file.Reference(def))
}
