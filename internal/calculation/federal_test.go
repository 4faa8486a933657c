package calculation

import (
	"fmt"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFederalTaxReferenceMode(t *testing.T) {
	calc := NewFederalTaxCalculator(taxtable.Default(), BracketReference)

	tests := []struct {
		name     string
		taxable  string
		status   domain.FilingStatus
		year     int
		expected string
	}{
		{"zero income", "0", domain.FilingSingle, 2024, "0"},
		{"negative income", "-5000", domain.FilingSingle, 2024, "0"},
		{"first bracket edge", "11600", domain.FilingSingle, 2024, "0"},
		{"second bracket edge", "47150", domain.FilingSingle, 2024, "1160"},
		{"inside second bracket is below base", "30000", domain.FilingSingle, 2024, "-898"},
		{"top bracket taxes whole income", "1000000", domain.FilingSingle, 2024, "553647.25"},
		{"married jointly edge", "94300", domain.FilingMarriedJointly, 2024, "2320"},
		{"2023 head of household edge", "59850", domain.FilingHeadOfHousehold, 2023, "1570"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.FederalTax(dec(tt.taxable), tt.status, tt.year)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestFederalTaxProgressiveMode(t *testing.T) {
	calc := NewFederalTaxCalculator(taxtable.Default(), BracketProgressive)

	tests := []struct {
		name     string
		taxable  string
		expected string
	}{
		{"zero", "0", "0"},
		{"first bracket", "10000", "1000"},
		{"second bracket", "30000", "3368"},
		{"third bracket", "85400", "13841"},
		{"top bracket", "1000000", "328187.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.FederalTax(dec(tt.taxable), domain.FilingSingle, 2024)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestBracketProperties(t *testing.T) {
	lookup := taxtable.Default()

	for _, year := range lookup.Years() {
		cfg, ok := lookup.Config(year)
		require.True(t, ok)
		for _, status := range domain.FilingStatuses {
			brackets := cfg.Brackets(status)

			t.Run(fmt.Sprintf("%d/%s", year, status), func(t *testing.T) {
				for _, mode := range []BracketMode{BracketReference, BracketProgressive} {
					assert.True(t, BracketTax(brackets, decimal.Zero, mode).IsZero())
				}

				// Reference mode: tax at each bounded bracket's max equals its base.
				for _, b := range brackets {
					if b.Unbounded() {
						continue
					}
					got := BracketTax(brackets, *b.Max, BracketReference)
					assert.True(t, b.Base.Equal(got), "%d %s: tax at %s is %s, want %s", year, status, b.Max, got, b.Base)
				}

				// Progressive mode: tax at a bracket's max is the next base and
				// tax never decreases with income.
				for i, b := range brackets[:len(brackets)-1] {
					got := BracketTax(brackets, *b.Max, BracketProgressive)
					assert.True(t, brackets[i+1].Base.Equal(got), "%d %s: tax at %s is %s", year, status, b.Max, got)
				}
				prev := decimal.Zero
				for income := int64(0); income <= 1_000_000; income += 2_500 {
					got := BracketTax(brackets, decimal.NewFromInt(income), BracketProgressive)
					assert.True(t, got.GreaterThanOrEqual(prev), "%d %s: tax decreased at %d", year, status, income)
					prev = got
				}
			})
		}
	}
}

func TestBracketTaxWithoutBrackets(t *testing.T) {
	assert.True(t, BracketTax(nil, dec("50000"), BracketReference).IsZero())
}

func TestMarginalRate(t *testing.T) {
	calc := NewFederalTaxCalculator(nil, BracketReference)

	assert.True(t, dec("0.22").Equal(calc.MarginalRate(dec("85400"), domain.FilingSingle, 2024)))
	assert.True(t, dec("0.37").Equal(calc.MarginalRate(dec("2000000"), domain.FilingMarriedJointly, 2024)))
	assert.True(t, calc.MarginalRate(decimal.Zero, domain.FilingSingle, 2024).IsZero())
}

func TestParseBracketMode(t *testing.T) {
	mode, err := ParseBracketMode("Progressive")
	require.NoError(t, err)
	assert.Equal(t, BracketProgressive, mode)

	mode, err = ParseBracketMode("")
	require.NoError(t, err)
	assert.Equal(t, BracketReference, mode)

	_, err = ParseBracketMode("flat")
	assert.Error(t, err)
}
