package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validConfig() TaxYearConfig {
	brackets := []TaxBracket{
		{Max: ptr(10000), Rate: decimal.RequireFromString("0.10")},
		{Max: ptr(40000), Rate: decimal.RequireFromString("0.12"), Base: decimal.NewFromInt(1000)},
		{Rate: decimal.RequireFromString("0.22"), Base: decimal.NewFromInt(4600)},
	}
	cfg := TaxYearConfig{
		Year:               2030,
		StandardDeductions: map[FilingStatus]decimal.Decimal{},
		TaxBrackets:        map[FilingStatus][]TaxBracket{},
	}
	for _, s := range FilingStatuses {
		cfg.StandardDeductions[s] = decimal.NewFromInt(15000)
		cfg.TaxBrackets[s] = brackets
	}
	return cfg
}

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FilingStatus
	}{
		{"single", FilingSingle},
		{"Married Filing Jointly", FilingMarriedJointly},
		{"mfj", FilingMarriedJointly},
		{"married-separately", FilingMarriedSeparately},
		{"HOH", FilingHeadOfHousehold},
		{"", FilingSingle},
		{"widowed", FilingSingle},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFilingStatus(tt.in))
		})
	}
	assert.Equal(t, "Head of Household", FilingHeadOfHousehold.Label())
}

func TestTaxBracket(t *testing.T) {
	b := TaxBracket{Max: ptr(100)}
	assert.False(t, b.Unbounded())
	assert.True(t, b.Covers(decimal.NewFromInt(100)))
	assert.False(t, b.Covers(decimal.NewFromInt(101)))
	assert.True(t, TaxBracket{}.Covers(decimal.NewFromInt(1e9)))
}

func TestTaxYearConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*TaxYearConfig)
		errMsg string
	}{
		{"zero year", func(c *TaxYearConfig) { c.Year = 0 }, "year must be positive"},
		{"missing deduction", func(c *TaxYearConfig) {
			delete(c.StandardDeductions, FilingHeadOfHousehold)
		}, "missing standard deduction for head_of_household"},
		{"missing brackets", func(c *TaxYearConfig) {
			delete(c.TaxBrackets, FilingSingle)
		}, "missing brackets for single"},
		{"rate above one", func(c *TaxYearConfig) {
			c.TaxBrackets[FilingSingle] = []TaxBracket{{Rate: decimal.NewFromInt(2)}}
		}, "rate must be between 0 and 1"},
		{"unbounded in the middle", func(c *TaxYearConfig) {
			c.TaxBrackets[FilingSingle] = []TaxBracket{{Rate: decimal.Zero}, {Max: ptr(10), Rate: decimal.Zero}}
		}, "only the last bracket may be unbounded"},
		{"descending maxima", func(c *TaxYearConfig) {
			c.TaxBrackets[FilingSingle] = []TaxBracket{
				{Max: ptr(100), Rate: decimal.Zero},
				{Max: ptr(50), Rate: decimal.Zero},
				{Rate: decimal.Zero},
			}
		}, "maxima must be ascending"},
		{"negative wage base", func(c *TaxYearConfig) {
			c.FICA.SocialSecurityLimit = decimal.NewFromInt(-1)
		}, "social security limit cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
