package taxtable

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTablesValidate(t *testing.T) {
	for _, cfg := range Builtin() {
		assert.NoError(t, cfg.Validate(), "year %d", cfg.Year)
	}
}

func TestBuiltinBasesMatchPreviousBracket(t *testing.T) {
	for _, cfg := range Builtin() {
		for _, status := range domain.FilingStatuses {
			brackets := cfg.Brackets(status)
			for i := 1; i < len(brackets); i++ {
				prev := brackets[i-1]
				lower := decimal.Zero
				if i > 1 {
					lower = *brackets[i-2].Max
				}
				expected := prev.Base.Add(prev.Max.Sub(lower).Mul(prev.Rate))
				assert.True(t, expected.Equal(brackets[i].Base),
					"%d %s bracket %d: base %s, want %s", cfg.Year, status, i, brackets[i].Base, expected)
			}
		}
	}
}

func TestLookupConfig(t *testing.T) {
	lookup := Default()

	tests := []struct {
		name     string
		year     int
		wantYear int
		wantOK   bool
	}{
		{"2024 exact", 2024, 2024, true},
		{"2023 exact", 2023, 2023, true},
		{"future year falls back", 2031, 2024, false},
		{"zero year falls back", 0, 2024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := lookup.Config(tt.year)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantYear, cfg.Year)
		})
	}
}

func TestLookupProjections(t *testing.T) {
	lookup := Default()

	assert.True(t, decimal.NewFromInt(29200).Equal(lookup.StandardDeduction(domain.FilingMarriedJointly, 2024)))
	assert.True(t, decimal.NewFromInt(20800).Equal(lookup.StandardDeduction(domain.FilingHeadOfHousehold, 2023)))
	assert.True(t, decimal.NewFromInt(168600).Equal(lookup.FICARates(2024).SocialSecurityLimit))
	assert.True(t, decimal.NewFromInt(160200).Equal(lookup.FICARates(2023).SocialSecurityLimit))
	assert.True(t, decimal.NewFromInt(14600).Equal(lookup.StandardDeduction(domain.FilingSingle, 1999)))
	assert.Equal(t, []int{2024, 2023}, lookup.Years())
}

func TestEmptyLookup(t *testing.T) {
	cfg, ok := New().Config(2024)
	assert.False(t, ok)
	assert.Equal(t, 0, cfg.Year)
	assert.True(t, New().StandardDeduction(domain.FilingSingle, 2024).IsZero())
}

func TestMerge(t *testing.T) {
	override := builtin2024()
	override.StandardDeductions[domain.FilingSingle] = decimal.NewFromInt(15000)
	future := builtin2024()
	future.Year = 2025

	merged := Default().Merge(override, future)

	assert.Equal(t, []int{2025, 2024, 2023}, merged.Years())
	assert.True(t, decimal.NewFromInt(15000).Equal(merged.StandardDeduction(domain.FilingSingle, 2024)))
	// The original lookup is untouched.
	assert.True(t, decimal.NewFromInt(14600).Equal(Default().StandardDeduction(domain.FilingSingle, 2024)))

	cfg, ok := merged.Config(2030)
	require.False(t, ok)
	assert.Equal(t, 2025, cfg.Year)
}
