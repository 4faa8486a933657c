package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain integer", "30000", "30000"},
		{"decimal", "6.25", "6.25"},
		{"currency symbol and separators", "$1,234.50", "1234.5"},
		{"percent sign", "15%", "15"},
		{"surrounding spaces", "  42 ", "42"},
		{"negative", "-80", "-80"},
		{"empty", "", "0"},
		{"garbage", "abc", "0"},
		{"half number", "12abc", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "Parse(%q) = %s", tt.input, got)
		})
	}
}

func TestPowInt(t *testing.T) {
	base := decimal.NewFromFloat(1.005)

	assert.True(t, PowInt(base, 0).Equal(decimal.NewFromInt(1)))
	assert.True(t, PowInt(base, 1).Equal(base))
	assert.Equal(t, "1.3488501525", PowInt(base, 60).StringFixed(10))

	inv := PowInt(base, -60)
	assert.Equal(t, "1.0000000000", inv.Mul(PowInt(base, 60)).StringFixed(10))
}

func TestPowInt_LargeExponentStaysBounded(t *testing.T) {
	daily := decimal.NewFromFloat(0.07).Div(decimal.NewFromInt(365))
	got := PowInt(decimal.NewFromInt(1).Add(daily), 365*40)
	assert.LessOrEqual(t, got.Exponent(), int32(0))
	assert.GreaterOrEqual(t, got.Exponent(), -2*SimulationPrecision)
	assert.InDelta(t, 16.44, got.InexactFloat64(), 0.01)
}

func TestPowIntBounded(t *testing.T) {
	base := decimal.NewFromFloat(1.005)

	got, saturated := PowIntBounded(base, 60, GrowthLimit)
	assert.False(t, saturated)
	assert.True(t, got.Equal(PowInt(base, 60)))

	got, saturated = PowIntBounded(base, 1<<40, GrowthLimit)
	assert.True(t, saturated)
	assert.True(t, got.GreaterThan(GrowthLimit))
	assert.Less(t, len(got.String()), 200)

	got, saturated = PowIntBounded(decimal.NewFromFloat(0.5), 1<<40, GrowthLimit)
	assert.False(t, saturated)
	assert.True(t, got.IsZero())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "483.32", Currency(decimal.RequireFromString("483.3199")))
	assert.Equal(t, "0.00", Currency(decimal.Zero))
	assert.Equal(t, "22.0", Percent(decimal.NewFromInt(22)))
	assert.Equal(t, "33.3", Percent(decimal.RequireFromString("33.333")))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "$1,234.50", Display(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-$80.00", Display(decimal.NewFromInt(-80)))
	assert.Equal(t, "$0.00", Display(decimal.Zero))
	assert.Equal(t, "$1,000,000.00", DisplayString("1000000.00"))
	assert.Equal(t, "N/A", DisplayString("N/A"))
}

func TestPercentConversions(t *testing.T) {
	assert.True(t, FromPercent(decimal.NewFromInt(6)).Equal(decimal.RequireFromString("0.06")))
	assert.True(t, ToPercent(decimal.RequireFromString("0.155")).Equal(decimal.RequireFromString("15.5")))
}
