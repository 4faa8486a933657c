// Package money holds the decimal helpers shared by every calculator: lenient
// parsing of user input, bounded-precision powers and the two display formats
// (fixed 2-decimal currency, 1-decimal percentages).
package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// SimulationPrecision is the number of decimal places kept between iterations
// of a period-by-period simulation. Without it repeated multiplication grows
// the mantissa without bound.
const SimulationPrecision int32 = 12

var (
	hundred = decimal.NewFromInt(100)
	cleaner = strings.NewReplacer("$", "", ",", "", "%", "", " ", "", "_", "")
)

// Parse converts user input into a decimal. Empty or unparseable input is 0.
func Parse(s string) decimal.Decimal {
	s = cleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FromPercent converts a percentage (6.5) to a rate (0.065).
func FromPercent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// ToPercent converts a rate (0.065) to a percentage (6.5).
func ToPercent(r decimal.Decimal) decimal.Decimal {
	return r.Mul(hundred)
}

// Step rounds an intermediate simulation value.
func Step(d decimal.Decimal) decimal.Decimal {
	return d.Round(SimulationPrecision)
}

// GrowthLimit is the bound used by PowIntBounded. Beyond it (1+r)^n and
// (1+r)^n - 1 agree far past SimulationPrecision.
var GrowthLimit = decimal.New(1, 30)

// PowInt raises base to an integer exponent by repeated squaring, rounding
// every intermediate product to 2*SimulationPrecision places.
func PowInt(base decimal.Decimal, n int) decimal.Decimal {
	p, _ := powInt(base, n, decimal.Zero)
	return p
}

// PowIntBounded is PowInt for non-negative exponents that gives up once the
// magnitude of the power exceeds limit. The bool reports that it did, and the
// returned value is then only known to be larger than limit.
func PowIntBounded(base decimal.Decimal, n int, limit decimal.Decimal) (decimal.Decimal, bool) {
	if n < 0 {
		return PowInt(base, n), false
	}
	return powInt(base, n, limit)
}

func powInt(base decimal.Decimal, n int, limit decimal.Decimal) (decimal.Decimal, bool) {
	if n < 0 {
		p, _ := powInt(base, -n, decimal.Zero)
		if p.IsZero() {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(1).Div(p), false
	}
	bounded := limit.IsPositive()
	prec := 2 * SimulationPrecision
	result := decimal.NewFromInt(1)
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(b).Round(prec)
			if bounded && result.Abs().GreaterThan(limit) {
				return result, true
			}
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b).Round(prec)
			if bounded && b.Abs().GreaterThan(limit) {
				return b, true
			}
		}
	}
	return result, false
}

// Currency formats an amount with exactly two decimals ("1234.50").
func Currency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Percent formats a percentage value with one decimal ("22.0").
func Percent(d decimal.Decimal) string {
	return d.StringFixed(1)
}

// Display renders an amount the way a person reads it ("$1,234.50",
// "-$80.00"), using go-money's USD formatter.
func Display(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return gomoney.New(cents, gomoney.USD).Display()
}

// DisplayString re-renders a formatted currency string with Display. Strings
// that are not numbers (such as "N/A" or "Never") pass through unchanged.
func DisplayString(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return Display(d)
}
