package calculation

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
	"github.com/shopspring/decimal"
)

// FEDERAL TAX FORMULA:
//
// Reference mode reproduces the published calculator outputs exactly. Inside
// a bounded bracket it computes Base + (taxable - Max) * Rate, which equals
// Base at the bracket's upper edge and is below Base inside it. In the top
// bracket the subtracted term is zero, so the tax is Base + taxable * Rate.
//
// Progressive mode is ordinary marginal math, Base + (taxable - previousMax)
// * Rate. It is only used when selected explicitly.

// BracketMode selects the bracket formula.
type BracketMode int

const (
	BracketReference BracketMode = iota
	BracketProgressive
)

// String returns the mode's name.
func (m BracketMode) String() string {
	if m == BracketProgressive {
		return "progressive"
	}
	return "reference"
}

// ParseBracketMode accepts "reference" or "progressive".
func ParseBracketMode(s string) (BracketMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reference":
		return BracketReference, nil
	case "progressive":
		return BracketProgressive, nil
	default:
		return BracketReference, fmt.Errorf("unknown bracket mode %q", s)
	}
}

// FederalTaxCalculator applies the bracket tables of a tax lookup.
type FederalTaxCalculator struct {
	Tables *taxtable.Lookup
	Mode   BracketMode
}

// NewFederalTaxCalculator creates a calculator over tables.
func NewFederalTaxCalculator(tables *taxtable.Lookup, mode BracketMode) *FederalTaxCalculator {
	if tables == nil {
		tables = taxtable.Default()
	}
	return &FederalTaxCalculator{Tables: tables, Mode: mode}
}

// FederalTax returns the federal income tax owed on taxable income.
func (c *FederalTaxCalculator) FederalTax(taxable decimal.Decimal, status domain.FilingStatus, year int) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	cfg, _ := c.Tables.Config(year)
	return BracketTax(cfg.Brackets(status), taxable, c.Mode)
}

// MarginalRate returns the rate of the bracket taxable income falls into.
func (c *FederalTaxCalculator) MarginalRate(taxable decimal.Decimal, status domain.FilingStatus, year int) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	cfg, _ := c.Tables.Config(year)
	for _, b := range cfg.Brackets(status) {
		if b.Covers(taxable) {
			return b.Rate
		}
	}
	return decimal.Zero
}

// BracketTax evaluates an ordered bracket list. It returns 0 for non-positive
// income and when no bracket covers the income.
func BracketTax(brackets []domain.TaxBracket, taxable decimal.Decimal, mode BracketMode) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	prevMax := decimal.Zero
	for _, b := range brackets {
		if !b.Covers(taxable) {
			prevMax = *b.Max
			continue
		}
		if mode == BracketProgressive {
			return b.Base.Add(taxable.Sub(prevMax).Mul(b.Rate))
		}
		if b.Unbounded() {
			return b.Base.Add(taxable.Mul(b.Rate))
		}
		return b.Base.Add(taxable.Sub(*b.Max).Mul(b.Rate))
	}
	return decimal.Zero
}
