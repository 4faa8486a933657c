package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus selects which bracket and deduction column applies.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_jointly"
	FilingMarriedSeparately FilingStatus = "married_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// FilingStatuses lists every status in display order.
var FilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJointly,
	FilingMarriedSeparately,
	FilingHeadOfHousehold,
}

// ParseFilingStatus maps user text to a filing status. Unknown text is single.
func ParseFilingStatus(s string) FilingStatus {
	key := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "married_jointly", "married_filing_jointly", "mfj", "joint", "married":
		return FilingMarriedJointly
	case "married_separately", "married_filing_separately", "mfs", "separate":
		return FilingMarriedSeparately
	case "head_of_household", "hoh", "head":
		return FilingHeadOfHousehold
	default:
		return FilingSingle
	}
}

// Label returns a human readable name.
func (fs FilingStatus) Label() string {
	switch fs {
	case FilingMarriedJointly:
		return "Married Filing Jointly"
	case FilingMarriedSeparately:
		return "Married Filing Separately"
	case FilingHeadOfHousehold:
		return "Head of Household"
	default:
		return "Single"
	}
}

// TaxBracket is one marginal bracket. A nil Max marks the unbounded top
// bracket. Base is the tax owed at the previous bracket's Max.
type TaxBracket struct {
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
	Base decimal.Decimal  `yaml:"base" json:"base"`
}

// Unbounded reports whether this is the top bracket.
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// Covers reports whether income falls at or below the bracket's Max.
func (b TaxBracket) Covers(income decimal.Decimal) bool {
	return b.Max == nil || b.Max.GreaterThanOrEqual(income)
}

// FICARates holds the payroll tax parameters of one year.
type FICARates struct {
	SocialSecurityLimit decimal.Decimal `yaml:"social_security_limit" json:"socialSecurityLimit"`
	SocialSecurityRate  decimal.Decimal `yaml:"social_security_rate" json:"socialSecurityRate"`
	MedicareRate        decimal.Decimal `yaml:"medicare_rate" json:"medicareRate"`
}

// TaxYearConfig contains the federal tax tables of one year.
type TaxYearConfig struct {
	Year               int                              `yaml:"year" json:"year"`
	StandardDeductions map[FilingStatus]decimal.Decimal `yaml:"standard_deductions" json:"standardDeductions"`
	FICA               FICARates                        `yaml:"fica" json:"fica"`
	TaxBrackets        map[FilingStatus][]TaxBracket    `yaml:"tax_brackets" json:"taxBrackets"`
}

// StandardDeduction returns the deduction for a filing status.
func (c TaxYearConfig) StandardDeduction(status FilingStatus) decimal.Decimal {
	return c.StandardDeductions[status]
}

// Brackets returns the ordered brackets for a filing status.
func (c TaxYearConfig) Brackets(status FilingStatus) []TaxBracket {
	return c.TaxBrackets[status]
}

// Validate checks the structural invariants of the table: every filing status
// present, ascending maxima, a single unbounded bracket in last position and
// rates between 0 and 1.
func (c TaxYearConfig) Validate() error {
	if c.Year <= 0 {
		return fmt.Errorf("year must be positive")
	}
	if c.FICA.SocialSecurityLimit.IsNegative() {
		return fmt.Errorf("year %d: social security limit cannot be negative", c.Year)
	}
	for _, status := range FilingStatuses {
		if _, ok := c.StandardDeductions[status]; !ok {
			return fmt.Errorf("year %d: missing standard deduction for %s", c.Year, status)
		}
		brackets := c.TaxBrackets[status]
		if len(brackets) == 0 {
			return fmt.Errorf("year %d: missing brackets for %s", c.Year, status)
		}
		for i, b := range brackets {
			if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
				return fmt.Errorf("year %d %s bracket %d: rate must be between 0 and 1", c.Year, status, i)
			}
			last := i == len(brackets)-1
			if b.Unbounded() != last {
				return fmt.Errorf("year %d %s: only the last bracket may be unbounded", c.Year, status)
			}
			if i > 0 && !last && !b.Max.GreaterThan(*brackets[i-1].Max) {
				return fmt.Errorf("year %d %s bracket %d: maxima must be ascending", c.Year, status, i)
			}
		}
	}
	return nil
}
