package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PayFrequency is the paycheck cadence.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiweekly    PayFrequency = "biweekly"
	PaySemimonthly PayFrequency = "semimonthly"
	PayMonthly     PayFrequency = "monthly"
	PayYearly      PayFrequency = "yearly"
)

var payPeriods = map[PayFrequency]int{
	PayWeekly:      52,
	PayBiweekly:    26,
	PaySemimonthly: 24,
	PayMonthly:     12,
	PayYearly:      1,
}

// ParsePayFrequency maps user text to a pay frequency; unknown text is monthly.
func ParsePayFrequency(s string) PayFrequency {
	switch normalizeFrequency(s) {
	case "weekly":
		return PayWeekly
	case "biweekly", "fortnightly":
		return PayBiweekly
	case "semimonthly", "twicemonthly":
		return PaySemimonthly
	case "yearly", "annually", "annual":
		return PayYearly
	default:
		return PayMonthly
	}
}

// PeriodsPerYear returns the number of paychecks per year.
func (p PayFrequency) PeriodsPerYear() int {
	if n, ok := payPeriods[p]; ok {
		return n
	}
	return 12
}

// ContributionFrequency is how often a saver contributes.
type ContributionFrequency string

const (
	ContributeWeekly      ContributionFrequency = "weekly"
	ContributeBiweekly    ContributionFrequency = "biweekly"
	ContributeSemimonthly ContributionFrequency = "semimonthly"
	ContributeMonthly     ContributionFrequency = "monthly"
	ContributeQuarterly   ContributionFrequency = "quarterly"
	ContributeYearly      ContributionFrequency = "yearly"
)

// Monthly-equivalent multipliers. These are deliberately approximate
// (4.33 weeks and 2.17 fortnights per month) and must not be replaced with
// calendar math: every downstream figure depends on them.
var contributionMultipliers = map[ContributionFrequency]decimal.Decimal{
	ContributeWeekly:      decimal.RequireFromString("4.33"),
	ContributeBiweekly:    decimal.RequireFromString("2.17"),
	ContributeSemimonthly: decimal.NewFromInt(2),
	ContributeMonthly:     decimal.NewFromInt(1),
	ContributeQuarterly:   decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
	ContributeYearly:      decimal.NewFromInt(1).Div(decimal.NewFromInt(12)),
}

// ParseContributionFrequency maps user text to a frequency; unknown is monthly.
func ParseContributionFrequency(s string) ContributionFrequency {
	switch normalizeFrequency(s) {
	case "weekly":
		return ContributeWeekly
	case "biweekly", "fortnightly":
		return ContributeBiweekly
	case "semimonthly", "twicemonthly":
		return ContributeSemimonthly
	case "quarterly":
		return ContributeQuarterly
	case "yearly", "annually", "annual":
		return ContributeYearly
	default:
		return ContributeMonthly
	}
}

// MonthlyMultiplier converts one contribution to its monthly equivalent.
func (c ContributionFrequency) MonthlyMultiplier() decimal.Decimal {
	if m, ok := contributionMultipliers[c]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// Compounding is how often interest is credited.
type Compounding string

const (
	CompoundDaily     Compounding = "daily"
	CompoundMonthly   Compounding = "monthly"
	CompoundQuarterly Compounding = "quarterly"
	CompoundYearly    Compounding = "yearly"
)

// ParseCompounding maps user text to a compounding frequency; unknown is monthly.
func ParseCompounding(s string) Compounding {
	switch normalizeFrequency(s) {
	case "daily":
		return CompoundDaily
	case "quarterly":
		return CompoundQuarterly
	case "yearly", "annually", "annual":
		return CompoundYearly
	default:
		return CompoundMonthly
	}
}

// PeriodsPerYear returns the compounding periods in one year.
func (c Compounding) PeriodsPerYear() int {
	switch c {
	case CompoundDaily:
		return 365
	case CompoundQuarterly:
		return 4
	case CompoundYearly:
		return 1
	default:
		return 12
	}
}

func normalizeFrequency(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}
