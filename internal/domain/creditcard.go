package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoffMode selects which side of the payoff equation is fixed.
type PayoffMode string

const (
	PayoffFixedPayment PayoffMode = "payment"
	PayoffFixedMonths  PayoffMode = "months"
)

// ParsePayoffMode maps user text to a mode; unknown is fixed payment.
func ParsePayoffMode(s string) PayoffMode {
	switch normalizeFrequency(s) {
	case "months", "month", "targetmonths", "time", "timeline":
		return PayoffFixedMonths
	default:
		return PayoffFixedPayment
	}
}

// CreditCardInput is the parsed credit card payoff form.
type CreditCardInput struct {
	Balance        decimal.Decimal
	AnnualRate     decimal.Decimal // APR as a rate, 0.20 for 20%
	Mode           PayoffMode
	MonthlyPayment decimal.Decimal
	TargetMonths   int
	StartDate      time.Time
}

// PayoffMonth is one month of a payoff simulation. Month 0 carries the
// starting balance and zero flows.
type PayoffMonth struct {
	Month     int
	Balance   decimal.Decimal
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
}

// PayoffPlan is one simulated payment plan.
type PayoffPlan struct {
	Payment decimal.Decimal
	Outcome PayoffOutcome
	// Months simulated and interest accrued, also set when the plan hit the
	// simulation cap without converging.
	SimulatedMonths int
	AccruedInterest decimal.Decimal
	Schedule        []PayoffMonth
}

// CreditCardResult holds the plan, its minimum-payment baseline and the
// comparison between them.
type CreditCardResult struct {
	Mode            PayoffMode
	MonthlyRate     decimal.Decimal
	MonthlyInterest decimal.Decimal // interest accruing on the starting balance
	Plan            PayoffPlan
	Baseline        PayoffPlan

	InterestSaved           decimal.Decimal
	InterestSavedLowerBound bool
	HasComparison           bool
	MonthsSaved             int

	PayoffDate time.Time
}
