package calculation

import (
	"time"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	minimumPaymentRate  = decimal.RequireFromString("0.01")
	minimumPaymentFloor = decimal.NewFromInt(25)
	// Balances below this count as paid off. It absorbs the rounding left
	// by a solved payment.
	payoffTolerance = decimal.New(1, -6)
)

// CreditCardInputFromForm parses the payoff form. A missing start date uses
// reference.
func CreditCardInputFromForm(f domain.Form, reference time.Time) domain.CreditCardInput {
	return domain.CreditCardInput{
		Balance:        f.Decimal("balance"),
		AnnualRate:     f.Rate("interest_rate"),
		Mode:           domain.ParsePayoffMode(f.String("mode", string(domain.PayoffFixedPayment))),
		MonthlyPayment: f.Decimal("monthly_payment"),
		TargetMonths:   f.Int("target_months"),
		StartDate:      f.Date("start_date", reference),
	}
}

// MinimumPayment is the card issuer style minimum used as the comparison
// baseline: 1% of the balance, at least 25.
func MinimumPayment(balance decimal.Decimal) decimal.Decimal {
	return decimal.Max(balance.Mul(minimumPaymentRate), minimumPaymentFloor)
}

// RequiredPayment solves the level payment retiring balance in months at
// monthly rate r. Months below 1 are treated as 1.
func RequiredPayment(balance, r decimal.Decimal, months int) decimal.Decimal {
	if months < 1 {
		months = 1
	}
	if r.IsZero() {
		return money.Step(balance.Div(decimal.NewFromInt(int64(months))))
	}
	return AmortizedPayment(balance, r, months)
}

// SimulatePayoff runs the month-by-month payoff of balance at a fixed
// payment. A payment that does not exceed the first month's interest never
// converges and produces only the month 0 entry.
func SimulatePayoff(balance, r, payment decimal.Decimal) domain.PayoffPlan {
	return simulatePayoff(balance, r, payment, true)
}

func simulatePayoff(balance, r, payment decimal.Decimal, stopWhenDiverging bool) domain.PayoffPlan {
	plan := domain.PayoffPlan{
		Payment:  payment,
		Schedule: []domain.PayoffMonth{{Month: 0, Balance: balance}},
	}
	if !balance.IsPositive() {
		plan.Outcome = domain.Converged(0, decimal.Zero)
		return plan
	}
	diverges := payment.LessThanOrEqual(balance.Mul(r))
	if diverges && stopWhenDiverging {
		plan.Outcome = domain.NeverConverges()
		return plan
	}

	interestTotal := decimal.Zero
	for month := 1; month <= MaxSimulationMonths; month++ {
		interest := money.Step(balance.Mul(r))
		principal := payment.Sub(interest)
		paid := payment
		if principal.GreaterThanOrEqual(balance) {
			principal = balance
			paid = balance.Add(interest)
		}
		balance = decimal.Max(decimal.Zero, money.Step(balance.Sub(principal)))
		if balance.LessThan(payoffTolerance) {
			balance = decimal.Zero
		}
		interestTotal = interestTotal.Add(interest)
		plan.Schedule = append(plan.Schedule, domain.PayoffMonth{
			Month:     month,
			Balance:   balance,
			Payment:   paid,
			Interest:  interest,
			Principal: principal,
		})
		plan.SimulatedMonths = month
		plan.AccruedInterest = interestTotal
		if balance.IsZero() {
			plan.Outcome = domain.Converged(month, interestTotal)
			return plan
		}
	}
	plan.Outcome = domain.NeverConverges()
	return plan
}

// CreditCardCalculator computes a payoff plan and its comparison against
// paying only the minimum.
type CreditCardCalculator struct{}

// Calculate runs the plan selected by in.Mode and the minimum-payment baseline.
func (CreditCardCalculator) Calculate(in domain.CreditCardInput) domain.CreditCardResult {
	res := domain.CreditCardResult{
		Mode:        in.Mode,
		MonthlyRate: in.AnnualRate.Div(twelve),
	}
	res.MonthlyInterest = in.Balance.Mul(res.MonthlyRate)

	payment := in.MonthlyPayment
	if in.Mode == domain.PayoffFixedMonths {
		payment = RequiredPayment(in.Balance, res.MonthlyRate, in.TargetMonths)
	}
	res.Plan = SimulatePayoff(in.Balance, res.MonthlyRate, payment)
	res.Baseline = simulatePayoff(in.Balance, res.MonthlyRate, MinimumPayment(in.Balance), false)

	if res.Plan.Outcome.Converges {
		res.HasComparison = true
		res.PayoffDate = in.StartDate.AddDate(0, res.Plan.Outcome.Months, 0)
		if res.Baseline.Outcome.Converges {
			res.InterestSaved = res.Baseline.Outcome.Interest.Sub(res.Plan.Outcome.Interest)
			res.MonthsSaved = res.Baseline.Outcome.Months - res.Plan.Outcome.Months
		} else {
			res.InterestSaved = res.Baseline.AccruedInterest.Sub(res.Plan.Outcome.Interest)
			res.InterestSavedLowerBound = true
		}
	}
	return res
}
