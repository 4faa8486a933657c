package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/pkg/money"
	"github.com/shopspring/decimal"
)

// MaxSimulationMonths bounds every month-stepped loop.
const MaxSimulationMonths = 600

var (
	twelve                 = decimal.NewFromInt(12)
	defaultIncomeGuideline = decimal.NewFromInt(15)
)

// CarLoanInputFromForm parses the car loan form.
func CarLoanInputFromForm(f domain.Form) domain.CarLoanInput {
	return domain.CarLoanInput{
		CarPrice:               f.Decimal("car_price"),
		DownPayment:            f.Decimal("down_payment"),
		TradeInValue:           f.Decimal("trade_in_value"),
		TradeInLoanBalance:     f.Decimal("trade_in_loan_balance"),
		LoanTermYears:          f.Int("loan_term"),
		InterestRate:           f.Rate("interest_rate"),
		SalesTaxRate:           f.Rate("sales_tax_rate"),
		MonthlyBudget:          f.Decimal("monthly_budget"),
		Rebates:                f.Decimal("rebates"),
		Fees:                   f.Decimal("fees"),
		PayoffYears:            f.Int("payoff_years"),
		IncomeGuidelinePercent: f.DecimalOr("income_guideline_percent", defaultIncomeGuideline),
		MonthlyIncome:          f.Decimal("monthly_income"),
	}
}

// AmortizedPayment returns the level payment retiring principal over n
// periods at periodic rate r. Interest-free and zero-term loans return 0.
// Terms long enough that (1+r)^n passes money.GrowthLimit pay interest only.
func AmortizedPayment(principal, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || !r.IsPositive() {
		return decimal.Zero
	}
	growth, saturated := money.PowIntBounded(decimal.NewFromInt(1).Add(r), n, money.GrowthLimit)
	if saturated {
		return money.Step(principal.Mul(r))
	}
	return money.Step(principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1))))
}

// PresentValueOfPayments inverts AmortizedPayment: the principal a payment
// retires over n periods at rate r, under the same guard.
func PresentValueOfPayments(payment, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || !r.IsPositive() {
		return decimal.Zero
	}
	growth, saturated := money.PowIntBounded(decimal.NewFromInt(1).Add(r), n, money.GrowthLimit)
	if saturated {
		return money.Step(payment.Div(r))
	}
	return money.Step(payment.Mul(growth.Sub(decimal.NewFromInt(1))).Div(r.Mul(growth)))
}

// CarLoanCalculator computes loan payments and affordability.
type CarLoanCalculator struct{}

// Calculate derives every car loan figure from in.
func (CarLoanCalculator) Calculate(in domain.CarLoanInput) domain.CarLoanResult {
	var res domain.CarLoanResult

	res.TradeInNet = in.TradeInValue.Sub(in.TradeInLoanBalance)
	res.EffectiveDownPayment = in.DownPayment.Add(res.TradeInNet)
	res.LoanAmount = in.CarPrice.Sub(res.EffectiveDownPayment)
	res.SalesTax = in.CarPrice.Sub(in.TradeInValue).Mul(in.SalesTaxRate)
	res.TotalCost = in.CarPrice.Add(res.SalesTax).Add(in.Fees).Sub(in.Rebates)

	r := in.InterestRate.Div(twelve)
	n := in.LoanTermYears * 12
	res.NumberOfPayments = n
	res.MonthlyPayment = AmortizedPayment(res.LoanAmount, r, n)
	res.TotalPayment = res.MonthlyPayment.Mul(decimal.NewFromInt(int64(n)))
	res.TotalInterest = res.TotalPayment.Sub(res.LoanAmount)
	res.TotalOwnershipCost = res.TotalCost.Add(res.TotalInterest)

	res.PayoffYears = in.PayoffYears
	if res.PayoffYears <= 0 {
		res.PayoffYears = in.LoanTermYears
	}
	res.PayoffMonthlyPayment = AmortizedPayment(res.LoanAmount, r, res.PayoffYears*12)

	res.IsAffordable = res.MonthlyPayment.LessThanOrEqual(in.MonthlyBudget)
	res.BudgetUtilization = domain.NewRatio(res.MonthlyPayment, in.MonthlyBudget)
	res.BudgetDifference = in.MonthlyBudget.Sub(res.MonthlyPayment)
	res.MaxAffordableLoanAmount = PresentValueOfPayments(in.MonthlyBudget, r, n)
	res.MaxAffordableCarPrice = res.MaxAffordableLoanAmount.Add(res.EffectiveDownPayment)

	if in.MonthlyIncome.IsPositive() {
		res.HasIncomeGuideline = true
		res.GuidelinePercent = in.IncomeGuidelinePercent
		res.RecommendedMaxPayment = in.MonthlyIncome.Mul(money.FromPercent(in.IncomeGuidelinePercent))
		res.WithinIncomeGuideline = res.MonthlyPayment.LessThanOrEqual(res.RecommendedMaxPayment)
		res.PaymentToIncome = domain.NewRatio(res.MonthlyPayment, in.MonthlyIncome)
	}

	res.Schedule = amortizationSchedule(res.LoanAmount, r, res.MonthlyPayment, n)
	return res
}

// amortizationSchedule lists each month of a level-payment loan. Loans
// without a payment have no schedule.
func amortizationSchedule(principal, r, payment decimal.Decimal, n int) []domain.AmortizationRow {
	if !payment.IsPositive() || !principal.IsPositive() {
		return nil
	}
	if n > MaxSimulationMonths {
		n = MaxSimulationMonths
	}
	rows := make([]domain.AmortizationRow, 0, n)
	balance := principal
	for month := 1; month <= n; month++ {
		interest := money.Step(balance.Mul(r))
		principalPaid := payment.Sub(interest)
		balance = decimal.Max(decimal.Zero, money.Step(balance.Sub(principalPaid)))
		rows = append(rows, domain.AmortizationRow{
			Month:     month,
			Payment:   payment,
			Principal: principalPaid,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows
}
