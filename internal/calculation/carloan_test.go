package calculation

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseCarLoan() domain.Form {
	return domain.Form{
		"car_price":      "30000",
		"down_payment":   "5000",
		"trade_in_value": "0",
		"loan_term":      "5",
		"interest_rate":  "6",
		"sales_tax_rate": "0",
	}
}

func TestCarLoanStandardAmortization(t *testing.T) {
	res := CarLoanCalculator{}.Calculate(CarLoanInputFromForm(baseCarLoan()))

	assert.Equal(t, "25000.00", res.LoanAmount.StringFixed(2))
	assert.Equal(t, 60, res.NumberOfPayments)
	assert.Equal(t, "483.32", res.MonthlyPayment.StringFixed(2))
	expectedInterest := res.MonthlyPayment.Mul(decimal.NewFromInt(60)).Sub(decimal.NewFromInt(25000))
	assert.True(t, expectedInterest.Equal(res.TotalInterest))
	assert.Equal(t, "3999.20", res.TotalInterest.StringFixed(2))
	assert.Equal(t, "28999.20", res.TotalPayment.StringFixed(2))
	assert.Equal(t, "33999.20", res.TotalOwnershipCost.StringFixed(2))
	assert.Equal(t, 5, res.PayoffYears)
	assert.True(t, res.PayoffMonthlyPayment.Equal(res.MonthlyPayment))

	require.Len(t, res.Schedule, 60)
	assert.Equal(t, "125.00", res.Schedule[0].Interest.StringFixed(2))
	assert.Equal(t, "0.00", res.Schedule[59].Balance.StringFixed(2))
}

func TestCarLoanScenarios(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f domain.Form)
		check func(t *testing.T, res domain.CarLoanResult)
	}{
		{
			name: "trade-in reduces loan and taxable base",
			edit: func(f domain.Form) {
				f["trade_in_value"] = "5000"
				f["trade_in_loan_balance"] = "2000"
				f["sales_tax_rate"] = "7"
			},
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, "3000.00", res.TradeInNet.StringFixed(2))
				assert.Equal(t, "22000.00", res.LoanAmount.StringFixed(2))
				assert.Equal(t, "1750.00", res.SalesTax.StringFixed(2))
			},
		},
		{
			name: "total cost includes fees and rebates",
			edit: func(f domain.Form) {
				f["sales_tax_rate"] = "5"
				f["fees"] = "800"
				f["rebates"] = "1000"
			},
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, "31300.00", res.TotalCost.StringFixed(2))
			},
		},
		{
			name: "trade-in above price gives negative sales tax",
			edit: func(f domain.Form) {
				f["trade_in_value"] = "35000"
				f["sales_tax_rate"] = "10"
			},
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, "-500.00", res.SalesTax.StringFixed(2))
			},
		},
		{
			name: "down payment above price is not clamped",
			edit: func(f domain.Form) { f["down_payment"] = "35000" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, "-5000.00", res.LoanAmount.StringFixed(2))
				assert.True(t, res.MonthlyPayment.IsNegative())
				assert.Empty(t, res.Schedule)
			},
		},
		{
			name: "interest-free loan leaves payment at zero",
			edit: func(f domain.Form) { f["interest_rate"] = "0" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.True(t, res.MonthlyPayment.IsZero())
				assert.True(t, res.MaxAffordableLoanAmount.IsZero())
				assert.Empty(t, res.Schedule)
			},
		},
		{
			name: "zero term leaves payment at zero",
			edit: func(f domain.Form) { f["loan_term"] = "" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, 0, res.NumberOfPayments)
				assert.True(t, res.MonthlyPayment.IsZero())
			},
		},
		{
			name: "shorter payoff horizon raises the payment",
			edit: func(f domain.Form) { f["payoff_years"] = "3" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, 3, res.PayoffYears)
				assert.Equal(t, "760.55", res.PayoffMonthlyPayment.StringFixed(2))
			},
		},
		{
			name: "budget solves the affordable price",
			edit: func(f domain.Form) { f["monthly_budget"] = "500" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.True(t, res.IsAffordable)
				assert.Equal(t, "16.68", res.BudgetDifference.StringFixed(2))
				assert.Equal(t, "96.7", res.BudgetUtilization.String())
				assert.Equal(t, "25862.78", res.MaxAffordableLoanAmount.StringFixed(2))
				assert.Equal(t, "30862.78", res.MaxAffordableCarPrice.StringFixed(2))
			},
		},
		{
			name: "missing budget is unaffordable with undefined utilization",
			edit: func(f domain.Form) {},
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.False(t, res.IsAffordable)
				assert.Equal(t, domain.NotAvailable, res.BudgetUtilization.String())
				assert.False(t, res.HasIncomeGuideline)
			},
		},
		{
			name: "income guideline defaults to fifteen percent",
			edit: func(f domain.Form) { f["monthly_income"] = "3000" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.True(t, res.HasIncomeGuideline)
				assert.Equal(t, "450.00", res.RecommendedMaxPayment.StringFixed(2))
				assert.False(t, res.WithinIncomeGuideline)
				assert.Equal(t, "16.1", res.PaymentToIncome.String())
			},
		},
		{
			name: "custom income guideline",
			edit: func(f domain.Form) {
				f["monthly_income"] = "3000"
				f["income_guideline_percent"] = "20"
			},
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, "600.00", res.RecommendedMaxPayment.StringFixed(2))
				assert.True(t, res.WithinIncomeGuideline)
			},
		},
		{
			name: "schedule is capped for very long terms",
			edit: func(f domain.Form) { f["loan_term"] = "60" },
			check: func(t *testing.T, res domain.CarLoanResult) {
				assert.Equal(t, 720, res.NumberOfPayments)
				assert.Len(t, res.Schedule, MaxSimulationMonths)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := baseCarLoan()
			tt.edit(f)
			tt.check(t, CarLoanCalculator{}.Calculate(CarLoanInputFromForm(f)))
		})
	}
}

func TestPresentValueInvertsPayment(t *testing.T) {
	r := decimal.RequireFromString("0.005")
	payment := AmortizedPayment(decimal.NewFromInt(25000), r, 60)
	principal := PresentValueOfPayments(payment, r, 60)
	assert.Equal(t, "25000.00", principal.StringFixed(2))
}

func TestCarLoanTermBeyondGrowthLimit(t *testing.T) {
	form := baseCarLoan()
	form["loan_term"] = "10000000000"
	form["monthly_budget"] = "500"
	res := CarLoanCalculator{}.Calculate(CarLoanInputFromForm(form))

	// Interest only: 25000 * 0.005.
	assert.Equal(t, "125.00", res.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "100000.00", res.MaxAffordableLoanAmount.StringFixed(2))
	assert.Len(t, res.Schedule, MaxSimulationMonths)

	r := decimal.RequireFromString("0.005")
	assert.Equal(t, "125.00", AmortizedPayment(decimal.NewFromInt(25000), r, 1<<40).StringFixed(2))
	assert.Equal(t, "25000.00", PresentValueOfPayments(decimal.NewFromInt(125), r, 1<<40).StringFixed(2))
}
