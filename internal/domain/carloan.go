package domain

import "github.com/shopspring/decimal"

// CarLoanInput is the parsed car loan form.
type CarLoanInput struct {
	CarPrice               decimal.Decimal
	DownPayment            decimal.Decimal
	TradeInValue           decimal.Decimal
	TradeInLoanBalance     decimal.Decimal
	LoanTermYears          int
	InterestRate           decimal.Decimal // nominal annual rate, 0.06 for 6%
	SalesTaxRate           decimal.Decimal
	MonthlyBudget          decimal.Decimal
	Rebates                decimal.Decimal
	Fees                   decimal.Decimal
	PayoffYears            int // 0 means use LoanTermYears
	IncomeGuidelinePercent decimal.Decimal
	MonthlyIncome          decimal.Decimal
}

// AmortizationRow is one month of a loan schedule.
type AmortizationRow struct {
	Month     int
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
}

// CarLoanResult holds the derived loan figures.
type CarLoanResult struct {
	TradeInNet           decimal.Decimal
	EffectiveDownPayment decimal.Decimal
	LoanAmount           decimal.Decimal
	SalesTax             decimal.Decimal
	TotalCost            decimal.Decimal
	NumberOfPayments     int

	MonthlyPayment     decimal.Decimal
	TotalPayment       decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalOwnershipCost decimal.Decimal

	PayoffYears          int
	PayoffMonthlyPayment decimal.Decimal

	IsAffordable            bool
	BudgetUtilization       Ratio
	BudgetDifference        decimal.Decimal
	MaxAffordableLoanAmount decimal.Decimal
	MaxAffordableCarPrice   decimal.Decimal

	HasIncomeGuideline    bool
	GuidelinePercent      decimal.Decimal
	RecommendedMaxPayment decimal.Decimal
	WithinIncomeGuideline bool
	PaymentToIncome       Ratio

	Schedule []AmortizationRow
}
