package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/pkg/money"
	"github.com/shopspring/decimal"
)

// PaycheckReport renders a paycheck result. Dollar figures are reported
// annually and per pay period.
func PaycheckReport(in domain.PaycheckInput, res domain.PaycheckResult) *domain.Report {
	r := &domain.Report{}
	add := func(f domain.Field) { r.Fields = append(r.Fields, f) }
	both := func(key, label string, annual decimal.Decimal) {
		add(domain.Currency(key, label, annual))
		add(domain.Currency(key+"_per_period", label+" (per period)", res.PerPeriod(annual)))
	}

	add(domain.Count("tax_year", "Tax Year", res.TaxYear))
	add(domain.Text("filing_status", "Filing Status", in.FilingStatus.Label()))
	add(domain.Text("pay_frequency", "Pay Frequency", string(in.PayFrequency)))
	add(domain.Count("periods_per_year", "Pay Periods per Year", res.PeriodsPerYear))

	both("gross_income", "Gross Income", res.GrossIncome)
	both("pretax_deductions", "Pre-Tax Deductions", res.TotalPreTax)
	add(domain.Currency("agi", "Adjusted Gross Income", res.AGI))
	add(domain.Currency("standard_deduction", "Standard Deduction", res.StandardDeduction))
	add(domain.Currency("itemized_deductions", "Itemized Deductions", res.ItemizedTotal))
	add(domain.Currency("deduction_used", "Deduction Used", res.DeductionUsed))
	add(domain.Text("deduction_type", "Deduction Type", string(res.DeductionType)))
	add(domain.Currency("taxable_income", "Taxable Income", res.TaxableIncome))
	add(domain.Percent("marginal_rate", "Marginal Rate", money.ToPercent(res.MarginalRate)))

	add(domain.Currency("federal_tax_before_credits", "Federal Tax Before Credits", res.FederalTaxBeforeCredits))
	add(domain.Currency("dependent_credits", "Dependent Credits", res.DependentCredits))
	both("federal_tax", "Federal Tax", res.FederalTax)
	both("state_tax", "State Tax", res.StateTax)
	both("city_tax", "City Tax", res.CityTax)
	both("social_security_tax", "Social Security Tax", res.SocialSecurityTax)
	both("medicare_tax", "Medicare Tax", res.MedicareTax)
	both("total_tax", "Total Tax", res.TotalTax)
	both("net_pay", "Net Pay", res.NetPay)

	add(domain.RatioField("take_home_percent", "Take-Home Pay", res.TakeHomePercent))
	add(domain.RatioField("effective_tax_rate", "Effective Tax Rate", res.EffectiveTaxRate))
	return r
}

// CarLoanReport renders a car loan result with its amortization schedule.
func CarLoanReport(res domain.CarLoanResult) *domain.Report {
	r := &domain.Report{}
	add := func(f domain.Field) { r.Fields = append(r.Fields, f) }

	add(domain.Currency("trade_in_net", "Net Trade-In", res.TradeInNet))
	add(domain.Currency("effective_down_payment", "Effective Down Payment", res.EffectiveDownPayment))
	add(domain.Currency("loan_amount", "Loan Amount", res.LoanAmount))
	add(domain.Currency("sales_tax", "Sales Tax", res.SalesTax))
	add(domain.Currency("total_cost", "Total Cost", res.TotalCost))
	add(domain.Count("number_of_payments", "Number of Payments", res.NumberOfPayments))
	add(domain.Currency("monthly_payment", "Monthly Payment", res.MonthlyPayment))
	add(domain.Currency("total_payment", "Total of Payments", res.TotalPayment))
	add(domain.Currency("total_interest", "Total Interest", res.TotalInterest))
	add(domain.Currency("total_ownership_cost", "Total Cost of Ownership", res.TotalOwnershipCost))
	add(domain.Count("payoff_years", "Payoff Horizon (years)", res.PayoffYears))
	add(domain.Currency("payoff_monthly_payment", "Payment for Payoff Horizon", res.PayoffMonthlyPayment))

	add(domain.Flag("is_affordable", "Within Budget", res.IsAffordable))
	add(domain.RatioField("budget_utilization", "Budget Utilization", res.BudgetUtilization))
	add(domain.Currency("budget_difference", "Budget Difference", res.BudgetDifference))
	add(domain.Currency("max_affordable_loan", "Max Affordable Loan", res.MaxAffordableLoanAmount))
	add(domain.Currency("max_affordable_price", "Max Affordable Car Price", res.MaxAffordableCarPrice))

	if res.HasIncomeGuideline {
		add(domain.Percent("guideline_percent", "Income Guideline", res.GuidelinePercent))
		add(domain.Currency("recommended_max_payment", "Recommended Max Payment", res.RecommendedMaxPayment))
		add(domain.Flag("within_income_guideline", "Within Income Guideline", res.WithinIncomeGuideline))
		add(domain.RatioField("payment_to_income", "Payment to Income", res.PaymentToIncome))
	}

	for _, row := range res.Schedule {
		r.Series = append(r.Series, domain.SeriesPoint{
			Period: row.Month,
			Label:  fmt.Sprintf("Month %d", row.Month),
			Values: []domain.Field{
				domain.Currency("payment", "Payment", row.Payment),
				domain.Currency("principal", "Principal", row.Principal),
				domain.Currency("interest", "Interest", row.Interest),
				domain.Currency("balance", "Balance", row.Balance),
			},
		})
	}
	return r
}

// CreditCardReport renders a payoff plan, its baseline and the payoff series.
func CreditCardReport(res domain.CreditCardResult) *domain.Report {
	r := &domain.Report{}
	add := func(f domain.Field) { r.Fields = append(r.Fields, f) }
	plan := res.Plan.Outcome

	add(domain.Text("mode", "Mode", string(res.Mode)))
	add(domain.Percent("monthly_rate", "Monthly Rate", money.ToPercent(res.MonthlyRate)))
	add(domain.Currency("monthly_interest", "Monthly Interest", res.MonthlyInterest))
	add(domain.Currency("monthly_payment", "Monthly Payment", res.Plan.Payment))
	add(outcomeMonths("months_to_payoff", "Months to Payoff", plan))
	add(outcomeInterest("total_interest", "Total Interest", plan))
	if plan.Converges {
		add(domain.Currency("total_paid", "Total Paid", totalPaid(res.Plan)))
		add(domain.Date("payoff_date", "Payoff Date", res.PayoffDate))
	} else {
		add(domain.Text("total_paid", "Total Paid", domain.Never))
		add(domain.Text("payoff_date", "Payoff Date", domain.Never))
		r.Warnings = append(r.Warnings, "monthly payment does not pay off the balance")
	}

	add(domain.Currency("minimum_payment", "Minimum Payment", res.Baseline.Payment))
	add(outcomeMonths("minimum_months", "Months at Minimum", res.Baseline.Outcome))
	add(outcomeInterest("minimum_interest", "Interest at Minimum", res.Baseline.Outcome))
	if res.HasComparison {
		add(domain.Currency("interest_saved", "Interest Saved", res.InterestSaved))
		add(domain.Flag("interest_saved_lower_bound", "Interest Saved Is Lower Bound", res.InterestSavedLowerBound))
	} else {
		add(domain.Text("interest_saved", "Interest Saved", domain.NotAvailable))
	}
	if res.HasComparison && !res.InterestSavedLowerBound {
		add(domain.Count("months_saved", "Months Saved", res.MonthsSaved))
	} else {
		add(domain.Text("months_saved", "Months Saved", domain.NotAvailable))
	}

	for _, m := range res.Plan.Schedule {
		r.Series = append(r.Series, domain.SeriesPoint{
			Period: m.Month,
			Label:  fmt.Sprintf("Month %d", m.Month),
			Values: []domain.Field{
				domain.Currency("balance", "Balance", m.Balance),
				domain.Currency("payment", "Payment", m.Payment),
				domain.Currency("interest", "Interest", m.Interest),
				domain.Currency("principal", "Principal", m.Principal),
			},
		})
	}
	return r
}

func totalPaid(plan domain.PayoffPlan) decimal.Decimal {
	total := decimal.Zero
	for _, m := range plan.Schedule {
		total = total.Add(m.Payment)
	}
	return total
}

func outcomeMonths(key, label string, o domain.PayoffOutcome) domain.Field {
	if !o.Converges {
		return domain.Text(key, label, domain.Never)
	}
	return domain.Count(key, label, o.Months)
}

func outcomeInterest(key, label string, o domain.PayoffOutcome) domain.Field {
	if !o.Converges {
		return domain.Text(key, label, domain.Never)
	}
	return domain.Currency(key, label, o.Interest)
}

// growthReport renders the fields shared by the goal and growth calculators.
// pointLabel names each series point.
func growthReport(res domain.GrowthResult, pointLabel func(domain.GrowthPoint) string) *domain.Report {
	r := &domain.Report{}
	add := func(f domain.Field) { r.Fields = append(r.Fields, f) }
	hasGoal := res.Goal.IsPositive()

	add(domain.Currency("starting_balance", "Starting Balance", res.StartingBalance))
	add(domain.Currency("monthly_contribution", "Monthly Contribution", res.MonthlyContribution))
	add(domain.Text("contribution_frequency", "Contribution Frequency", string(res.ContributionFrequency)))
	add(domain.Text("compounding", "Compounding", string(res.Compounding)))
	add(domain.Count("horizon_months", "Horizon (months)", res.HorizonMonths))
	add(domain.Currency("final_balance", "Final Balance", res.FinalBalance))
	add(domain.Currency("total_contributions", "Total Contributions", res.TotalContributions))
	add(domain.Currency("total_interest", "Total Interest", res.TotalInterest))

	if hasGoal {
		add(domain.Currency("goal", "Goal", res.Goal))
		add(domain.Flag("achievable", "Achievable", res.Achievable))
		add(domain.Currency("shortfall", "Shortfall", res.Shortfall))
		if res.GoalOutcome.Reached {
			add(domain.Count("months_to_goal", "Months to Goal", res.GoalOutcome.Months))
		} else {
			add(domain.Text("months_to_goal", "Months to Goal", domain.Never))
		}
		if res.FixedHorizon {
			add(domain.Currency("required_contribution", "Required Contribution", res.RequiredContribution))
			add(domain.Currency("required_monthly", "Required Monthly Contribution", res.RequiredMonthly))
		}
		if !res.Achievable {
			r.Warnings = append(r.Warnings, fmt.Sprintf("goal not reached within %d months", res.HorizonMonths))
		}
	}

	if res.HorizonCapped {
		r.Warnings = append(r.Warnings, fmt.Sprintf("horizon limited to %d months", res.HorizonMonths))
	}

	for _, p := range res.Points {
		values := []domain.Field{
			domain.Currency("balance", "Balance", p.Balance),
			domain.Currency("contributions", "Contributions", p.Contributions),
			domain.Currency("interest", "Interest", p.Interest),
			domain.Currency("period_contribution", "Period Contribution", p.PeriodContribution),
			domain.Currency("period_interest", "Period Interest", p.PeriodInterest),
		}
		r.Series = append(r.Series, domain.SeriesPoint{Period: p.Period, Label: pointLabel(p), Values: values})
	}
	return r
}

// MillionReport renders the million-dollar goal projection with ages.
func MillionReport(in domain.MillionInput, res domain.GrowthResult) *domain.Report {
	r := growthReport(res, func(p domain.GrowthPoint) string { return fmt.Sprintf("Age %d", p.Age) })
	r.Fields = append([]domain.Field{
		domain.Count("current_age", "Current Age", in.CurrentAge),
		domain.Count("target_age", "Target Age", in.TargetAge),
	}, r.Fields...)
	if res.GoalOutcome.Reached {
		r.Fields = append(r.Fields, domain.Count("age_at_goal", "Age at Goal", in.CurrentAge+(res.GoalOutcome.Months+11)/12))
	} else {
		r.Fields = append(r.Fields, domain.Text("age_at_goal", "Age at Goal", domain.Never))
	}
	if !res.FixedHorizon {
		r.Warnings = append(r.Warnings, "target age not after current age, projecting until the goal is reached")
	}
	return r
}

// SavingsGoalReport renders the savings goal projection with its goal date.
func SavingsGoalReport(in domain.SavingsGoalInput, res domain.GrowthResult) *domain.Report {
	r := growthReport(res, func(p domain.GrowthPoint) string { return fmt.Sprintf("Month %d", p.Period) })
	if res.GoalOutcome.Reached {
		r.Fields = append(r.Fields, domain.Date("goal_date", "Goal Date", in.StartDate.AddDate(0, res.GoalOutcome.Months, 0)))
	} else {
		r.Fields = append(r.Fields, domain.Text("goal_date", "Goal Date", domain.Never))
	}
	return r
}

// GrowthReport renders the compound growth projection.
func GrowthReport(res domain.GrowthResult) *domain.Report {
	return growthReport(res, func(p domain.GrowthPoint) string { return fmt.Sprintf("Year %d", p.Year) })
}
