package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Calculator names.
const (
	CarLoan     = "car-loan"
	CreditCard  = "credit-card"
	Paycheck    = "paycheck"
	Million     = "million"
	SavingsGoal = "savings-goal"
	Growth      = "growth"
)

// InputKind tells a form builder how to present an input field.
type InputKind string

const (
	InputCurrency InputKind = "currency"
	InputPercent  InputKind = "percent"
	InputInteger  InputKind = "integer"
	InputChoice   InputKind = "choice"
	InputFlag     InputKind = "flag"
	InputDate     InputKind = "date"
)

// InputField describes one form field of a calculator.
type InputField struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Kind    InputKind `json:"kind"`
	Default string    `json:"default,omitempty"`
	Options []string  `json:"options,omitempty"`
}

// CalculatorInfo describes a registered calculator.
type CalculatorInfo struct {
	Name   string       `json:"name"`
	Title  string       `json:"title"`
	Fields []InputField `json:"fields"`
}

// Defaults returns a form pre-filled with the fields' default values.
func (c CalculatorInfo) Defaults() domain.Form {
	f := domain.Form{}
	for _, field := range c.Fields {
		if field.Default != "" {
			f[field.Key] = field.Default
		}
	}
	return f
}

type calculatorFunc func(e *Engine, f domain.Form) *domain.Report

type registration struct {
	info CalculatorInfo
	run  calculatorFunc
}

var (
	contributionFrequencies = []string{"weekly", "biweekly", "semimonthly", "monthly", "quarterly", "yearly"}
	compoundings            = []string{"daily", "monthly", "quarterly", "yearly"}
	payFrequencies          = []string{"weekly", "biweekly", "semimonthly", "monthly", "yearly"}
)

func filingStatusOptions() []string {
	out := make([]string, 0, len(domain.FilingStatuses))
	for _, s := range domain.FilingStatuses {
		out = append(out, string(s))
	}
	return out
}

func currency(key, label string) InputField {
	return InputField{Key: key, Label: label, Kind: InputCurrency}
}

func percent(key, label string) InputField {
	return InputField{Key: key, Label: label, Kind: InputPercent}
}

func integer(key, label string) InputField {
	return InputField{Key: key, Label: label, Kind: InputInteger}
}

func choice(key, label, def string, options []string) InputField {
	return InputField{Key: key, Label: label, Kind: InputChoice, Default: def, Options: options}
}

func withDefault(f InputField, def string) InputField {
	f.Default = def
	return f
}

// registry lists the calculators in display order.
var registry = []registration{
	{
		info: CalculatorInfo{Name: CarLoan, Title: "Car Loan", Fields: []InputField{
			currency("car_price", "Car Price"),
			currency("down_payment", "Down Payment"),
			currency("trade_in_value", "Trade-In Value"),
			currency("trade_in_loan_balance", "Trade-In Loan Balance"),
			withDefault(integer("loan_term", "Loan Term (years)"), "5"),
			percent("interest_rate", "Interest Rate (%)"),
			percent("sales_tax_rate", "Sales Tax Rate (%)"),
			currency("monthly_budget", "Monthly Budget"),
			currency("rebates", "Dealer Rebates"),
			currency("fees", "Fees"),
			integer("payoff_years", "Desired Payoff (years)"),
			withDefault(percent("income_guideline_percent", "Income Guideline (%)"), "15"),
			currency("monthly_income", "Monthly Income"),
		}},
		run: func(e *Engine, f domain.Form) *domain.Report {
			return CarLoanReport(CarLoanCalculator{}.Calculate(CarLoanInputFromForm(f)))
		},
	},
	{
		info: CalculatorInfo{Name: CreditCard, Title: "Credit Card Payoff", Fields: []InputField{
			currency("balance", "Balance"),
			percent("interest_rate", "Interest Rate (APR %)"),
			choice("mode", "Mode", string(domain.PayoffFixedPayment),
				[]string{string(domain.PayoffFixedPayment), string(domain.PayoffFixedMonths)}),
			currency("monthly_payment", "Monthly Payment"),
			integer("target_months", "Target Months"),
			{Key: "start_date", Label: "Start Date", Kind: InputDate},
		}},
		run: func(e *Engine, f domain.Form) *domain.Report {
			in := CreditCardInputFromForm(f, e.ReferenceDate)
			return CreditCardReport(CreditCardCalculator{}.Calculate(in))
		},
	},
	{
		info: CalculatorInfo{Name: Paycheck, Title: "Paycheck", Fields: []InputField{
			currency("salary", "Annual Salary"),
			currency("other_earned_income", "Other Earned Income"),
			currency("unearned_income", "Unearned Income"),
			choice("filing_status", "Filing Status", string(domain.FilingSingle), filingStatusOptions()),
			integer("tax_year", "Tax Year"),
			choice("pay_frequency", "Pay Frequency", string(domain.PayBiweekly), payFrequencies),
			percent("state_tax_rate", "State Tax Rate (%)"),
			percent("city_tax_rate", "City Tax Rate (%)"),
			{Key: "self_employed", Label: "Self-Employed", Kind: InputFlag},
			currency("retirement_401k", "401(k) Contribution"),
			currency("health_insurance", "Health Insurance"),
			currency("hsa_fsa", "HSA/FSA"),
			currency("other_pretax", "Other Pre-Tax"),
			currency("ira_contribution", "IRA Contribution"),
			currency("student_loan_interest", "Student Loan Interest"),
			currency("other_adjustments", "Other Adjustments"),
			currency("mortgage_interest", "Mortgage Interest"),
			currency("state_local_taxes", "State and Local Taxes"),
			currency("charitable", "Charitable Contributions"),
			currency("medical_expenses", "Medical Expenses"),
			currency("other_itemized", "Other Itemized"),
			integer("children_under_17", "Children Under 17"),
			integer("other_dependents", "Other Dependents"),
		}},
		run: (*Engine).paycheck,
	},
	{
		info: CalculatorInfo{Name: Million, Title: "Save a Million", Fields: []InputField{
			withDefault(integer("current_age", "Current Age"), "30"),
			withDefault(integer("target_age", "Target Age"), "65"),
			currency("current_savings", "Current Savings"),
			currency("contribution", "Contribution"),
			choice("contribution_frequency", "Contribution Frequency", "monthly", contributionFrequencies),
			withDefault(percent("annual_return", "Annual Return (%)"), "7"),
			withDefault(currency("goal", "Goal"), "1000000"),
			choice("compounding", "Compounding", "monthly", compoundings),
		}},
		run: func(e *Engine, f domain.Form) *domain.Report {
			in := MillionInputFromForm(f)
			return MillionReport(in, MillionCalculator{}.Calculate(in))
		},
	},
	{
		info: CalculatorInfo{Name: SavingsGoal, Title: "Savings Goal", Fields: []InputField{
			currency("goal", "Goal"),
			currency("current_savings", "Current Savings"),
			currency("contribution", "Contribution"),
			choice("contribution_frequency", "Contribution Frequency", "monthly", contributionFrequencies),
			percent("annual_return", "Annual Return (%)"),
			integer("timeline_months", "Timeline (months)"),
			{Key: "start_date", Label: "Start Date", Kind: InputDate},
		}},
		run: func(e *Engine, f domain.Form) *domain.Report {
			in := SavingsGoalInputFromForm(f, e.ReferenceDate)
			return SavingsGoalReport(in, SavingsGoalCalculator{}.Calculate(in))
		},
	},
	{
		info: CalculatorInfo{Name: Growth, Title: "Compound Growth", Fields: []InputField{
			currency("principal", "Principal"),
			currency("contribution", "Contribution"),
			choice("contribution_frequency", "Contribution Frequency", "monthly", contributionFrequencies),
			percent("annual_return", "Annual Return (%)"),
			choice("compounding", "Compounding", "monthly", compoundings),
			withDefault(integer("years", "Years"), "10"),
			currency("goal", "Goal (optional)"),
		}},
		run: func(e *Engine, f domain.Form) *domain.Report {
			return GrowthReport(GrowthCalculator{}.Calculate(GrowthInputFromForm(f)))
		},
	},
}

func lookupCalculator(name string) (registration, bool) {
	for _, r := range registry {
		if r.info.Name == name {
			return r, true
		}
	}
	return registration{}, false
}
