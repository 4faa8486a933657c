package domain

import "github.com/shopspring/decimal"

// PreTaxDeductions are withheld before income tax.
type PreTaxDeductions struct {
	Retirement401k  decimal.Decimal `json:"retirement401k"`
	HealthInsurance decimal.Decimal `json:"healthInsurance"`
	HSAFSA          decimal.Decimal `json:"hsaFsa"`
	Other           decimal.Decimal `json:"other"`
}

// Total sums the deductions.
func (p PreTaxDeductions) Total() decimal.Decimal {
	return p.Retirement401k.Add(p.HealthInsurance).Add(p.HSAFSA).Add(p.Other)
}

// Adjustments reduce taxable income after the deduction is applied.
type Adjustments struct {
	IRA                 decimal.Decimal `json:"ira"`
	StudentLoanInterest decimal.Decimal `json:"studentLoanInterest"`
	Other               decimal.Decimal `json:"other"`
}

// Total sums the adjustments.
func (a Adjustments) Total() decimal.Decimal {
	return a.IRA.Add(a.StudentLoanInterest).Add(a.Other)
}

// ItemizedDeductions are the Schedule A line items.
type ItemizedDeductions struct {
	MortgageInterest decimal.Decimal `json:"mortgageInterest"`
	StateLocalTaxes  decimal.Decimal `json:"stateLocalTaxes"`
	Charitable       decimal.Decimal `json:"charitable"`
	Medical          decimal.Decimal `json:"medical"`
	Other            decimal.Decimal `json:"other"`
}

// Total sums the line items.
func (i ItemizedDeductions) Total() decimal.Decimal {
	return i.MortgageInterest.Add(i.StateLocalTaxes).Add(i.Charitable).Add(i.Medical).Add(i.Other)
}

// PaycheckInput is the parsed paycheck form.
type PaycheckInput struct {
	Salary            decimal.Decimal
	OtherEarnedIncome decimal.Decimal
	UnearnedIncome    decimal.Decimal
	StateTaxRate      decimal.Decimal // rate, 0.05 for 5%
	CityTaxRate       decimal.Decimal
	SelfEmployed      bool
	PreTax            PreTaxDeductions
	Adjustments       Adjustments
	Itemized          ItemizedDeductions
	ChildrenUnder17   int
	OtherDependents   int
	FilingStatus      FilingStatus
	TaxYear           int
	PayFrequency      PayFrequency
}

// DeductionType records which deduction the engine chose.
type DeductionType string

const (
	DeductionStandard DeductionType = "standard"
	DeductionItemized DeductionType = "itemized"
)

// PaycheckResult holds annual figures; per-period values are derived.
type PaycheckResult struct {
	TaxYear        int
	PeriodsPerYear int

	GrossIncome       decimal.Decimal
	TotalPreTax       decimal.Decimal
	AGI               decimal.Decimal
	StandardDeduction decimal.Decimal
	ItemizedTotal     decimal.Decimal
	DeductionUsed     decimal.Decimal
	DeductionType     DeductionType
	TaxableIncome     decimal.Decimal
	MarginalRate      decimal.Decimal

	FederalTaxBeforeCredits decimal.Decimal
	DependentCredits        decimal.Decimal
	FederalTax              decimal.Decimal
	StateTax                decimal.Decimal
	CityTax                 decimal.Decimal
	SocialSecurityTax       decimal.Decimal
	MedicareTax             decimal.Decimal
	TotalTax                decimal.Decimal
	NetPay                  decimal.Decimal

	TakeHomePercent  Ratio
	EffectiveTaxRate Ratio
}

// PerPeriod divides an annual amount by the pay periods.
func (r PaycheckResult) PerPeriod(annual decimal.Decimal) decimal.Decimal {
	if r.PeriodsPerYear <= 0 {
		return annual
	}
	return annual.Div(decimal.NewFromInt(int64(r.PeriodsPerYear)))
}
