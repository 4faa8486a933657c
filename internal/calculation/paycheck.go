package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	childTaxCredit     = decimal.NewFromInt(2000)
	otherDependentCred = decimal.NewFromInt(500)
	two                = decimal.NewFromInt(2)
)

// PaycheckInputFromForm parses the paycheck form. A missing tax year uses
// defaultYear.
func PaycheckInputFromForm(f domain.Form, defaultYear int) domain.PaycheckInput {
	year := f.Int("tax_year")
	if year <= 0 {
		year = defaultYear
	}
	return domain.PaycheckInput{
		Salary:            f.Decimal("salary"),
		OtherEarnedIncome: f.Decimal("other_earned_income"),
		UnearnedIncome:    f.Decimal("unearned_income"),
		StateTaxRate:      f.Rate("state_tax_rate"),
		CityTaxRate:       f.Rate("city_tax_rate"),
		SelfEmployed:      f.Bool("self_employed"),
		PreTax: domain.PreTaxDeductions{
			Retirement401k:  f.Decimal("retirement_401k"),
			HealthInsurance: f.Decimal("health_insurance"),
			HSAFSA:          f.Decimal("hsa_fsa"),
			Other:           f.Decimal("other_pretax"),
		},
		Adjustments: domain.Adjustments{
			IRA:                 f.Decimal("ira_contribution"),
			StudentLoanInterest: f.Decimal("student_loan_interest"),
			Other:               f.Decimal("other_adjustments"),
		},
		Itemized: domain.ItemizedDeductions{
			MortgageInterest: f.Decimal("mortgage_interest"),
			StateLocalTaxes:  f.Decimal("state_local_taxes"),
			Charitable:       f.Decimal("charitable"),
			Medical:          f.Decimal("medical_expenses"),
			Other:            f.Decimal("other_itemized"),
		},
		ChildrenUnder17: max(0, f.Int("children_under_17")),
		OtherDependents: max(0, f.Int("other_dependents")),
		FilingStatus:    domain.ParseFilingStatus(f.String("filing_status", string(domain.FilingSingle))),
		TaxYear:         year,
		PayFrequency:    domain.ParsePayFrequency(f.String("pay_frequency", string(domain.PayMonthly))),
	}
}

// PaycheckCalculator composes federal, state, city and payroll taxes into
// annual and per-period take-home pay.
type PaycheckCalculator struct {
	Federal *FederalTaxCalculator
}

// NewPaycheckCalculator creates a paycheck calculator.
func NewPaycheckCalculator(federal *FederalTaxCalculator) *PaycheckCalculator {
	return &PaycheckCalculator{Federal: federal}
}

// Calculate computes the annual paycheck figures. The result carries the tax
// year whose tables were applied, which differs from in.TaxYear after a
// fallback.
func (pc *PaycheckCalculator) Calculate(in domain.PaycheckInput) domain.PaycheckResult {
	res := domain.PaycheckResult{
		TaxYear:        in.TaxYear,
		PeriodsPerYear: in.PayFrequency.PeriodsPerYear(),
	}
	if cfg, ok := pc.Federal.Tables.Config(in.TaxYear); !ok && cfg.Year > 0 {
		res.TaxYear = cfg.Year
	}

	res.GrossIncome = in.Salary.Add(in.OtherEarnedIncome).Add(in.UnearnedIncome)
	res.TotalPreTax = in.PreTax.Total()
	res.AGI = res.GrossIncome.Sub(res.TotalPreTax)

	res.StandardDeduction = pc.Federal.Tables.StandardDeduction(in.FilingStatus, in.TaxYear)
	res.ItemizedTotal = in.Itemized.Total()
	res.DeductionUsed = res.StandardDeduction
	res.DeductionType = domain.DeductionStandard
	if res.ItemizedTotal.GreaterThan(res.StandardDeduction) {
		res.DeductionUsed = res.ItemizedTotal
		res.DeductionType = domain.DeductionItemized
	}

	res.TaxableIncome = res.AGI.Sub(res.DeductionUsed).Sub(in.Adjustments.Total())
	res.MarginalRate = pc.Federal.MarginalRate(res.TaxableIncome, in.FilingStatus, in.TaxYear)

	res.FederalTaxBeforeCredits = pc.Federal.FederalTax(res.TaxableIncome, in.FilingStatus, in.TaxYear)
	res.DependentCredits = childTaxCredit.Mul(decimal.NewFromInt(int64(in.ChildrenUnder17))).
		Add(otherDependentCred.Mul(decimal.NewFromInt(int64(in.OtherDependents))))
	res.FederalTax = decimal.Max(decimal.Zero, res.FederalTaxBeforeCredits.Sub(res.DependentCredits))

	// State and city apply to income after pre-tax deductions are taken a
	// second time, matching the published calculator.
	localBase := res.AGI.Sub(res.TotalPreTax)
	res.StateTax = localBase.Mul(in.StateTaxRate)
	res.CityTax = localBase.Mul(in.CityTaxRate)

	fica := pc.Federal.Tables.FICARates(in.TaxYear)
	res.SocialSecurityTax = decimal.Min(res.AGI, fica.SocialSecurityLimit).Mul(fica.SocialSecurityRate)
	res.MedicareTax = res.AGI.Mul(fica.MedicareRate)
	if in.SelfEmployed {
		res.SocialSecurityTax = res.SocialSecurityTax.Mul(two)
		res.MedicareTax = res.MedicareTax.Mul(two)
	}

	res.TotalTax = res.FederalTax.Add(res.StateTax).Add(res.CityTax).
		Add(res.SocialSecurityTax).Add(res.MedicareTax)
	res.NetPay = res.AGI.Sub(res.TotalTax)

	res.TakeHomePercent = domain.NewRatio(res.NetPay, res.GrossIncome)
	res.EffectiveTaxRate = domain.NewRatio(res.TotalTax, res.GrossIncome)
	return res
}
