package taxtable

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FEDERAL TAX TABLE DATA:
//
// 1. Brackets, bases and standard deductions are the IRS figures for tax
//    years 2024 and 2023 (Rev. Proc. 2023-34 and 2022-38).
// 2. Base is the cumulative tax at the previous bracket's upper bound.
// 3. FICA: social security 6.2% up to the wage base, Medicare 1.45% uncapped.
//    The additional 0.9% Medicare surtax is not modeled.

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bracket(max, rate, base string) domain.TaxBracket {
	b := domain.TaxBracket{Rate: d(rate), Base: d(base)}
	if max != "" {
		m := d(max)
		b.Max = &m
	}
	return b
}

func builtin2024() domain.TaxYearConfig {
	return domain.TaxYearConfig{
		Year: 2024,
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:            d("14600"),
			domain.FilingMarriedJointly:    d("29200"),
			domain.FilingMarriedSeparately: d("14600"),
			domain.FilingHeadOfHousehold:   d("21900"),
		},
		FICA: domain.FICARates{
			SocialSecurityLimit: d("168600"),
			SocialSecurityRate:  d("0.062"),
			MedicareRate:        d("0.0145"),
		},
		TaxBrackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingSingle: {
				bracket("11600", "0.10", "0"),
				bracket("47150", "0.12", "1160"),
				bracket("100525", "0.22", "5426"),
				bracket("191950", "0.24", "17168.50"),
				bracket("243725", "0.32", "39110.50"),
				bracket("609350", "0.35", "55678.50"),
				bracket("", "0.37", "183647.25"),
			},
			domain.FilingMarriedJointly: {
				bracket("23200", "0.10", "0"),
				bracket("94300", "0.12", "2320"),
				bracket("201050", "0.22", "10852"),
				bracket("383900", "0.24", "34337"),
				bracket("487450", "0.32", "78221"),
				bracket("731200", "0.35", "111357"),
				bracket("", "0.37", "196669.50"),
			},
			domain.FilingMarriedSeparately: {
				bracket("11600", "0.10", "0"),
				bracket("47150", "0.12", "1160"),
				bracket("100525", "0.22", "5426"),
				bracket("191950", "0.24", "17168.50"),
				bracket("243725", "0.32", "39110.50"),
				bracket("365600", "0.35", "55678.50"),
				bracket("", "0.37", "98334.75"),
			},
			domain.FilingHeadOfHousehold: {
				bracket("16550", "0.10", "0"),
				bracket("63100", "0.12", "1655"),
				bracket("100500", "0.22", "7241"),
				bracket("191950", "0.24", "15469"),
				bracket("243700", "0.32", "37417"),
				bracket("609350", "0.35", "53977"),
				bracket("", "0.37", "181954.50"),
			},
		},
	}
}

func builtin2023() domain.TaxYearConfig {
	return domain.TaxYearConfig{
		Year: 2023,
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:            d("13850"),
			domain.FilingMarriedJointly:    d("27700"),
			domain.FilingMarriedSeparately: d("13850"),
			domain.FilingHeadOfHousehold:   d("20800"),
		},
		FICA: domain.FICARates{
			SocialSecurityLimit: d("160200"),
			SocialSecurityRate:  d("0.062"),
			MedicareRate:        d("0.0145"),
		},
		TaxBrackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingSingle: {
				bracket("11000", "0.10", "0"),
				bracket("44725", "0.12", "1100"),
				bracket("95375", "0.22", "5147"),
				bracket("182100", "0.24", "16290"),
				bracket("231250", "0.32", "37104"),
				bracket("578125", "0.35", "52832"),
				bracket("", "0.37", "174238.25"),
			},
			domain.FilingMarriedJointly: {
				bracket("22000", "0.10", "0"),
				bracket("89450", "0.12", "2200"),
				bracket("190750", "0.22", "10294"),
				bracket("364200", "0.24", "32580"),
				bracket("462500", "0.32", "74208"),
				bracket("693750", "0.35", "105664"),
				bracket("", "0.37", "186601.50"),
			},
			domain.FilingMarriedSeparately: {
				bracket("11000", "0.10", "0"),
				bracket("44725", "0.12", "1100"),
				bracket("95375", "0.22", "5147"),
				bracket("182100", "0.24", "16290"),
				bracket("231250", "0.32", "37104"),
				bracket("346875", "0.35", "52832"),
				bracket("", "0.37", "93300.75"),
			},
			domain.FilingHeadOfHousehold: {
				bracket("15700", "0.10", "0"),
				bracket("59850", "0.12", "1570"),
				bracket("95350", "0.22", "6868"),
				bracket("182100", "0.24", "14678"),
				bracket("231250", "0.32", "35498"),
				bracket("578100", "0.35", "51226"),
				bracket("", "0.37", "172623.50"),
			},
		},
	}
}

// Builtin returns the compiled-in tables, most recent year first.
func Builtin() []domain.TaxYearConfig {
	return []domain.TaxYearConfig{builtin2024(), builtin2023()}
}
