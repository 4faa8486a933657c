package output

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/pkg/money"
)

// DisplayValue renders a field for people: currency with a dollar sign and
// thousands separators, percentages with a percent sign, flags as Yes/No.
// Sentinels such as N/A and Never pass through.
func DisplayValue(f domain.Field) string {
	switch f.Value {
	case domain.NotAvailable, domain.Never:
		return f.Value
	}
	switch f.Kind {
	case domain.KindCurrency:
		return money.DisplayString(f.Value)
	case domain.KindPercent:
		return f.Value + "%"
	case domain.KindFlag:
		if f.Value == "true" {
			return "Yes"
		}
		return "No"
	default:
		return f.Value
	}
}

// heading returns the display heading of a report.
func heading(r *domain.Report) string {
	if r.Name != "" && r.Name != r.Title {
		return r.Name + " (" + r.Title + ")"
	}
	return r.Title
}

// seriesHeaders returns the column labels of a report's series.
func seriesHeaders(r *domain.Report) []string {
	if len(r.Series) == 0 {
		return nil
	}
	headers := []string{"Period"}
	for _, v := range r.Series[0].Values {
		headers = append(headers, v.Label)
	}
	return headers
}

// seriesRow returns the display cells of one series point.
func seriesRow(p domain.SeriesPoint) []string {
	row := []string{p.Label}
	for _, v := range p.Values {
		row = append(row, DisplayValue(v))
	}
	return row
}
