// Package taxtable provides the yearly federal tax tables and their lookup.
package taxtable

import (
	"sort"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Lookup resolves tax tables by year. It is read-only after construction and
// safe for concurrent use.
type Lookup struct {
	tables []domain.TaxYearConfig
}

// New creates a lookup over the given tables. The first table is the fallback
// for unknown years.
func New(tables ...domain.TaxYearConfig) *Lookup {
	return &Lookup{tables: append([]domain.TaxYearConfig(nil), tables...)}
}

// Default returns a lookup over the built-in tables.
func Default() *Lookup {
	return New(Builtin()...)
}

// Config returns the table for year. When no table exists for year it returns
// the first configured table and false; this is a documented fallback, not a
// failure.
func (l *Lookup) Config(year int) (domain.TaxYearConfig, bool) {
	for _, t := range l.tables {
		if t.Year == year {
			return t, true
		}
	}
	if len(l.tables) == 0 {
		return domain.TaxYearConfig{}, false
	}
	return l.tables[0], false
}

// StandardDeduction returns the standard deduction for status in year.
func (l *Lookup) StandardDeduction(status domain.FilingStatus, year int) decimal.Decimal {
	cfg, _ := l.Config(year)
	return cfg.StandardDeduction(status)
}

// FICARates returns the payroll tax parameters for year.
func (l *Lookup) FICARates(year int) domain.FICARates {
	cfg, _ := l.Config(year)
	return cfg.FICA
}

// Years lists the configured years in lookup order.
func (l *Lookup) Years() []int {
	years := make([]int, 0, len(l.tables))
	for _, t := range l.tables {
		years = append(years, t.Year)
	}
	return years
}

// Tables returns a copy of the configured tables.
func (l *Lookup) Tables() []domain.TaxYearConfig {
	return append([]domain.TaxYearConfig(nil), l.tables...)
}

// Merge returns a new lookup where overrides replace tables of the same year
// and add new years. The result is ordered most recent year first, so the
// fallback stays the newest table.
func (l *Lookup) Merge(overrides ...domain.TaxYearConfig) *Lookup {
	byYear := make(map[int]domain.TaxYearConfig, len(l.tables)+len(overrides))
	for _, t := range l.tables {
		byYear[t.Year] = t
	}
	for _, t := range overrides {
		byYear[t.Year] = t
	}
	merged := make([]domain.TaxYearConfig, 0, len(byYear))
	for _, t := range byYear {
		merged = append(merged, t)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Year > merged[j].Year })
	return New(merged...)
}
