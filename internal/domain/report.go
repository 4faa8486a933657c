package domain

import (
	"time"

	"github.com/rgehrsitz/fincalc/pkg/money"
	"github.com/shopspring/decimal"
)

// NotAvailable is the display value of an undefined ratio.
const NotAvailable = "N/A"

// Never is the display value of a payoff or goal that is never reached.
const Never = "Never"

// FieldKind describes how a report value was formatted.
type FieldKind string

const (
	KindCurrency FieldKind = "currency"
	KindPercent  FieldKind = "percent"
	KindCount    FieldKind = "count"
	KindText     FieldKind = "text"
	KindFlag     FieldKind = "flag"
	KindDate     FieldKind = "date"
)

// Field is one formatted result value.
type Field struct {
	Key   string    `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
	Value string    `json:"value" yaml:"value"`
	Kind  FieldKind `json:"kind" yaml:"kind"`
}

// SeriesPoint is one period snapshot of a time series.
type SeriesPoint struct {
	Period int     `json:"period" yaml:"period"`
	Label  string  `json:"label" yaml:"label"`
	Values []Field `json:"values" yaml:"values"`
}

// Value returns the formatted value stored under key, or "".
func (p SeriesPoint) Value(key string) string {
	for _, f := range p.Values {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Report is the formatted output of a single calculation.
type Report struct {
	Name       string        `json:"name,omitempty" yaml:"name,omitempty"`
	Calculator string        `json:"calculator" yaml:"calculator"`
	Title      string        `json:"title" yaml:"title"`
	Fields     []Field       `json:"fields" yaml:"fields"`
	Series     []SeriesPoint `json:"series,omitempty" yaml:"series,omitempty"`
	Warnings   []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Field looks up a result field by key.
func (r *Report) Field(key string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Value returns the formatted value for key, or "" when absent.
func (r *Report) Value(key string) string {
	f, _ := r.Field(key)
	return f.Value
}

// SeriesKeys returns the value keys of the series in column order.
func (r *Report) SeriesKeys() []string {
	if len(r.Series) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r.Series[0].Values))
	for _, f := range r.Series[0].Values {
		keys = append(keys, f.Key)
	}
	return keys
}

// Currency builds a currency field.
func Currency(key, label string, d decimal.Decimal) Field {
	return Field{Key: key, Label: label, Value: money.Currency(d), Kind: KindCurrency}
}

// Percent builds a percentage field from a value already expressed in percent.
func Percent(key, label string, pct decimal.Decimal) Field {
	return Field{Key: key, Label: label, Value: money.Percent(pct), Kind: KindPercent}
}

// RatioField builds a percentage field from a possibly undefined ratio.
func RatioField(key, label string, r Ratio) Field {
	return Field{Key: key, Label: label, Value: r.String(), Kind: KindPercent}
}

// Count builds an integer field.
func Count(key, label string, n int) Field {
	return Field{Key: key, Label: label, Value: decimal.NewFromInt(int64(n)).String(), Kind: KindCount}
}

// Text builds a free text field.
func Text(key, label, value string) Field {
	return Field{Key: key, Label: label, Value: value, Kind: KindText}
}

// Flag builds a yes/no field.
func Flag(key, label string, v bool) Field {
	value := "false"
	if v {
		value = "true"
	}
	return Field{Key: key, Label: label, Value: value, Kind: KindFlag}
}

// Date builds a YYYY-MM-DD date field.
func Date(key, label string, t time.Time) Field {
	return Field{Key: key, Label: label, Value: t.Format(DateLayout), Kind: KindDate}
}

// Ratio is a percentage whose denominator may have been zero.
type Ratio struct {
	Percent decimal.Decimal
	Defined bool
}

// NewRatio returns num/den expressed in percent, undefined when den is 0.
func NewRatio(num, den decimal.Decimal) Ratio {
	if den.IsZero() {
		return Ratio{}
	}
	return Ratio{Percent: money.ToPercent(num.Div(den)), Defined: true}
}

// String formats the ratio with one decimal, or N/A.
func (r Ratio) String() string {
	if !r.Defined {
		return NotAvailable
	}
	return money.Percent(r.Percent)
}

// PayoffOutcome is the result of a month-by-month payoff simulation: either
// the balance converges to zero after Months with Interest paid, or it never
// does.
type PayoffOutcome struct {
	Converges bool
	Months    int
	Interest  decimal.Decimal
}

// Converged builds a converging outcome.
func Converged(months int, interest decimal.Decimal) PayoffOutcome {
	return PayoffOutcome{Converges: true, Months: months, Interest: interest}
}

// NeverConverges is the outcome of a payment that never retires the balance.
func NeverConverges() PayoffOutcome {
	return PayoffOutcome{}
}

// MonthsString formats the month count or "Never".
func (o PayoffOutcome) MonthsString() string {
	if !o.Converges {
		return Never
	}
	return decimal.NewFromInt(int64(o.Months)).String()
}

// InterestString formats the interest or "Never".
func (o PayoffOutcome) InterestString() string {
	if !o.Converges {
		return Never
	}
	return money.Currency(o.Interest)
}
