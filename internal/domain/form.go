package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/fincalc/pkg/money"
	"github.com/shopspring/decimal"
)

// DateLayout is the layout used for dates entered in forms and scenario files.
const DateLayout = "2006-01-02"

// Form holds the raw user input of one calculator, keyed by field name.
// Accessors never fail: missing or unparseable values fall back to zero or to
// the supplied default.
type Form map[string]string

// Decimal returns the named field as a decimal, 0 when missing or invalid.
func (f Form) Decimal(key string) decimal.Decimal {
	return money.Parse(f[key])
}

// DecimalOr returns the named field, or def when the field is empty.
// A present but unparseable value still reads as 0.
func (f Form) DecimalOr(key string, def decimal.Decimal) decimal.Decimal {
	if strings.TrimSpace(f[key]) == "" {
		return def
	}
	return money.Parse(f[key])
}

// Rate returns a percentage field converted to a rate (6 -> 0.06).
func (f Form) Rate(key string) decimal.Decimal {
	return money.FromPercent(f.Decimal(key))
}

var (
	maxFormInt = decimal.NewFromInt(math.MaxInt32)
	minFormInt = decimal.NewFromInt(math.MinInt32)
)

// Int returns the named field truncated to an integer and clamped to the
// int32 range.
func (f Form) Int(key string) int {
	d := f.Decimal(key)
	switch {
	case d.GreaterThan(maxFormInt):
		return math.MaxInt32
	case d.LessThan(minFormInt):
		return math.MinInt32
	}
	return int(d.IntPart())
}

// Bool reports whether the named field holds a truthy value.
func (f Form) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(f[key])) {
	case "":
		return false
	case "y", "yes", "on", "checked":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(f[key]))
	return err == nil && b
}

// String returns the trimmed field or def when empty.
func (f Form) String(key, def string) string {
	v := strings.TrimSpace(f[key])
	if v == "" {
		return def
	}
	return v
}

// Date parses a YYYY-MM-DD field, returning def when missing or invalid.
func (f Form) Date(key string, def time.Time) time.Time {
	v := strings.TrimSpace(f[key])
	if v == "" {
		return def
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return def
	}
	return t
}

// Keys returns the field names in sorted order.
func (f Form) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the form.
func (f Form) Clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
