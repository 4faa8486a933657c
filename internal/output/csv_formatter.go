package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CSVFormatter writes reports in long form: one row per result field and
// one row per series value.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(reports []*domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Calculator", "Section", "Period", "Label", "Key", "Value"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range reports {
		name := r.Name
		if name == "" {
			name = r.Calculator
		}
		for _, f := range r.Fields {
			if err := w.Write([]string{name, r.Calculator, "result", "", f.Label, f.Key, f.Value}); err != nil {
				return nil, err
			}
		}
		for _, p := range r.Series {
			period := strconv.Itoa(p.Period)
			for _, v := range p.Values {
				if err := w.Write([]string{name, r.Calculator, "series", period, p.Label, v.Key, v.Value}); err != nil {
					return nil, err
				}
			}
		}
		for _, warning := range r.Warnings {
			if err := w.Write([]string{name, r.Calculator, "warning", "", "", "", warning}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
