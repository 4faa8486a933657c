package output

import (
	"encoding/json"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// JSONFormatter serializes reports as pretty-printed JSON: a single report as
// an object, several as an array.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(reports []*domain.Report) ([]byte, error) {
	data, err := json.MarshalIndent(jsonRoot(reports), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func jsonRoot(reports []*domain.Report) any {
	if len(reports) == 1 {
		return reports[0]
	}
	if reports == nil {
		return []*domain.Report{}
	}
	return reports
}
