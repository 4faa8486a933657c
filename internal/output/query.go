package output

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Query evaluates a JSONPath expression against the JSON form of reports,
// the same document the json format prints.
func Query(reports []*domain.Report, path string) (any, error) {
	data, err := json.Marshal(jsonRoot(reports))
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return value, nil
}

// FormatQueryResult prints a query result: strings bare, everything else as
// indented JSON.
func FormatQueryResult(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s + "\n"), nil
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
