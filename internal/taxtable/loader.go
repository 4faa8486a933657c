package taxtable

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a tax table file.
type File struct {
	Years []domain.TaxYearConfig `yaml:"years"`
}

// Parse decodes and validates YAML tax tables.
func Parse(data []byte) ([]domain.TaxYearConfig, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse tax tables: %w", err)
	}
	if len(f.Years) == 0 {
		return nil, fmt.Errorf("tax table file defines no years")
	}
	seen := make(map[int]bool, len(f.Years))
	for i, cfg := range f.Years {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("tax table %d invalid: %w", i, err)
		}
		if seen[cfg.Year] {
			return nil, fmt.Errorf("tax year %d defined more than once", cfg.Year)
		}
		seen[cfg.Year] = true
	}
	return f.Years, nil
}

// LoadFile reads YAML tax tables from filename.
func LoadFile(filename string) ([]domain.TaxYearConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	tables, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tables, nil
}

// LoadWithOverrides returns the built-in lookup, merged with the tables in
// filename when filename is not empty.
func LoadWithOverrides(filename string) (*Lookup, error) {
	lookup := Default()
	if filename == "" {
		return lookup, nil
	}
	tables, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return lookup.Merge(tables...), nil
}

// Export encodes tables in the same layout Parse reads.
func Export(tables []domain.TaxYearConfig) ([]byte, error) {
	return yaml.Marshal(File{Years: tables})
}
