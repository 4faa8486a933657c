package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is a batch of calculator runs sharing a reference date and
// tax year.
type ScenarioFile struct {
	ReferenceDate string     `yaml:"reference_date,omitempty" json:"referenceDate,omitempty"`
	TaxYear       int        `yaml:"tax_year,omitempty" json:"taxYear,omitempty"`
	BracketMode   string     `yaml:"bracket_mode,omitempty" json:"bracketMode,omitempty"`
	Scenarios     []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one named calculator run.
type Scenario struct {
	Name       string      `yaml:"name" json:"name"`
	Calculator string      `yaml:"calculator" json:"calculator"`
	Inputs     domain.Form `yaml:"inputs" json:"inputs"`
}

// Reference returns the file's reference date, or def when none is set.
// The date has been checked by validation.
func (f *ScenarioFile) Reference(def time.Time) time.Time {
	if f.ReferenceDate == "" {
		return def
	}
	t, err := time.Parse(domain.DateLayout, f.ReferenceDate)
	if err != nil {
		return def
	}
	return t
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario YAML.
func (ip *InputParser) Parse(data []byte) (*ScenarioFile, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.Validate(&file); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &file, nil
}

// Validate checks the structure of a scenario file and fills in missing
// scenario names. Input values are not validated: calculators read anything
// unparseable as zero.
func (ip *InputParser) Validate(file *ScenarioFile) error {
	if file.ReferenceDate != "" {
		if _, err := time.Parse(domain.DateLayout, file.ReferenceDate); err != nil {
			return fmt.Errorf("reference_date must be YYYY-MM-DD: %w", err)
		}
	}
	if file.TaxYear < 0 {
		return fmt.Errorf("tax_year cannot be negative")
	}
	if _, err := calculation.ParseBracketMode(file.BracketMode); err != nil {
		return err
	}
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i := range file.Scenarios {
		s := &file.Scenarios[i]
		s.Calculator = strings.ToLower(strings.TrimSpace(s.Calculator))
		if _, ok := calculation.Info(s.Calculator); !ok {
			return fmt.Errorf("scenario %d: %w: %q", i, calculation.ErrUnknownCalculator, s.Calculator)
		}
		if strings.TrimSpace(s.Name) == "" {
			s.Name = fmt.Sprintf("%s-%d", s.Calculator, i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
		if s.Inputs == nil {
			s.Inputs = domain.Form{}
		}
	}
	return nil
}
