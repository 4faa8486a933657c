package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the settings.
const EnvPrefix = "FINCALC"

// Settings holds the application settings.
type Settings struct {
	TaxYear             int         `mapstructure:"tax_year"`
	ReferenceDate       string      `mapstructure:"reference_date"`
	ProgressiveBrackets bool        `mapstructure:"progressive_brackets"`
	Tables              string      `mapstructure:"tables"`
	Format              string      `mapstructure:"format"`
	Log                 LogSettings `mapstructure:"log"`
}

// LogSettings holds logging configuration options
type LogSettings struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// NewViper returns a viper instance with the defaults and environment
// binding applied. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("tax_year", calculation.DefaultTaxYear)
	v.SetDefault("reference_date", "")
	v.SetDefault("progressive_brackets", false)
	v.SetDefault("tables", "")
	v.SetDefault("format", "console")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional settings file into v and decodes the
// merged result.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	if s.TaxYear < 0 {
		return fmt.Errorf("tax_year cannot be negative")
	}
	if s.ReferenceDate != "" {
		if _, err := time.Parse(domain.DateLayout, s.ReferenceDate); err != nil {
			return fmt.Errorf("reference_date must be YYYY-MM-DD: %w", err)
		}
	}
	switch strings.ToLower(s.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", s.Log.Format)
	}
	return nil
}

// Reference returns the configured reference date, or today when none is
// set.
func (s *Settings) Reference(now time.Time) time.Time {
	if s.ReferenceDate != "" {
		if t, err := time.Parse(domain.DateLayout, s.ReferenceDate); err == nil {
			return t
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// BracketMode returns the configured federal bracket formula.
func (s *Settings) BracketMode() calculation.BracketMode {
	if s.ProgressiveBrackets {
		return calculation.BracketProgressive
	}
	return calculation.BracketReference
}
