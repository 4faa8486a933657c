package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
	"github.com/rgehrsitz/fincalc/internal/tui"
)

func main() {
	settings, err := config.LoadSettings(config.NewViper(), os.Getenv(config.EnvPrefix+"_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tables := taxtable.Default()
	if settings.Tables != "" {
		if tables, err = taxtable.LoadWithOverrides(settings.Tables); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	engine := calculation.NewEngine(tables, settings.Reference(time.Now()))
	engine.TaxYear = settings.TaxYear
	engine.Mode = settings.BracketMode()

	// An optional scenario file pre-fills the forms.
	initial := map[string]domain.Form{}
	if len(os.Args) > 1 {
		file, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.ReferenceDate = file.Reference(engine.ReferenceDate)
		for _, s := range file.Scenarios {
			if _, ok := initial[s.Calculator]; !ok {
				initial[s.Calculator] = s.Inputs
			}
		}
	}

	p := tea.NewProgram(
		tui.NewModel(engine, initial),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
