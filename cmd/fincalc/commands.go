package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
	"github.com/rgehrsitz/fincalc/internal/tui"
)

func calcCmd(a *app) *cobra.Command {
	var (
		sets      []string
		inputFile string
		query     string
		outFile   string
	)
	cmd := &cobra.Command{
		Use:   "calc <calculator>",
		Short: "Run one calculator",
		Long: `Run one calculator with inputs given as key=value pairs.

Examples:
  fincalc calc car-loan --set car_price=25000 --set interest_rate=6 --set loan_term=5
  fincalc calc credit-card -s balance=5000 -s interest_rate=20 -s monthly_payment=100 -f json
  fincalc calc paycheck -s salary=85000 --query '$.fields[?(@.key=="net_pay")].value'
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			info, ok := calculation.Info(name)
			if !ok {
				return fmt.Errorf("%w: %q (see 'fincalc list')", calculation.ErrUnknownCalculator, args[0])
			}

			engine := a.engine
			form := domain.Form{}
			if inputFile != "" {
				file, err := config.NewInputParser().LoadFromFile(inputFile)
				if err != nil {
					return err
				}
				if engine, err = a.scenarioEngine(file); err != nil {
					return err
				}
				for _, s := range file.Scenarios {
					if s.Calculator == info.Name {
						form = s.Inputs.Clone()
						break
					}
				}
			}
			overrides, err := parseSets(sets)
			if err != nil {
				return err
			}
			for k, v := range overrides {
				form[k] = v
			}
			for _, k := range unknownKeys(info, form) {
				a.logger.Warn("input is not used by calculator", zap.String("calculator", info.Name), zap.String("key", k))
			}

			report, err := engine.Calculate(cmd.Context(), info.Name, form)
			if err != nil {
				return err
			}
			return a.emit(cmd, []*domain.Report{report}, query, outFile)
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "input value as key=value (repeatable)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "scenario file to take the calculator's inputs from")
	cmd.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression applied to the JSON result")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the report to a file")
	return cmd
}

func runCmd(a *app) *cobra.Command {
	var (
		query   string
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Run every scenario of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine, err := a.scenarioEngine(file)
			if err != nil {
				return err
			}
			reports := make([]*domain.Report, 0, len(file.Scenarios))
			for _, s := range file.Scenarios {
				report, err := engine.Calculate(cmd.Context(), s.Calculator, s.Inputs)
				if err != nil {
					return fmt.Errorf("scenario %s: %w", s.Name, err)
				}
				report.Name = s.Name
				reports = append(reports, report)
			}
			a.logger.Info("ran scenarios", zap.String("file", args[0]), zap.Int("count", len(reports)))
			return a.emit(cmd, reports, query, outFile)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression applied to the JSON results")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the reports to a file")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenarios.yaml>",
		Short: "Validate a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if _, err := a.scenarioEngine(file); err != nil {
				return err
			}
			for _, s := range file.Scenarios {
				info, _ := calculation.Info(s.Calculator)
				for _, k := range unknownKeys(info, s.Inputs) {
					fmt.Fprintf(cmd.OutOrStdout(), "warning: scenario %s: input %q is not used by %s\n", s.Name, k, s.Calculator)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid (%d scenarios)\n", args[0], len(file.Scenarios))
			return nil
		},
	}
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calculators := calculation.Calculators()
			if output.NormalizeFormatName(a.settings.Format) == "json" {
				return writeJSON(cmd.OutOrStdout(), calculators)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tINPUTS")
			for _, c := range calculators {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.Name, c.Title, len(c.Fields))
			}
			return w.Flush()
		},
	}
}

func fieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <calculator>",
		Short: "Describe the inputs of a calculator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := calculation.Info(strings.ToLower(args[0]))
			if !ok {
				return fmt.Errorf("%w: %q", calculation.ErrUnknownCalculator, args[0])
			}
			if output.NormalizeFormatName(a.settings.Format) == "json" {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tKIND\tDEFAULT\tOPTIONS")
			for _, f := range info.Fields {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.Key, f.Label, f.Kind, f.Default, strings.Join(f.Options, ", "))
			}
			return w.Flush()
		},
	}
}

func taxTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tax-tables [year]",
		Short: "Print the tax tables in effect as YAML",
		Long: `Print the built-in tax tables, merged with --tables overrides, as YAML.
The output can be edited and passed back with --tables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := a.engine.Tables.Tables()
			if len(args) == 1 {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], err)
				}
				cfg, ok := a.engine.Tables.Config(year)
				if !ok {
					return fmt.Errorf("tax year %d not available (have %v)", year, a.engine.Tables.Years())
				}
				tables = []domain.TaxYearConfig{cfg}
			}
			data, err := taxtable.Export(tables)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [scenarios.yaml]",
		Short: "Open the interactive calculators",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copied := *a.engine
			engine := &copied
			initial := map[string]domain.Form{}
			if len(args) == 1 {
				file, err := config.NewInputParser().LoadFromFile(args[0])
				if err != nil {
					return err
				}
				if engine, err = a.scenarioEngine(file); err != nil {
					return err
				}
				initial = initialForms(file)
			}
			// Log lines would corrupt the alternate screen.
			engine.Logger = calculation.NopLogger{}

			p := tea.NewProgram(tui.NewModel(engine, initial), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}

// initialForms takes the first scenario of each calculator as its form.
func initialForms(file *config.ScenarioFile) map[string]domain.Form {
	out := map[string]domain.Form{}
	for _, s := range file.Scenarios {
		if _, ok := out[s.Calculator]; !ok {
			out[s.Calculator] = s.Inputs.Clone()
		}
	}
	return out
}

// scenarioEngine returns a copy of the engine with the scenario file's
// reference date, tax year and bracket mode applied.
func (a *app) scenarioEngine(file *config.ScenarioFile) (*calculation.Engine, error) {
	engine := *a.engine
	engine.ReferenceDate = file.Reference(engine.ReferenceDate)
	if file.TaxYear > 0 {
		engine.TaxYear = file.TaxYear
	}
	if file.BracketMode != "" {
		mode, err := calculation.ParseBracketMode(file.BracketMode)
		if err != nil {
			return nil, err
		}
		engine.Mode = mode
	}
	return &engine, nil
}

// emit prints a query result or the formatted reports, or writes them to
// outFile.
func (a *app) emit(cmd *cobra.Command, reports []*domain.Report, query, outFile string) error {
	if query != "" {
		value, err := output.Query(reports, query)
		if err != nil {
			return err
		}
		data, err := output.FormatQueryResult(value)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	f, err := output.LookupFormatter(a.settings.Format)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := output.WriteFormatted(f, reports, outFile); err != nil {
			return err
		}
		a.logger.Info("wrote report", zap.String("file", outFile), zap.String("format", f.Name()))
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s report to %s\n", f.Name(), outFile)
		return nil
	}
	if output.IsBinary(f) {
		return fmt.Errorf("%s output must be written to a file; use --output", f.Name())
	}
	data, err := f.Format(reports)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// parseSets splits key=value pairs.
func parseSets(sets []string) (domain.Form, error) {
	form := domain.Form{}
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		form[key] = strings.TrimSpace(value)
	}
	return form, nil
}

// unknownKeys lists form keys the calculator does not read.
func unknownKeys(info calculation.CalculatorInfo, form domain.Form) []string {
	known := make(map[string]bool, len(info.Fields))
	for _, f := range info.Fields {
		known[f.Key] = true
	}
	var out []string
	for _, k := range form.Keys() {
		if !known[k] {
			out = append(out, k)
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
