package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/taxtable"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what the persistent pre-run resolves for every command.
type app struct {
	viper    *viper.Viper
	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.Engine
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{viper: config.NewViper(), now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Personal finance calculators",
		Long: `Car loan, credit card payoff, paycheck, savings goal and compound growth
calculators with console, JSON, CSV, Markdown and PDF output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "settings file (yaml, json or toml)")
	flags.StringP("format", "f", "console", "output format")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("tables", "", "YAML file with tax tables that replace or extend the built-in years")
	flags.String("reference-date", "", "start date for payoff and goal dates (YYYY-MM-DD, default today)")
	flags.Int("tax-year", calculation.DefaultTaxYear, "tax year used when a paycheck has none")
	flags.Bool("progressive-brackets", false, "tax the top bracket on income above its threshold only")
	if err := bindFlags(a.viper, flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		calcCmd(a),
		runCmd(a),
		validateCmd(a),
		listCmd(a),
		fieldsCmd(a),
		taxTablesCmd(a),
		tuiCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// bindFlags maps the persistent flags onto settings keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"format":               "format",
		"log.level":            "log-level",
		"log.format":           "log-format",
		"tables":               "tables",
		"reference_date":       "reference-date",
		"tax_year":             "tax-year",
		"progressive_brackets": "progressive-brackets",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(a.viper, configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings.Log)
	if err != nil {
		return err
	}

	tables := taxtable.Default()
	if settings.Tables != "" {
		tables, err = taxtable.LoadWithOverrides(settings.Tables)
		if err != nil {
			return err
		}
		logger.Info("loaded tax tables", zap.String("file", settings.Tables), zap.Ints("years", tables.Years()))
	}

	engine := calculation.NewEngine(tables, settings.Reference(a.now()))
	if settings.TaxYear > 0 {
		engine.TaxYear = settings.TaxYear
	}
	engine.Mode = settings.BracketMode()
	engine.Logger = newZapLogger(logger)

	a.settings = settings
	a.logger = logger
	a.engine = engine
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
