package main

import (
	"log/slog"

	"github.com/minikeyz/french-tax-system/internal/calculation"
	"github.com/minikeyz/french-tax-system/internal/config"
	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/minikeyz/french-tax-system/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the settings shared by every subcommand. Flags start from the
// FRENCHTAX_* environment and override it.
type app struct {
	rt        *config.Runtime
	format    string
	logger    *slog.Logger
	tables    domain.StaticTables
	engine    *calculation.CalculationEngine
	parser    *config.InputParser
	logFormat string
	logLevel  string
}

func newRootCmd(rt *config.Runtime) *cobra.Command {
	a := &app{rt: rt, parser: config.NewInputParser()}

	root := &cobra.Command{
		Use:          "frenchtax",
		Short:        "French household income tax and rental property simulator",
		Long:         "Simulates the French income tax of a household over several fiscal years, with or without the income of a rental property investment.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.rt.TablesPath, "tables", rt.TablesPath, "tax tables YAML file (default: embedded tables)")
	flags.StringVarP(&a.format, "format", "f", "console", "output format: console, csv, html, json")
	flags.StringVar(&a.logFormat, "log-format", rt.LogFormat, "log format: text or json")
	flags.StringVar(&a.logLevel, "log-level", rt.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		newSimulateCmd(a),
		newCompareCmd(a),
		newBatchCmd(a),
		newTablesCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = logging.New(cmd.ErrOrStderr(), a.logFormat, a.logLevel)

	tables, err := config.LoadTables(a.rt.TablesPath)
	if err != nil {
		return err
	}
	a.tables = tables
	a.engine = calculation.NewCalculationEngine(tables)
	a.engine.SetLogger(calculation.NewSlogLogger(a.logger))
	return nil
}
