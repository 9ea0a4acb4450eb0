package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/minikeyz/french-tax-system/internal/output"
	"github.com/minikeyz/french-tax-system/internal/server"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSimulateCmd(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "simulate [simulation-file]",
		Short: "Run a simulation year by year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if method != "" {
				*sim = sim.WithMethod(domain.CalculationMethod(method))
			}

			result, runErr := a.engine.RunSimulation(cmd.Context(), sim)
			if result != nil && len(result.Years) > 0 {
				if err := a.render(cmd, &output.Report{Result: result}, sim.TaxYear); err != nil {
					return err
				}
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "override calculation_method (with_property_income or without_property_income)")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [simulation-file]",
		Short: "Compare the household tax with and without the property income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			cmp, runErr := a.engine.Compare(cmd.Context(), sim)
			if cmp != nil && len(cmp.Years) > 0 {
				if err := a.render(cmd, &output.Report{Comparison: cmp}, sim.TaxYear); err != nil {
					return err
				}
			}
			return runErr
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "batch [simulation-file...]",
		Short: "Run several independent simulations concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sims := make([]*domain.Simulation, 0, len(args))
			for _, path := range args {
				sim, err := a.parser.LoadFromFile(path)
				if err != nil {
					return err
				}
				sims = append(sims, sim)
			}

			if !cmd.Flags().Changed("concurrency") {
				concurrency = a.rt.BatchConcurrency
			}
			items, err := a.engine.RunBatch(cmd.Context(), sims, concurrency)
			if err != nil {
				return err
			}

			var failed []error
			for _, item := range items {
				if item.Err != nil {
					failed = append(failed, fmt.Errorf("%s: %w", args[item.Index], item.Err))
					continue
				}
				if err := a.render(cmd, &output.Report{Result: item.Result}, sims[item.Index].TaxYear); err != nil {
					return err
				}
			}
			return errors.Join(failed...)
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum simulations running at once (default FRENCHTAX_BATCH_CONCURRENCY)")
	return cmd
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [year]",
		Short: "List the loaded tax years or describe one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, y := range a.tables.Years() {
					fmt.Fprintln(out, y)
				}
				return nil
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: invalid year %q", domain.ErrInvalidInput, args[0])
			}
			t, err := a.tables.Tables(year)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Tax year %d\n", t.Year)
			for _, b := range t.Brackets {
				upper := "and above"
				if !b.Unbounded() {
					upper = "to " + output.FormatCurrency(*b.Upper)
				}
				fmt.Fprintf(out, "  %s %s: %s\n", output.FormatCurrency(b.Lower), upper, output.FormatPercentage(b.Rate))
			}
			for _, line := range output.GenerateAssumptions(t) {
				fmt.Fprintf(out, "  - %s\n", line)
			}
			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example simulation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.SaveSimulation(exampleSimulation(), args[0]); err != nil {
				return err
			}
			a.logger.Info("example simulation written", "path", args[0])
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(a.engine, a.parser, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe(a.rt.Addr, a.rt.ReadTimeout, a.rt.WriteTimeout) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&a.rt.Addr, "addr", a.rt.Addr, "listen address")
	return cmd
}

// render writes the report, with the tax-year assumptions, in the selected format
func (a *app) render(cmd *cobra.Command, report *output.Report, taxYear int) error {
	if t, err := a.tables.Tables(taxYear); err == nil {
		report.Assumptions = output.GenerateAssumptions(t)
	}
	return output.GenerateReport(cmd.OutOrStdout(), report, a.format)
}

func exampleSimulation() *domain.Simulation {
	return &domain.Simulation{
		Name:                    "Lyon",
		TaxYear:                 2021,
		CalculationMethod:       domain.WithPropertyIncome,
		InvestmentTopFiscalYear: 2,
		Household: domain.Household{
			MaritalStatus:            domain.MaritalStatusMarried,
			DependentChildren:        2,
			AlternateCustodyChildren: 1,
			SalaryPerson1:            decimal.NewFromInt(75000),
			SalaryPerson2:            decimal.NewFromInt(25000),
		},
		Investment: domain.PropertyInvestment{
			Price:                  decimal.NewFromInt(200000),
			InitialWorks:           decimal.NewFromInt(40000),
			LandlordCharges:        decimal.NewFromInt(3600),
			PropertyManagement:     decimal.NewFromInt(1856),
			RentGuaranteeInsurance: decimal.NewFromInt(812),
			LandlordInsurance:      decimal.NewFromInt(100),
			PropertyTax:            decimal.NewFromInt(2000),
			LoanInterest:           decimal.RequireFromString("5499.91"),
			LoanInsurance:          decimal.NewFromInt(1740),
			OwnershipStatus:        domain.OwnershipBareRental,
			ExpenseRegime:          domain.RegimeItemizedExpenses,
			Rent:                   decimal.NewFromInt(23200),
		},
	}
}
