package calculation

import (
	"context"
	"fmt"

	"github.com/minikeyz/french-tax-system/internal/domain"
)

// CalculationEngine orchestrates the multi-year tax simulation. It holds no
// per-run state and may be shared between goroutines.
type CalculationEngine struct {
	Tables domain.TableProvider
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine(tables domain.TableProvider) *CalculationEngine {
	return &CalculationEngine{
		Tables: tables,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunSimulation calculates every fiscal year of the simulation. When a year
// fails, the returned result still carries the years computed before it.
func (ce *CalculationEngine) RunSimulation(ctx context.Context, sim *domain.Simulation) (*domain.SimulationResult, error) {
	if sim == nil {
		return nil, fmt.Errorf("%w: nil simulation", domain.ErrInvalidInput)
	}
	if err := sim.Validate(); err != nil {
		return nil, err
	}
	if ce.Tables == nil {
		return nil, fmt.Errorf("%w: no tax tables configured", domain.ErrUnknownTaxYear)
	}
	tables, err := ce.Tables.Tables(sim.TaxYear)
	if err != nil {
		return nil, err
	}

	result := &domain.SimulationResult{
		RunID:             idFunc(),
		StartedAt:         nowFunc(),
		Name:              sim.Name,
		TaxYear:           sim.TaxYear,
		CalculationMethod: sim.CalculationMethod,
	}

	ce.Logger.Infof("simulation %q: %s over %d years (tax year %d)",
		sim.Name, sim.CalculationMethod, sim.InvestmentTopFiscalYear, sim.TaxYear)

	years, err := GenerateProjection(ctx, sim, tables, ce.Logger)
	result.Years = years
	if err != nil {
		ce.Logger.Errorf("simulation %q aborted after %d years: %v", sim.Name, len(years), err)
		return result, err
	}
	return result, nil
}
