package calculation

import (
	"context"
	"fmt"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
)

// EvaluateYear computes fiscal year `year` (1-based) from the loss postponed
// by the previous year. It has no side effects.
func EvaluateYear(sim *domain.Simulation, tables *domain.TaxYearTables, year int, postponed decimal.Decimal) (domain.FiscalYearResult, error) {
	taxCalc := NewIncomeTaxCalculator(tables)

	property := PropertyIncome{Net: decimal.Zero, AmountToPostpone: decimal.Zero}
	if sim.CalculationMethod == domain.WithPropertyIncome {
		strategy, err := StrategyFor(sim.Investment.OwnershipStatus)
		if err != nil {
			return domain.FiscalYearResult{}, err
		}
		property, err = strategy.NetTaxablePropertyIncome(&sim.Investment, year, postponed, tables.Property)
		if err != nil {
			return domain.FiscalYearResult{}, err
		}
	} else if sim.CalculationMethod != domain.WithoutPropertyIncome {
		return domain.FiscalYearResult{}, fmt.Errorf("%w: unknown calculation method %q", domain.ErrInvalidInput, sim.CalculationMethod)
	}

	global := taxCalc.GlobalNetTaxableIncome(&sim.Household, property.Net)
	incomeTax, err := taxCalc.CalculateIncomeTax(&sim.Household, global)
	if err != nil {
		return domain.FiscalYearResult{}, err
	}
	incomeTax.NetPropertyIncome = property.Net
	incomeTax.PropertyIncomeNeg = property.IsNegative
	incomeTax.PostponedNegative = property.AmountToPostpone

	social := decimal.Zero
	if sim.CalculationMethod == domain.WithPropertyIncome {
		social = SocialContributions(property.Net, tables.SocialContributionsRate)
	}

	return domain.FiscalYearResult{
		Year:                      year,
		IncomeTax:                 incomeTax,
		SocialContributionsAmount: social,
	}, nil
}

// GenerateProjection folds EvaluateYear over the horizon, threading the
// postponed loss from one year into the next. On failure the years already
// computed are returned with the error.
func GenerateProjection(ctx context.Context, sim *domain.Simulation, tables *domain.TaxYearTables, logger Logger) ([]domain.FiscalYearResult, error) {
	if sim.InvestmentTopFiscalYear < 1 {
		return nil, fmt.Errorf("%w: investment_top_fiscal_year must be at least 1, got %d", domain.ErrInvalidHorizon, sim.InvestmentTopFiscalYear)
	}
	if logger == nil {
		logger = NopLogger{}
	}

	years := make([]domain.FiscalYearResult, 0, sim.InvestmentTopFiscalYear)
	postponed := decimal.Zero
	for year := 1; year <= sim.InvestmentTopFiscalYear; year++ {
		if err := ctx.Err(); err != nil {
			return years, err
		}
		result, err := EvaluateYear(sim, tables, year, postponed)
		if err != nil {
			return years, fmt.Errorf("fiscal year %d: %w", year, err)
		}
		logger.Debugf("year %d: net property %s, postponed %s, income tax %s",
			year,
			result.IncomeTax.NetPropertyIncome.StringFixed(2),
			result.IncomeTax.PostponedNegative.StringFixed(2),
			result.IncomeTax.IncomeTaxAmount.StringFixed(2))
		years = append(years, result)
		postponed = result.IncomeTax.PostponedNegative
	}
	return years, nil
}
