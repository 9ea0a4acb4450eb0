package calculation

import (
	"context"
	"fmt"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
)

// Compare runs the simulation with and without the property income and
// reports the extra liability caused by the investment. When a run stops
// early, the comparison of the years both runs completed is returned with the
// error.
func (ce *CalculationEngine) Compare(ctx context.Context, sim *domain.Simulation) (*domain.SimulationComparison, error) {
	if sim == nil {
		return nil, fmt.Errorf("%w: nil simulation", domain.ErrInvalidInput)
	}
	with := sim.WithMethod(domain.WithPropertyIncome)
	without := sim.WithMethod(domain.WithoutPropertyIncome)

	withResult, withErr := ce.RunSimulation(ctx, &with)
	if withResult == nil {
		return nil, fmt.Errorf("with property income: %w", withErr)
	}
	withoutResult, withoutErr := ce.RunSimulation(ctx, &without)
	if withoutResult == nil {
		return nil, fmt.Errorf("without property income: %w", withoutErr)
	}

	cmp := buildComparison(sim, withResult, withoutResult)
	switch {
	case withErr != nil:
		return cmp, fmt.Errorf("with property income: %w", withErr)
	case withoutErr != nil:
		return cmp, fmt.Errorf("without property income: %w", withoutErr)
	}
	return cmp, nil
}

func buildComparison(sim *domain.Simulation, with, without *domain.SimulationResult) *domain.SimulationComparison {
	cmp := &domain.SimulationComparison{
		Name:                     sim.Name,
		TaxYear:                  sim.TaxYear,
		With:                     with,
		Without:                  without,
		Years:                    make([]domain.YearComparison, 0, len(with.Years)),
		TotalExtraIncomeTax:      decimal.Zero,
		TotalSocialContributions: decimal.Zero,
		TotalExtraLiability:      decimal.Zero,
	}

	for i, w := range with.Years {
		if i >= len(without.Years) {
			break
		}
		wo := without.Years[i]
		extraTax := w.IncomeTax.IncomeTaxAmount.Sub(wo.IncomeTax.IncomeTaxAmount)
		extraTotal := extraTax.Add(w.SocialContributionsAmount)

		cmp.Years = append(cmp.Years, domain.YearComparison{
			Year:                         w.Year,
			IncomeTaxWithProperty:        w.IncomeTax.IncomeTaxAmount,
			IncomeTaxWithoutProperty:     wo.IncomeTax.IncomeTaxAmount,
			ExtraIncomeTax:               extraTax,
			SocialContributions:          w.SocialContributionsAmount,
			ExtraTotalLiability:          extraTotal,
			NetTaxablePropertyIncome:     w.IncomeTax.NetPropertyIncome,
			PostponedNegativeAfterFiling: w.IncomeTax.PostponedNegative,
		})
		cmp.TotalExtraIncomeTax = cmp.TotalExtraIncomeTax.Add(extraTax)
		cmp.TotalSocialContributions = cmp.TotalSocialContributions.Add(w.SocialContributionsAmount)
		cmp.TotalExtraLiability = cmp.TotalExtraLiability.Add(extraTotal)
	}
	return cmp
}
