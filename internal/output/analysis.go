package output

import (
	"github.com/minikeyz/french-tax-system/internal/domain"
	money "github.com/minikeyz/french-tax-system/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Highlights summarizes a run for the report headers.
type Highlights struct {
	Years                    int
	TotalIncomeTax           decimal.Decimal
	TotalSocialContributions decimal.Decimal
	HighestTaxYear           int
	HighestTax               decimal.Decimal
	// LossExhaustedYear is the first year that ends with nothing postponed
	// after an earlier year had postponed a loss; 0 when it never happens.
	LossExhaustedYear int
	// ExtraLiability is the cost of the investment over the horizon, set for comparisons.
	ExtraLiability *decimal.Decimal
}

// AnalyzeReport extracts the headline figures of a report.
func AnalyzeReport(report *Report) Highlights {
	var h Highlights
	result := report.primary()
	if result == nil {
		return h
	}

	taxes := make([]decimal.Decimal, 0, len(result.Years))
	social := make([]decimal.Decimal, 0, len(result.Years))
	carried := false
	for _, y := range result.Years {
		taxes = append(taxes, y.IncomeTax.IncomeTaxAmount)
		social = append(social, y.SocialContributionsAmount)
		if h.HighestTaxYear == 0 || y.IncomeTax.IncomeTaxAmount.GreaterThan(h.HighestTax) {
			h.HighestTaxYear = y.Year
			h.HighestTax = y.IncomeTax.IncomeTaxAmount
		}
		postponed := y.IncomeTax.PostponedNegative.IsPositive()
		if carried && !postponed && h.LossExhaustedYear == 0 {
			h.LossExhaustedYear = y.Year
		}
		carried = carried || postponed
	}

	h.Years = len(result.Years)
	h.TotalIncomeTax = money.Sum(taxes...).Decimal
	h.TotalSocialContributions = money.Sum(social...).Decimal
	if report.Comparison != nil {
		extra := report.Comparison.TotalExtraLiability
		h.ExtraLiability = &extra
	}
	return h
}

// methodLabel is the human name of a calculation method.
func methodLabel(m domain.CalculationMethod) string {
	switch m {
	case domain.WithPropertyIncome:
		return "with property income"
	case domain.WithoutPropertyIncome:
		return "without property income"
	default:
		return string(m)
	}
}
