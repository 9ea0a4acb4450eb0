package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeTaxResult is the income-tax breakdown of one fiscal year
type IncomeTaxResult struct {
	FiscalShares         decimal.Decimal `json:"fiscal_shares"`
	BaselineShares       decimal.Decimal `json:"baseline_shares"`
	SingleParentMarkup   decimal.Decimal `json:"single_parent_markup"`
	GlobalNetIncome      decimal.Decimal `json:"global_net_taxable_income"`
	NetPropertyIncome    decimal.Decimal `json:"net_taxable_property_income"`
	PropertyIncomeNeg    bool            `json:"is_property_income_negative"`
	PostponedNegative    decimal.Decimal `json:"postponed_negative_property_income"`
	FamilyQuotient       decimal.Decimal `json:"family_quotient"`
	CappedFamilyQuotient decimal.Decimal `json:"capped_family_quotient"`
	AggregatedTax        decimal.Decimal `json:"aggregated_taxes"`
	CappedAggregatedTax  decimal.Decimal `json:"capped_aggregated_taxes"`
	MarginalRate         decimal.Decimal `json:"marginal_rate"`
	CappingBenefit       decimal.Decimal `json:"capping_benefit"`
	AlmostFinalTax       decimal.Decimal `json:"almost_final_income_tax"`
	DiscountApplied      decimal.Decimal `json:"discount_applied"`
	IncomeTaxAmount      decimal.Decimal `json:"income_tax_amount"`
	AverageTaxRate       decimal.Decimal `json:"average_tax_rate"`
}

// FiscalYearResult is the outcome of one year of the horizon
type FiscalYearResult struct {
	Year                      int             `json:"year"`
	IncomeTax                 IncomeTaxResult `json:"income_tax"`
	SocialContributionsAmount decimal.Decimal `json:"social_contributions_amount"`
}

// TotalLiability returns income tax plus social contributions for the year
func (r FiscalYearResult) TotalLiability() decimal.Decimal {
	return r.IncomeTax.IncomeTaxAmount.Add(r.SocialContributionsAmount)
}

// SimulationResult is the ordered sequence of yearly results for one run
type SimulationResult struct {
	RunID             string             `json:"run_id"`
	StartedAt         time.Time          `json:"started_at"`
	Name              string             `json:"name,omitempty"`
	TaxYear           int                `json:"tax_year"`
	CalculationMethod CalculationMethod  `json:"calculation_method"`
	Years             []FiscalYearResult `json:"years"`
}

// TotalIncomeTax sums the income tax over the computed years
func (s *SimulationResult) TotalIncomeTax() decimal.Decimal {
	total := decimal.Zero
	for _, y := range s.Years {
		total = total.Add(y.IncomeTax.IncomeTaxAmount)
	}
	return total
}

// TotalSocialContributions sums the social contributions over the computed years
func (s *SimulationResult) TotalSocialContributions() decimal.Decimal {
	total := decimal.Zero
	for _, y := range s.Years {
		total = total.Add(y.SocialContributionsAmount)
	}
	return total
}

// YearComparison holds one year evaluated with and without the property income
type YearComparison struct {
	Year                         int             `json:"year"`
	IncomeTaxWithProperty        decimal.Decimal `json:"income_tax_with_property"`
	IncomeTaxWithoutProperty     decimal.Decimal `json:"income_tax_without_property"`
	ExtraIncomeTax               decimal.Decimal `json:"extra_income_tax"`
	SocialContributions          decimal.Decimal `json:"social_contributions"`
	ExtraTotalLiability          decimal.Decimal `json:"extra_total_liability"`
	NetTaxablePropertyIncome     decimal.Decimal `json:"net_taxable_property_income"`
	PostponedNegativeAfterFiling decimal.Decimal `json:"postponed_negative_property_income"`
}

// SimulationComparison is the cost of the investment year by year
type SimulationComparison struct {
	Name                     string            `json:"name,omitempty"`
	TaxYear                  int               `json:"tax_year"`
	With                     *SimulationResult `json:"with_property_income"`
	Without                  *SimulationResult `json:"without_property_income"`
	Years                    []YearComparison  `json:"years"`
	TotalExtraIncomeTax      decimal.Decimal   `json:"total_extra_income_tax"`
	TotalSocialContributions decimal.Decimal   `json:"total_social_contributions"`
	TotalExtraLiability      decimal.Decimal   `json:"total_extra_liability"`
}
