package calculation

import (
	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
)

// INCOME TAX ASSUMPTIONS:
//
// 1. Progressive scale: the scale of the simulation's tax year is used for
//    every fiscal year of the horizon (no indexation of later years).
//
// 2. Salaries: the standard 10% professional-expense allowance is always
//    applied; actual professional expenses are not modelled.
//
// 3. Quotient familial: computed with the real shares and with the parents'
//    own shares, the latter reduced by the capping benefit.

// AggregatedTax applies the progressive scale to a family quotient. Each
// bracket taxes max(0, min(quotient, upper) - lower) at its rate.
func AggregatedTax(quotient decimal.Decimal, brackets domain.BracketTable) decimal.Decimal {
	total := decimal.Zero
	for _, bracket := range brackets {
		if quotient.LessThanOrEqual(bracket.Lower) {
			break
		}
		top := quotient
		if !bracket.Unbounded() {
			top = decimal.Min(quotient, *bracket.Upper)
		}
		incomeInBracket := top.Sub(bracket.Lower)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			total = total.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}
	return total
}

// MarginalRate returns the rate of the highest bracket the quotient reaches
func MarginalRate(quotient decimal.Decimal, brackets domain.BracketTable) decimal.Decimal {
	rate := decimal.Zero
	for _, bracket := range brackets {
		if quotient.LessThan(bracket.Lower) {
			break
		}
		rate = bracket.Rate
	}
	return rate
}

// CappingBenefit returns the maximum reduction the children's shares may
// bring compared with the parents' own shares.
func CappingBenefit(h *domain.Household, shares FiscalShares, capping domain.CappingTable) decimal.Decimal {
	two := decimal.NewFromInt(2)
	extra := shares.Total.Sub(shares.Baseline)
	if !extra.IsPositive() {
		return decimal.Zero
	}

	if h.MaritalStatus == domain.MaritalStatusMarried {
		return extra.Mul(capping.HalfShareCeiling).Mul(two)
	}

	covered := shares.MarkupCoveredShares()
	standard := extra.Sub(covered)
	if standard.IsNegative() {
		standard = decimal.Zero
	}
	return standard.Mul(capping.HalfShareCeiling).Mul(two).
		Add(covered.Mul(capping.SingleParentHalfShareCeiling).Mul(two))
}

// IncomeTaxCalculator computes one year's income tax from the global income
type IncomeTaxCalculator struct {
	Tables *domain.TaxYearTables
}

// NewIncomeTaxCalculator creates a calculator bound to one tax year's tables
func NewIncomeTaxCalculator(tables *domain.TaxYearTables) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{Tables: tables}
}

// GlobalNetTaxableIncome returns salaries after the standard allowance plus
// the net property income.
func (c *IncomeTaxCalculator) GlobalNetTaxableIncome(h *domain.Household, netPropertyIncome decimal.Decimal) decimal.Decimal {
	allowance := decimal.NewFromInt(1).Sub(c.Tables.SalaryStandardAllowance)
	return h.TotalSalaries().Mul(allowance).Add(netPropertyIncome)
}

// CalculateIncomeTax runs shares, scale, capping, discount and floor
func (c *IncomeTaxCalculator) CalculateIncomeTax(h *domain.Household, globalIncome decimal.Decimal) (domain.IncomeTaxResult, error) {
	shares, err := CalculateFiscalShares(h)
	if err != nil {
		return domain.IncomeTaxResult{}, err
	}

	quotient := globalIncome.Div(shares.Total)
	cappedQuotient := globalIncome.Div(shares.Baseline)
	aggregated := AggregatedTax(quotient, c.Tables.Brackets)
	cappedAggregated := AggregatedTax(cappedQuotient, c.Tables.Brackets)
	benefit := CappingBenefit(h, shares, c.Tables.Capping)

	realTax := aggregated.Mul(shares.Total)
	cappedTax := cappedAggregated.Mul(shares.Baseline).Sub(benefit)
	almostFinal := decimal.Max(realTax, cappedTax)
	if almostFinal.IsNegative() {
		almostFinal = decimal.Zero
	}

	final, discount := ApplyDiscount(h.MaritalStatus, almostFinal, c.Tables.Discount)
	final = ApplyCollectionFloor(final, c.Tables.CollectionFloor)

	averageRate := decimal.Zero
	if globalIncome.IsPositive() {
		averageRate = final.Div(globalIncome)
	}

	return domain.IncomeTaxResult{
		FiscalShares:         shares.Total,
		BaselineShares:       shares.Baseline,
		SingleParentMarkup:   shares.SingleParentMarkup,
		GlobalNetIncome:      globalIncome,
		FamilyQuotient:       quotient,
		CappedFamilyQuotient: cappedQuotient,
		AggregatedTax:        aggregated,
		CappedAggregatedTax:  cappedAggregated,
		MarginalRate:         MarginalRate(quotient, c.Tables.Brackets),
		CappingBenefit:       benefit,
		AlmostFinalTax:       almostFinal,
		DiscountApplied:      discount,
		IncomeTaxAmount:      final,
		AverageTaxRate:       averageRate,
	}, nil
}
