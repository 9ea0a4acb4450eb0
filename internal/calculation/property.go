package calculation

import (
	"fmt"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
)

// PropertyIncome is the taxable rental result of one fiscal year
type PropertyIncome struct {
	Rent               decimal.Decimal
	DeductibleExpenses decimal.Decimal
	Amortization       decimal.Decimal
	Gross              decimal.Decimal // after expenses, amortization and carried loss
	Net                decimal.Decimal
	IsNegative         bool
	AmountToPostpone   decimal.Decimal
}

// NetTaxablePropertyIncomeStrategy computes the net taxable rental income for
// one ownership status.
type NetTaxablePropertyIncomeStrategy interface {
	NetTaxablePropertyIncome(inv *domain.PropertyInvestment, year int, postponed decimal.Decimal, rules domain.PropertyRules) (PropertyIncome, error)
}

// BareRentalStrategy handles unfurnished lettings (revenus fonciers)
type BareRentalStrategy struct{}

// NetTaxablePropertyIncome implements NetTaxablePropertyIncomeStrategy
func (BareRentalStrategy) NetTaxablePropertyIncome(inv *domain.PropertyInvestment, year int, postponed decimal.Decimal, rules domain.PropertyRules) (PropertyIncome, error) {
	return netTaxablePropertyIncome(inv, year, postponed, rules, rules.BareRentalFlatAllowance, decimal.Zero)
}

// FurnishedRentalStrategy handles furnished lettings, amortizing the
// acquisition price and the initial works over their durations.
type FurnishedRentalStrategy struct{}

// NetTaxablePropertyIncome implements NetTaxablePropertyIncomeStrategy
func (FurnishedRentalStrategy) NetTaxablePropertyIncome(inv *domain.PropertyInvestment, year int, postponed decimal.Decimal, rules domain.PropertyRules) (PropertyIncome, error) {
	amortization, err := FurnishedAmortization(inv, year, rules)
	if err != nil {
		return PropertyIncome{}, err
	}
	return netTaxablePropertyIncome(inv, year, postponed, rules, rules.FurnishedFlatAllowance, amortization)
}

// FurnishedAmortization returns the straight-line amortization deducted in
// fiscal year `year`. The price share stops after PropertyAmortizationYears
// and the works share after WorksAmortizationYears.
func FurnishedAmortization(inv *domain.PropertyInvestment, year int, rules domain.PropertyRules) (decimal.Decimal, error) {
	if rules.PropertyAmortizationYears <= 0 || rules.WorksAmortizationYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: amortization durations must be positive", domain.ErrInvalidInput)
	}
	if year < 1 {
		return decimal.Zero, fmt.Errorf("%w: fiscal year index must be at least 1, got %d", domain.ErrInvalidHorizon, year)
	}

	amortization := decimal.Zero
	if year <= rules.PropertyAmortizationYears {
		amortization = amortization.Add(inv.Price.Div(decimal.NewFromInt(int64(rules.PropertyAmortizationYears))))
	}
	if year <= rules.WorksAmortizationYears {
		amortization = amortization.Add(inv.InitialWorks.Div(decimal.NewFromInt(int64(rules.WorksAmortizationYears))))
	}
	return amortization, nil
}

// StrategyFor selects the strategy matching the ownership status
func StrategyFor(status domain.OwnershipStatus) (NetTaxablePropertyIncomeStrategy, error) {
	switch status {
	case domain.OwnershipBareRental:
		return BareRentalStrategy{}, nil
	case domain.OwnershipFurnishedRental:
		return FurnishedRentalStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown ownership status %q", domain.ErrInvalidInput, status)
	}
}

func netTaxablePropertyIncome(inv *domain.PropertyInvestment, year int, postponed decimal.Decimal, rules domain.PropertyRules, allowance, amortization decimal.Decimal) (PropertyIncome, error) {
	if year < 1 {
		return PropertyIncome{}, fmt.Errorf("%w: fiscal year index must be at least 1, got %d", domain.ErrInvalidHorizon, year)
	}
	if postponed.IsNegative() {
		return PropertyIncome{}, fmt.Errorf("%w: postponed loss cannot be negative", domain.ErrInvalidInput)
	}
	rent := inv.AnnualRent()

	switch inv.ExpenseRegime {
	case domain.RegimeFlatAllowance:
		// The carried loss only exists under the itemized regime.
		net := rent.Mul(decimal.NewFromInt(1).Sub(allowance))
		if net.IsNegative() {
			net = decimal.Zero
		}
		return PropertyIncome{
			Rent:               rent,
			DeductibleExpenses: rent.Sub(net),
			Gross:              net,
			Net:                net,
			AmountToPostpone:   decimal.Zero,
		}, nil

	case domain.RegimeItemizedExpenses:
		expenses := inv.RecurringExpenses(year)
		if year == 1 {
			expenses = expenses.Add(inv.InitialWorks)
		}
		gross := rent.Sub(expenses).Sub(amortization).Sub(postponed)

		result := PropertyIncome{
			Rent:               rent,
			DeductibleExpenses: expenses,
			Amortization:       amortization,
			Gross:              gross,
			Net:                gross,
			AmountToPostpone:   decimal.Zero,
		}
		if gross.IsNegative() {
			result.IsNegative = true
			result.Net, result.AmountToPostpone = RepartitionLoss(gross, rent, inv.LoanInterestForYear(year), rules.DeficitCap)
		}
		return result, nil

	default:
		return PropertyIncome{}, fmt.Errorf("%w: unknown expense regime %q", domain.ErrInvalidInput, inv.ExpenseRegime)
	}
}

// RepartitionLoss splits a negative gross result between the part imputed on
// this year's global income and the part postponed to the next year. The loan
// interest share of a loss is never imputed on the global income, the imputed
// part is never positive, and it never exceeds the deficit cap.
// net - postpone == gross.
func RepartitionLoss(gross, rent, loanInterest, deficitCap decimal.Decimal) (net, postpone decimal.Decimal) {
	if !gross.IsNegative() {
		return gross, decimal.Zero
	}
	negCap := deficitCap.Neg()

	if rent.Sub(loanInterest).IsNegative() {
		// loss left once the interest is set aside, at most zero
		net = decimal.Min(decimal.Zero, gross.Add(loanInterest))
		if net.LessThan(negCap) {
			net = negCap
		}
		return net, net.Sub(gross)
	}

	if gross.Abs().LessThanOrEqual(deficitCap) {
		return gross, decimal.Zero
	}
	return negCap, gross.Abs().Sub(deficitCap)
}
