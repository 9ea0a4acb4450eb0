package calculation

import (
	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
)

// ApplyDiscount applies the décote to a post-capping tax. It returns the
// resulting tax and the amount actually removed.
func ApplyDiscount(status domain.MaritalStatus, almostFinal decimal.Decimal, table domain.DiscountTable) (final, applied decimal.Decimal) {
	rule := table.RuleFor(status)
	if !almostFinal.IsPositive() || almostFinal.GreaterThan(rule.Threshold) {
		return almostFinal, decimal.Zero
	}

	discount := rule.LumpSum.Sub(almostFinal.Mul(table.Rate))
	final = decimal.Max(decimal.Zero, almostFinal.Sub(discount))
	if final.GreaterThan(almostFinal) {
		final = almostFinal
	}
	return final, almostFinal.Sub(final)
}

// ApplyCollectionFloor zeroes a tax at or below the non-collection floor
func ApplyCollectionFloor(tax, floor decimal.Decimal) decimal.Decimal {
	if tax.LessThanOrEqual(floor) {
		return decimal.Zero
	}
	return tax
}
