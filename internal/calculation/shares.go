package calculation

import (
	"fmt"

	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	quarterShare = decimal.RequireFromString("0.25")
	halfShare    = decimal.RequireFromString("0.5")
	fullShare    = decimal.NewFromInt(1)
)

// FiscalShares is the quotient familial of a household
type FiscalShares struct {
	Total              decimal.Decimal // real shares, children and markup included
	Baseline           decimal.Decimal // parents' own shares, used for capping
	SingleParentMarkup decimal.Decimal // parent isolé increment, zero for couples
}

// MarkupCoveredShares returns the shares whose capping uses the single-parent
// ceiling. Each markup increment covers twice its size: the child's own
// contribution plus the markup itself.
func (fs FiscalShares) MarkupCoveredShares() decimal.Decimal {
	return fs.SingleParentMarkup.Mul(decimal.NewFromInt(2))
}

// childContribution returns the share added by the child at the given rank
// (1-based, dependent children ranked before alternate-custody children).
func childContribution(rank int, alternateCustody bool) decimal.Decimal {
	if rank <= 2 {
		if alternateCustody {
			return quarterShare
		}
		return halfShare
	}
	if alternateCustody {
		return halfShare
	}
	return fullShare
}

// CalculateFiscalShares computes the household's shares and capping baseline
func CalculateFiscalShares(h *domain.Household) (FiscalShares, error) {
	var baseline decimal.Decimal
	switch h.MaritalStatus {
	case domain.MaritalStatusMarried:
		baseline = decimal.NewFromInt(2)
	case domain.MaritalStatusSingle:
		baseline = decimal.NewFromInt(1)
	default:
		return FiscalShares{}, fmt.Errorf("%w: unknown marital status %q", domain.ErrInvalidInput, h.MaritalStatus)
	}
	if h.DependentChildren < 0 || h.AlternateCustodyChildren < 0 {
		return FiscalShares{}, fmt.Errorf("%w: children counts cannot be negative", domain.ErrInvalidInput)
	}

	children := decimal.Zero
	firstTwo := decimal.Zero
	rank := 0
	add := func(alternate bool) {
		rank++
		c := childContribution(rank, alternate)
		children = children.Add(c)
		if rank <= 2 {
			firstTwo = firstTwo.Add(c)
		}
	}
	for i := 0; i < h.DependentChildren; i++ {
		add(false)
	}
	for i := 0; i < h.AlternateCustodyChildren; i++ {
		add(true)
	}

	markup := decimal.Zero
	if h.MaritalStatus == domain.MaritalStatusSingle && rank > 0 {
		markup = decimal.Min(halfShare, firstTwo)
	}

	return FiscalShares{
		Total:              baseline.Add(children).Add(markup),
		Baseline:           baseline,
		SingleParentMarkup: markup,
	}, nil
}
