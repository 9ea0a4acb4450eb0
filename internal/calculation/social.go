package calculation

import "github.com/shopspring/decimal"

// SocialContributions returns the prélèvements sociaux due on a positive net
// property income.
func SocialContributions(netPropertyIncome, rate decimal.Decimal) decimal.Decimal {
	if !netPropertyIncome.IsPositive() {
		return decimal.Zero
	}
	return netPropertyIncome.Mul(rate)
}
