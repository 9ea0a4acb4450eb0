package output

import (
	"strconv"

	money "github.com/minikeyz/french-tax-system/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as euros the French way ("7 090,90 €").
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a rate (0.0894) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

func formatAmount(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

var decimalHundred = decimal.NewFromInt(100)
