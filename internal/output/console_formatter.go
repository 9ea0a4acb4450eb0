package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a year-by-year console summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	result := report.primary()
	if result == nil {
		return nil, fmt.Errorf("console: report has no result")
	}

	var buf bytes.Buffer
	title := "HOUSEHOLD TAX SIMULATION"
	if result.Name != "" {
		title += " - " + result.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Tax year %d, %s, %d fiscal years\n", result.TaxYear, methodLabel(result.CalculationMethod), len(result.Years))
	fmt.Fprintln(&buf)

	for i, y := range result.Years {
		it := y.IncomeTax
		fmt.Fprintf(&buf, "Year %d: shares=%s global=%s tax=%s (avg %s)\n",
			y.Year,
			it.FiscalShares.String(),
			FormatCurrency(it.GlobalNetIncome),
			FormatCurrency(it.IncomeTaxAmount),
			FormatPercentage(it.AverageTaxRate),
		)
		fmt.Fprintf(&buf, "  property=%s postponed=%s social=%s", FormatCurrency(it.NetPropertyIncome), FormatCurrency(it.PostponedNegative), FormatCurrency(y.SocialContributionsAmount))
		if it.DiscountApplied.IsPositive() {
			fmt.Fprintf(&buf, " discount=%s", FormatCurrency(it.DiscountApplied))
		}
		fmt.Fprintln(&buf)
		if report.Comparison != nil && i < len(report.Comparison.Years) {
			cy := report.Comparison.Years[i]
			fmt.Fprintf(&buf, "  without property: tax=%s, investment cost=%s\n", FormatCurrency(cy.IncomeTaxWithoutProperty), FormatCurrency(cy.ExtraTotalLiability))
		}
	}

	h := AnalyzeReport(report)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total income tax: %s\n", FormatCurrency(h.TotalIncomeTax))
	fmt.Fprintf(&buf, "Total social contributions: %s\n", FormatCurrency(h.TotalSocialContributions))
	if h.LossExhaustedYear > 0 {
		fmt.Fprintf(&buf, "Postponed loss exhausted in year %d\n", h.LossExhaustedYear)
	}
	if h.ExtraLiability != nil {
		fmt.Fprintf(&buf, "Extra liability caused by the investment: %s\n", FormatCurrency(*h.ExtraLiability))
	}
	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}
