package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVFormatter writes one row per fiscal year. Comparison reports get the
// with/without columns appended.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	result := report.primary()
	if result == nil {
		return nil, fmt.Errorf("csv: report has no result")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "FiscalShares", "NetTaxablePropertyIncome", "IsNegative", "PostponedNegativeIncome", "GlobalNetTaxableIncome", "AlmostFinalIncomeTax", "DiscountApplied", "IncomeTax", "AverageTaxRate", "SocialContributions"}
	if report.Comparison != nil {
		header = append(header, "IncomeTaxWithoutProperty", "ExtraIncomeTax", "ExtraTotalLiability")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, y := range result.Years {
		it := y.IncomeTax
		row := []string{
			intToString(y.Year),
			it.FiscalShares.String(),
			formatAmount(it.NetPropertyIncome),
			boolToString(it.PropertyIncomeNeg),
			formatAmount(it.PostponedNegative),
			formatAmount(it.GlobalNetIncome),
			formatAmount(it.AlmostFinalTax),
			formatAmount(it.DiscountApplied),
			formatAmount(it.IncomeTaxAmount),
			it.AverageTaxRate.StringFixed(4),
			formatAmount(y.SocialContributionsAmount),
		}
		if report.Comparison != nil && i < len(report.Comparison.Years) {
			cy := report.Comparison.Years[i]
			row = append(row,
				formatAmount(cy.IncomeTaxWithoutProperty),
				formatAmount(cy.ExtraIncomeTax),
				formatAmount(cy.ExtraTotalLiability),
			)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
