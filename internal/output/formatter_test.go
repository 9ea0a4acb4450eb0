package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestResult() *domain.SimulationResult {
	year := func(n int, net, postponed, tax, social string) domain.FiscalYearResult {
		return domain.FiscalYearResult{
			Year: n,
			IncomeTax: domain.IncomeTaxResult{
				FiscalShares:      dec("3.5"),
				BaselineShares:    dec("2"),
				GlobalNetIncome:   dec("79300"),
				NetPropertyIncome: dec(net),
				PropertyIncomeNeg: dec(net).IsNegative(),
				PostponedNegative: dec(postponed),
				AlmostFinalTax:    dec(tax),
				IncomeTaxAmount:   dec(tax),
				AverageTaxRate:    dec("0.0894"),
			},
			SocialContributionsAmount: dec(social),
		}
	}
	return &domain.SimulationResult{
		RunID:             "run-1",
		Name:              "Lyon",
		TaxYear:           2021,
		CalculationMethod: domain.WithPropertyIncome,
		Years: []domain.FiscalYearResult{
			year(1, "-10700", "21707.91", "7090.9", "0"),
			year(2, "-10700", "3415.82", "7090.9", "0"),
			year(3, "4176.27", "0", "8200", "718.32"),
		},
	}
}

func buildTestComparison() *domain.SimulationComparison {
	with := buildTestResult()
	without := &domain.SimulationResult{TaxYear: 2021, CalculationMethod: domain.WithoutPropertyIncome}
	cmp := &domain.SimulationComparison{Name: "Lyon", TaxYear: 2021, With: with, Without: without}
	for _, y := range with.Years {
		extra := y.IncomeTax.IncomeTaxAmount.Sub(dec("10300.9"))
		cmp.Years = append(cmp.Years, domain.YearComparison{
			Year:                     y.Year,
			IncomeTaxWithProperty:    y.IncomeTax.IncomeTaxAmount,
			IncomeTaxWithoutProperty: dec("10300.9"),
			ExtraIncomeTax:           extra,
			SocialContributions:      y.SocialContributionsAmount,
			ExtraTotalLiability:      extra.Add(y.SocialContributionsAmount),
		})
		cmp.TotalExtraLiability = cmp.TotalExtraLiability.Add(extra.Add(y.SocialContributionsAmount))
	}
	return cmp
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(&Report{Result: buildTestResult(), Assumptions: []string{"scale held constant"}})
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "HOUSEHOLD TAX SIMULATION - Lyon")
	assert.Contains(t, content, "Year 1: shares=3.5")
	assert.Contains(t, content, "Postponed loss exhausted in year 3")
	assert.Contains(t, content, "scale held constant")
	assert.NotContains(t, content, "Extra liability")
}

func TestConsoleFormatter_Comparison(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(&Report{Comparison: buildTestComparison()})
	require.NoError(t, err)
	assert.Contains(t, string(out), "without property: tax=")
	assert.Contains(t, string(out), "Extra liability caused by the investment")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(&Report{Result: buildTestResult()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Year,FiscalShares,NetTaxablePropertyIncome"))
	assert.Equal(t, "1,3.5,-10700.00,true,21707.91,79300.00,7090.90,0.00,7090.90,0.0894,0.00", lines[1])

	out, err = CSVFormatter{}.Format(&Report{Comparison: buildTestComparison()})
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.True(t, strings.HasSuffix(lines[0], "IncomeTaxWithoutProperty,ExtraIncomeTax,ExtraTotalLiability"))
	assert.True(t, strings.HasSuffix(lines[1], ",10300.90,-3210.00,-3210.00"))
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(&Report{Result: buildTestResult()})
	require.NoError(t, err)

	var decoded domain.SimulationResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Years, 3)
	assert.True(t, decoded.Years[0].IncomeTax.PostponedNegative.Equal(dec("21707.91")))
	assert.Contains(t, string(out), `"postponed_negative_property_income"`)

	out, err = JSONFormatter{}.Format(&Report{Comparison: buildTestComparison()})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"total_extra_liability"`)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(&Report{Comparison: buildTestComparison(), Assumptions: []string{"Tax year 2021 scale"}})
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "<h1>Simulation fiscale - Lyon</h1>")
	assert.Contains(t, content, `class="negative"`)
	assert.Contains(t, content, "Tax without property")
	assert.Contains(t, content, "Tax year 2021 scale")
}

func TestFormattersRejectEmptyReport(t *testing.T) {
	for _, f := range []Formatter{ConsoleFormatter{}, CSVFormatter{}, HTMLFormatter{}} {
		_, err := f.Format(&Report{})
		assert.Error(t, err, f.Name())
	}
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "text")

	assert.Equal(t, "console", GetFormatterByName(" TEXT ").Name())
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())
	assert.Nil(t, GetFormatterByName("xml"))

	custom := FormatterFunc{ID: "ids", F: func(r *Report) ([]byte, error) { return []byte(r.Result.RunID), nil }}
	out, err := custom.Format(&Report{Result: buildTestResult()})
	require.NoError(t, err)
	assert.Equal(t, "run-1", string(out))
	assert.Equal(t, "ids", custom.Name())
}

func TestWriteFormatted(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFormatted(CSVFormatter{}, &Report{Result: buildTestResult()}, dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Year,FiscalShares")
}
