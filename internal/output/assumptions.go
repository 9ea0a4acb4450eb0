package output

import (
	"fmt"

	"github.com/minikeyz/french-tax-system/internal/domain"
)

// GenerateAssumptions lists the tax-year parameters a report was computed with.
func GenerateAssumptions(t *domain.TaxYearTables) []string {
	if t == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("Tax year %d scale held constant over the whole horizon (%d brackets, top rate %s)",
			t.Year, len(t.Brackets), FormatPercentage(t.Brackets[len(t.Brackets)-1].Rate)),
		fmt.Sprintf("Salaries: %s standard allowance", FormatPercentage(t.SalaryStandardAllowance)),
		fmt.Sprintf("Flat allowance: %s bare rental, %s furnished rental",
			FormatPercentage(t.Property.BareRentalFlatAllowance), FormatPercentage(t.Property.FurnishedFlatAllowance)),
		fmt.Sprintf("Property deficit imputable on global income capped at %s", FormatCurrency(t.Property.DeficitCap)),
		fmt.Sprintf("Furnished amortization: price over %d years, works over %d years",
			t.Property.PropertyAmortizationYears, t.Property.WorksAmortizationYears),
		fmt.Sprintf("Quotient familial capping: %s per half share (%s single parent)",
			FormatCurrency(t.Capping.HalfShareCeiling), FormatCurrency(t.Capping.SingleParentHalfShareCeiling)),
		fmt.Sprintf("Social contributions: %s of positive net property income", FormatPercentage(t.SocialContributionsRate)),
		fmt.Sprintf("Income tax at or below %s is not collected", FormatCurrency(t.CollectionFloor)),
	}
}
