package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TaxBracket represents one slice of the progressive scale. A nil Upper means
// the bracket is unbounded.
type TaxBracket struct {
	Lower decimal.Decimal  `yaml:"lower" json:"lower"`
	Upper *decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Upper == nil
}

// BracketTable is the progressive scale of a tax year, lowest bracket first
type BracketTable []TaxBracket

// Validate checks that brackets start at zero, are ordered, do not overlap,
// end with an unbounded bracket and have non-decreasing rates.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	if !t[0].Lower.IsZero() {
		return fmt.Errorf("bracket 0: lower bound must be 0, got %s", t[0].Lower)
	}
	for i, b := range t {
		if b.Lower.IsNegative() {
			return fmt.Errorf("bracket %d: lower bound cannot be negative", i)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate %s outside [0, 1]", i, b.Rate)
		}
		last := i == len(t)-1
		if last && !b.Unbounded() {
			return fmt.Errorf("bracket %d: last bracket must be unbounded", i)
		}
		if !last && b.Unbounded() {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if !b.Unbounded() && b.Upper.LessThanOrEqual(b.Lower) {
			return fmt.Errorf("bracket %d: upper bound %s must exceed lower bound %s", i, b.Upper, b.Lower)
		}
		if i > 0 {
			prev := t[i-1]
			if b.Lower.LessThan(*prev.Upper) {
				return fmt.Errorf("bracket %d overlaps bracket %d", i, i-1)
			}
			if b.Rate.LessThan(prev.Rate) {
				return fmt.Errorf("bracket %d: rate %s lower than previous rate %s", i, b.Rate, prev.Rate)
			}
		}
	}
	return nil
}

// CappingTable holds the family-quotient ceilings of a tax year
type CappingTable struct {
	HalfShareCeiling             decimal.Decimal `yaml:"half_share_ceiling" json:"half_share_ceiling"`
	SingleParentHalfShareCeiling decimal.Decimal `yaml:"single_parent_half_share_ceiling" json:"single_parent_half_share_ceiling"`
}

// DiscountRule is the décote parameters for one household type
type DiscountRule struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	LumpSum   decimal.Decimal `yaml:"lump_sum" json:"lump_sum"`
}

// DiscountTable holds the décote parameters of a tax year
type DiscountTable struct {
	Single  DiscountRule    `yaml:"single" json:"single"`
	Married DiscountRule    `yaml:"married" json:"married"`
	Rate    decimal.Decimal `yaml:"rate" json:"rate"`
}

// RuleFor returns the discount rule matching the marital status
func (d DiscountTable) RuleFor(status MaritalStatus) DiscountRule {
	if status == MaritalStatusMarried {
		return d.Married
	}
	return d.Single
}

// PropertyRules holds the rental-income constants of a tax year
type PropertyRules struct {
	BareRentalFlatAllowance   decimal.Decimal `yaml:"bare_rental_flat_allowance" json:"bare_rental_flat_allowance"`
	FurnishedFlatAllowance    decimal.Decimal `yaml:"furnished_flat_allowance" json:"furnished_flat_allowance"`
	DeficitCap                decimal.Decimal `yaml:"deficit_cap" json:"deficit_cap"`
	PropertyAmortizationYears int             `yaml:"property_amortization_years" json:"property_amortization_years"`
	WorksAmortizationYears    int             `yaml:"works_amortization_years" json:"works_amortization_years"`
}

// TaxYearTables gathers every parameter the engine reads for one tax year
type TaxYearTables struct {
	Year                    int             `yaml:"year" json:"year"`
	SalaryStandardAllowance decimal.Decimal `yaml:"salary_standard_allowance" json:"salary_standard_allowance"`
	Brackets                BracketTable    `yaml:"brackets" json:"brackets"`
	Capping                 CappingTable    `yaml:"capping" json:"capping"`
	Discount                DiscountTable   `yaml:"discount" json:"discount"`
	Property                PropertyRules   `yaml:"property" json:"property"`
	SocialContributionsRate decimal.Decimal `yaml:"social_contributions_rate" json:"social_contributions_rate"`
	CollectionFloor         decimal.Decimal `yaml:"collection_floor" json:"collection_floor"`
}

// Validate checks the internal consistency of the year's tables
func (t *TaxYearTables) Validate() error {
	if err := t.Brackets.Validate(); err != nil {
		return fmt.Errorf("tax year %d: %w", t.Year, err)
	}
	if t.Property.PropertyAmortizationYears <= 0 || t.Property.WorksAmortizationYears <= 0 {
		return fmt.Errorf("tax year %d: amortization durations must be positive", t.Year)
	}
	if t.Property.DeficitCap.IsNegative() {
		return fmt.Errorf("tax year %d: deficit cap cannot be negative", t.Year)
	}
	if t.Capping.HalfShareCeiling.IsNegative() || t.Capping.SingleParentHalfShareCeiling.IsNegative() {
		return fmt.Errorf("tax year %d: capping ceilings cannot be negative", t.Year)
	}
	return nil
}

// TableProvider resolves the tables of a tax year
type TableProvider interface {
	Tables(year int) (*TaxYearTables, error)
	Years() []int
}

// StaticTables is an immutable in-memory TableProvider
type StaticTables map[int]*TaxYearTables

// Tables returns the tables for the year or ErrUnknownTaxYear
func (s StaticTables) Tables(year int) (*TaxYearTables, error) {
	t, ok := s[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTaxYear, year)
	}
	return t, nil
}

// Years lists the available tax years in ascending order
func (s StaticTables) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
