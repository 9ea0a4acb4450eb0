package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OwnershipStatus selects the fiscal treatment of the rental
type OwnershipStatus string

const (
	OwnershipBareRental      OwnershipStatus = "bare_rental"
	OwnershipFurnishedRental OwnershipStatus = "furnished_rental"
)

// Valid reports whether the ownership status is supported
func (o OwnershipStatus) Valid() bool {
	return o == OwnershipBareRental || o == OwnershipFurnishedRental
}

// ExpenseRegime selects how expenses are deducted from the rent
type ExpenseRegime string

const (
	RegimeFlatAllowance    ExpenseRegime = "flat_allowance"
	RegimeItemizedExpenses ExpenseRegime = "itemized_expenses"
)

// Valid reports whether the expense regime is supported
func (r ExpenseRegime) Valid() bool {
	return r == RegimeFlatAllowance || r == RegimeItemizedExpenses
}

// PropertyInvestment describes the rental property and its yearly costs.
// Absent expense lines decode as zero.
type PropertyInvestment struct {
	Price                  decimal.Decimal   `yaml:"price" json:"price"`
	InitialWorks           decimal.Decimal   `yaml:"initial_works" json:"initial_works"`
	LandlordCharges        decimal.Decimal   `yaml:"landlord_charges" json:"landlord_charges"`
	PropertyManagement     decimal.Decimal   `yaml:"property_management" json:"property_management"`
	RentGuaranteeInsurance decimal.Decimal   `yaml:"rent_guarantee_insurance" json:"rent_guarantee_insurance"`
	LandlordInsurance      decimal.Decimal   `yaml:"landlord_insurance" json:"landlord_insurance"`
	PropertyTax            decimal.Decimal   `yaml:"property_tax" json:"property_tax"`
	LoanInterest           decimal.Decimal   `yaml:"loan_interest" json:"loan_interest"`
	LoanInterestSchedule   []decimal.Decimal `yaml:"loan_interest_schedule,omitempty" json:"loan_interest_schedule,omitempty"`
	LoanInsurance          decimal.Decimal   `yaml:"loan_insurance" json:"loan_insurance"`
	OwnershipStatus        OwnershipStatus   `yaml:"ownership_status" json:"ownership_status" validate:"required,oneof=bare_rental furnished_rental"`
	ExpenseRegime          ExpenseRegime     `yaml:"expense_regime" json:"expense_regime" validate:"required,oneof=flat_allowance itemized_expenses"`
	Rent                   decimal.Decimal   `yaml:"rent" json:"rent"`
	RentPerMonth           decimal.Decimal   `yaml:"rent_per_month,omitempty" json:"rent_per_month,omitempty"`
}

// AnnualRent returns the yearly rent, falling back to twelve monthly rents
// when no annual figure is given.
func (p *PropertyInvestment) AnnualRent() decimal.Decimal {
	if p.Rent.IsZero() && !p.RentPerMonth.IsZero() {
		return p.RentPerMonth.Mul(decimal.NewFromInt(12))
	}
	return p.Rent
}

// LoanInterestForYear returns the interest paid in fiscal year n (1-based)
func (p *PropertyInvestment) LoanInterestForYear(year int) decimal.Decimal {
	if year >= 1 && year <= len(p.LoanInterestSchedule) {
		return p.LoanInterestSchedule[year-1]
	}
	return p.LoanInterest
}

// RecurringExpenses sums the lines deducted every year under the itemized regime
func (p *PropertyInvestment) RecurringExpenses(year int) decimal.Decimal {
	return p.LandlordCharges.
		Add(p.PropertyManagement).
		Add(p.RentGuaranteeInsurance).
		Add(p.LandlordInsurance).
		Add(p.PropertyTax).
		Add(p.LoanInterestForYear(year)).
		Add(p.LoanInsurance)
}

// Validate checks enums and signs of the monetary lines
func (p *PropertyInvestment) Validate() error {
	if !p.OwnershipStatus.Valid() {
		return fmt.Errorf("%w: unknown ownership status %q", ErrInvalidInput, p.OwnershipStatus)
	}
	if !p.ExpenseRegime.Valid() {
		return fmt.Errorf("%w: unknown expense regime %q", ErrInvalidInput, p.ExpenseRegime)
	}
	amounts := map[string]decimal.Decimal{
		"price":                    p.Price,
		"initial_works":            p.InitialWorks,
		"landlord_charges":         p.LandlordCharges,
		"property_management":      p.PropertyManagement,
		"rent_guarantee_insurance": p.RentGuaranteeInsurance,
		"landlord_insurance":       p.LandlordInsurance,
		"property_tax":             p.PropertyTax,
		"loan_interest":            p.LoanInterest,
		"loan_insurance":           p.LoanInsurance,
		"rent":                     p.Rent,
		"rent_per_month":           p.RentPerMonth,
	}
	for name, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, name)
		}
	}
	for i, interest := range p.LoanInterestSchedule {
		if interest.IsNegative() {
			return fmt.Errorf("%w: loan_interest_schedule[%d] cannot be negative", ErrInvalidInput, i)
		}
	}
	return nil
}
