package domain

import "fmt"

// CalculationMethod selects whether the rental income enters the tax base
type CalculationMethod string

const (
	WithPropertyIncome    CalculationMethod = "with_property_income"
	WithoutPropertyIncome CalculationMethod = "without_property_income"
)

// Valid reports whether the method is supported
func (c CalculationMethod) Valid() bool {
	return c == WithPropertyIncome || c == WithoutPropertyIncome
}

// Simulation is one household + investment evaluated over a horizon of
// fiscal years against a single tax year's tables.
type Simulation struct {
	Name                    string             `yaml:"name,omitempty" json:"name,omitempty"`
	TaxYear                 int                `yaml:"tax_year" json:"tax_year" validate:"required,gte=2000,lte=2100"`
	CalculationMethod       CalculationMethod  `yaml:"calculation_method" json:"calculation_method" validate:"required,oneof=with_property_income without_property_income"`
	InvestmentTopFiscalYear int                `yaml:"investment_top_fiscal_year" json:"investment_top_fiscal_year"`
	Household               Household          `yaml:"household" json:"household"`
	Investment              PropertyInvestment `yaml:"investment" json:"investment"`
}

// WithMethod returns a copy of the simulation using another calculation method
func (s Simulation) WithMethod(method CalculationMethod) Simulation {
	s.CalculationMethod = method
	return s
}

// Validate checks the simulation and its nested records
func (s *Simulation) Validate() error {
	if s.InvestmentTopFiscalYear < 1 {
		return fmt.Errorf("%w: investment_top_fiscal_year must be at least 1, got %d", ErrInvalidHorizon, s.InvestmentTopFiscalYear)
	}
	if !s.CalculationMethod.Valid() {
		return fmt.Errorf("%w: unknown calculation method %q", ErrInvalidInput, s.CalculationMethod)
	}
	if err := s.Household.Validate(); err != nil {
		return fmt.Errorf("household: %w", err)
	}
	if err := s.Investment.Validate(); err != nil {
		return fmt.Errorf("investment: %w", err)
	}
	return nil
}
