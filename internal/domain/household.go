package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaritalStatus is the fiscal relation between the adults of the household
type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "single"
	MaritalStatusMarried MaritalStatus = "married"
)

// Valid reports whether the status is one the tax rules know about
func (m MaritalStatus) Valid() bool {
	return m == MaritalStatusSingle || m == MaritalStatusMarried
}

// Household represents a French fiscal household (foyer fiscal)
type Household struct {
	MaritalStatus            MaritalStatus   `yaml:"marital_status" json:"marital_status" validate:"required,oneof=single married"`
	DependentChildren        int             `yaml:"dependent_children" json:"dependent_children" validate:"gte=0,lte=20"`
	AlternateCustodyChildren int             `yaml:"alternate_custody_children" json:"alternate_custody_children" validate:"gte=0,lte=20"`
	SalaryPerson1            decimal.Decimal `yaml:"salary_person_1" json:"salary_person_1"`
	SalaryPerson2            decimal.Decimal `yaml:"salary_person_2,omitempty" json:"salary_person_2,omitempty"`
}

// TotalChildren returns dependent plus alternate-custody children
func (h *Household) TotalChildren() int {
	return h.DependentChildren + h.AlternateCustodyChildren
}

// HasChildren reports whether any child is attached to the household
func (h *Household) HasChildren() bool {
	return h.TotalChildren() > 0
}

// TotalSalaries returns the gross salaries declared by the household
func (h *Household) TotalSalaries() decimal.Decimal {
	return h.SalaryPerson1.Add(h.SalaryPerson2)
}

// Validate checks the fields that cannot be defaulted
func (h *Household) Validate() error {
	if !h.MaritalStatus.Valid() {
		return fmt.Errorf("%w: unknown marital status %q", ErrInvalidInput, h.MaritalStatus)
	}
	if h.DependentChildren < 0 || h.AlternateCustodyChildren < 0 {
		return fmt.Errorf("%w: children counts cannot be negative", ErrInvalidInput)
	}
	if h.SalaryPerson1.IsNegative() || h.SalaryPerson2.IsNegative() {
		return fmt.Errorf("%w: salaries cannot be negative", ErrInvalidInput)
	}
	return nil
}
