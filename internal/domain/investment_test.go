package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyInvestment_AnnualRent(t *testing.T) {
	p := &PropertyInvestment{RentPerMonth: decimal.NewFromInt(605)}
	assert.True(t, p.AnnualRent().Equal(decimal.NewFromInt(7260)))

	p.Rent = decimal.NewFromInt(7270)
	assert.True(t, p.AnnualRent().Equal(decimal.NewFromInt(7270)), "annual rent wins over monthly rent")
}

func TestPropertyInvestment_LoanInterestForYear(t *testing.T) {
	p := &PropertyInvestment{
		LoanInterest:         decimal.NewFromInt(1000),
		LoanInterestSchedule: []decimal.Decimal{decimal.NewFromInt(1200), decimal.NewFromInt(1100)},
	}

	assert.True(t, p.LoanInterestForYear(1).Equal(decimal.NewFromInt(1200)))
	assert.True(t, p.LoanInterestForYear(2).Equal(decimal.NewFromInt(1100)))
	assert.True(t, p.LoanInterestForYear(3).Equal(decimal.NewFromInt(1000)), "falls back to the flat interest")
}

func TestPropertyInvestment_RecurringExpenses(t *testing.T) {
	p := &PropertyInvestment{
		LandlordCharges:        decimal.NewFromInt(3600),
		PropertyManagement:     decimal.NewFromInt(1856),
		RentGuaranteeInsurance: decimal.NewFromInt(812),
		LandlordInsurance:      decimal.NewFromInt(100),
		PropertyTax:            decimal.NewFromInt(2000),
		LoanInterest:           decimal.RequireFromString("5499.91"),
		LoanInsurance:          decimal.NewFromInt(1740),
		InitialWorks:           decimal.NewFromInt(40000),
	}

	assert.Equal(t, "15607.91", p.RecurringExpenses(1).String())
}

func TestPropertyInvestment_Validate(t *testing.T) {
	p := PropertyInvestment{
		OwnershipStatus: OwnershipBareRental,
		ExpenseRegime:   RegimeItemizedExpenses,
		Rent:            decimal.NewFromInt(8076),
	}
	require.NoError(t, p.Validate())

	bad := p
	bad.ExpenseRegime = "micro"
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidInput))

	bad = p
	bad.PropertyTax = decimal.NewFromInt(-1)
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidInput))

	bad = p
	bad.LoanInterestSchedule = []decimal.Decimal{decimal.NewFromInt(-5)}
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidInput))
}

func TestSimulation_Validate(t *testing.T) {
	sim := Simulation{
		TaxYear:                 2021,
		CalculationMethod:       WithPropertyIncome,
		InvestmentTopFiscalYear: 0,
		Household:               Household{MaritalStatus: MaritalStatusSingle},
		Investment:              PropertyInvestment{OwnershipStatus: OwnershipBareRental, ExpenseRegime: RegimeFlatAllowance},
	}
	assert.True(t, errors.Is(sim.Validate(), ErrInvalidHorizon))

	sim.InvestmentTopFiscalYear = 3
	assert.NoError(t, sim.Validate())

	other := sim.WithMethod(WithoutPropertyIncome)
	assert.Equal(t, WithoutPropertyIncome, other.CalculationMethod)
	assert.Equal(t, WithPropertyIncome, sim.CalculationMethod)
}
