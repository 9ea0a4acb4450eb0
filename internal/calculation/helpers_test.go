package calculation

import (
	"testing"

	"github.com/minikeyz/french-tax-system/internal/config"
	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tables2021(t *testing.T) *domain.TaxYearTables {
	t.Helper()
	tables, err := config.DefaultTables()
	require.NoError(t, err)
	tt, err := tables.Tables(2021)
	require.NoError(t, err)
	return tt
}

func lyonSimulation() *domain.Simulation {
	return &domain.Simulation{
		Name:                    "Lyon",
		TaxYear:                 2021,
		CalculationMethod:       domain.WithPropertyIncome,
		InvestmentTopFiscalYear: 2,
		Household: domain.Household{
			MaritalStatus:            domain.MaritalStatusMarried,
			DependentChildren:        2,
			AlternateCustodyChildren: 1,
			SalaryPerson1:            d("75000"),
			SalaryPerson2:            d("25000"),
		},
		Investment: domain.PropertyInvestment{
			Price:                  d("200000"),
			InitialWorks:           d("40000"),
			LandlordCharges:        d("3600"),
			PropertyManagement:     d("1856"),
			RentGuaranteeInsurance: d("812"),
			LandlordInsurance:      d("100"),
			PropertyTax:            d("2000"),
			LoanInterest:           d("5499.91"),
			LoanInsurance:          d("1740"),
			OwnershipStatus:        domain.OwnershipBareRental,
			ExpenseRegime:          domain.RegimeItemizedExpenses,
			Rent:                   d("23200"),
		},
	}
}

func bordeauxSimulation() *domain.Simulation {
	return &domain.Simulation{
		Name:                    "Bordeaux",
		TaxYear:                 2021,
		CalculationMethod:       domain.WithPropertyIncome,
		InvestmentTopFiscalYear: 2,
		Household: domain.Household{
			MaritalStatus:     domain.MaritalStatusMarried,
			DependentChildren: 3,
			SalaryPerson1:     d("25000"),
			SalaryPerson2:     d("35000"),
		},
		Investment: domain.PropertyInvestment{
			Price:                  d("100000"),
			InitialWorks:           d("5000"),
			PropertyManagement:     d("600"),
			RentGuaranteeInsurance: d("282.66"),
			LandlordInsurance:      d("100"),
			PropertyTax:            d("1200"),
			LoanInterest:           d("1227.42"),
			LoanInsurance:          d("405"),
			OwnershipStatus:        domain.OwnershipBareRental,
			ExpenseRegime:          domain.RegimeItemizedExpenses,
			Rent:                   d("8076"),
		},
	}
}

func lilleSimulation() *domain.Simulation {
	return &domain.Simulation{
		Name:                    "Lille",
		TaxYear:                 2021,
		CalculationMethod:       domain.WithPropertyIncome,
		InvestmentTopFiscalYear: 1,
		Household: domain.Household{
			MaritalStatus:            domain.MaritalStatusSingle,
			AlternateCustodyChildren: 4,
			SalaryPerson1:            d("55000"),
		},
		Investment: domain.PropertyInvestment{
			Price:                  d("65000"),
			InitialWorks:           d("2500"),
			LandlordCharges:        d("540"),
			RentGuaranteeInsurance: d("254.45"),
			LandlordInsurance:      d("100"),
			PropertyTax:            d("300"),
			LoanInterest:           d("645.21"),
			LoanInsurance:          d("225"),
			OwnershipStatus:        domain.OwnershipBareRental,
			ExpenseRegime:          domain.RegimeItemizedExpenses,
			Rent:                   d("7270"),
		},
	}
}

func toulouseSimulation() *domain.Simulation {
	return &domain.Simulation{
		Name:                    "Toulouse",
		TaxYear:                 2021,
		CalculationMethod:       domain.WithPropertyIncome,
		InvestmentTopFiscalYear: 1,
		Household: domain.Household{
			MaritalStatus:     domain.MaritalStatusSingle,
			DependentChildren: 2,
			SalaryPerson1:     d("25000"),
		},
		Investment: domain.PropertyInvestment{
			Price:                  d("70000"),
			LandlordCharges:        d("410"),
			RentGuaranteeInsurance: d("192.78"),
			LandlordInsurance:      d("100"),
			PropertyTax:            d("200"),
			LoanInterest:           d("858.94"),
			LoanInsurance:          d("276"),
			OwnershipStatus:        domain.OwnershipBareRental,
			ExpenseRegime:          domain.RegimeItemizedExpenses,
			Rent:                   d("5508"),
		},
	}
}
