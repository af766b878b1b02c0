package finance

import (
	"math"
	"testing"
)

func sampleProfile() Profile {
	return Profile{
		RentalIncome1:  15000,
		RentalIncome2:  5000,
		SalaryIncome:   1200000,
		BusinessIncome: 240000,
		RentExpense:    25000,
		Groceries:      12000,
		FoodDining:     6000,

		TermInsurancePremium:   24000,
		HealthInsurancePremium: 12000,

		GoldValue:        500000,
		StocksValue:      300000,
		MutualFundsValue: 200000,
		BankBalance:      150000,

		CreditCardOutstanding: 45000,

		Loans: []Loan{
			{LoanType: LoanHome, Name: "flat", PrincipalAmount: 120000, InterestRate: 12, TenureMonths: 12},
		},
		InterestInvestments: []InterestInvestment{
			{Name: "FD", InvestmentType: InvestmentFD, PrincipalAmount: 100000, InterestRate: 6},
		},
		Properties: []Property{
			{Name: "flat", EstimatedValue: 5000000, AreaSqft: 1000},
		},
		Vehicles: []Vehicle{
			{VehicleType: VehicleFourWheeler, Name: "car", RegistrationNumber: "KA01AB1234", EstimatedValue: 800000},
		},
		IncomeEntries: []FinancialEntry{
			{Label: "consulting", Amount: 10000, Frequency: FrequencyMonthly},
		},
		ExpenseEntries: []FinancialEntry{
			{Label: "club", Amount: 12000, Frequency: FrequencyYearly},
		},
		AssetEntries: []FinancialEntry{
			{Label: "art", Amount: 50000},
		},
		LiabilityEntries: []FinancialEntry{
			{Label: "family loan", Amount: 30000},
		},
	}
}

func TestTotalMonthlyIncome(t *testing.T) {
	p := sampleProfile()
	// monthly rentals + annual fields /12 + FD interest /12 + custom entries
	want := 15000.0 + 5000 + (1200000+240000)/12.0 + 6000.0/12 + 10000
	got := p.TotalMonthlyIncome()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalMonthlyIncome = %v, want %v", got, want)
	}
}

func TestTotalMonthlyExpenses(t *testing.T) {
	p := sampleProfile()
	emi := EMI(120000, 12, 12)
	want := 25000.0 + 12000 + 6000 + emi + (24000.0+12000)/12 + 1000
	got := p.TotalMonthlyExpenses()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalMonthlyExpenses = %v, want %v", got, want)
	}
}

func TestTotalAssets(t *testing.T) {
	p := sampleProfile()
	want := 5000000.0 + 800000 + // property + vehicle
		500000 + 300000 + 200000 + 150000 + // fixed asset fields
		100000 + // FD principal
		50000 // custom entry
	got := p.TotalAssets()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalAssets = %v, want %v", got, want)
	}
}

func TestTotalLiabilities_FullPrincipal(t *testing.T) {
	p := sampleProfile()
	// The whole loan principal counts, regardless of the EMI flow.
	want := 120000.0 + 45000 + 30000
	got := p.TotalLiabilities()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalLiabilities = %v, want %v", got, want)
	}
}

func TestNetWorthIdentity(t *testing.T) {
	profiles := []Profile{{}, sampleProfile()}
	for i, p := range profiles {
		if got, want := p.NetWorth(), p.TotalAssets()-p.TotalLiabilities(); got != want {
			t.Errorf("profile %d: NetWorth = %v, want assets-liabilities = %v", i, got, want)
		}
	}
	var empty Profile
	if empty.NetWorth() != 0 {
		t.Errorf("empty profile net worth = %v, want 0", empty.NetWorth())
	}
}

func TestComputeTotalsMatchesMethods(t *testing.T) {
	p := sampleProfile()
	totals := ComputeTotals(p)
	if totals.MonthlyIncome != p.TotalMonthlyIncome() ||
		totals.MonthlyExpenses != p.TotalMonthlyExpenses() ||
		totals.Assets != p.TotalAssets() ||
		totals.Liabilities != p.TotalLiabilities() ||
		totals.NetWorth != p.NetWorth() {
		t.Errorf("ComputeTotals diverges from per-method results: %+v", totals)
	}
}

func TestTotalsAreRecomputedNotCached(t *testing.T) {
	p := sampleProfile()
	before := p.TotalAssets()
	p.BankBalance += 1000
	after := p.TotalAssets()
	if after != before+1000 {
		t.Errorf("assets did not track the underlying field: before=%v after=%v", before, after)
	}
}
