package finance

import "math"

// Totals are the derived headline figures for a profile. They are pure
// functions of the current line items and are recomputed on every read; no
// entity in the profile carries a cached total that could drift.
type Totals struct {
	MonthlyIncome   float64 `json:"total_monthly_income"`
	MonthlyExpenses float64 `json:"total_monthly_expenses"`
	Assets          float64 `json:"total_assets"`
	Liabilities     float64 `json:"total_liabilities"`
	NetWorth        float64 `json:"net_worth"`
}

// TotalMonthlyEMI sums the derived EMIs of all loans.
func TotalMonthlyEMI(loans []Loan) float64 {
	var total float64
	for _, l := range loans {
		total += l.MonthlyEMI()
	}
	return total
}

// YearlyInterestIncome sums the simple yearly interest across all
// fixed-income holdings.
func YearlyInterestIncome(investments []InterestInvestment) float64 {
	var total float64
	for _, inv := range investments {
		total += inv.YearlyInterest()
	}
	return total
}

// TotalMonthlyIncome combines fixed monthly fields, annualized fixed fields,
// derived interest income and the normalized custom entries.
func (p Profile) TotalMonthlyIncome() float64 {
	monthly := p.RentalIncome1.Float64() + p.RentalIncome2.Float64()
	yearly := p.SalaryIncome.Float64() +
		p.BusinessIncome.Float64() +
		p.DividendIncome.Float64() +
		p.CapitalGains.Float64() +
		p.Pension.Float64() +
		p.FreelanceIncome.Float64() +
		p.OtherIncome.Float64()
	yearly += YearlyInterestIncome(p.InterestInvestments)
	return sanitize(monthly + yearly/12 + MonthlyEquivalent(p.IncomeEntries))
}

// TotalMonthlyExpenses combines fixed monthly spend, derived loan EMIs,
// annual premiums spread over twelve months and the normalized custom
// entries.
func (p Profile) TotalMonthlyExpenses() float64 {
	monthly := p.RentExpense.Float64() +
		p.HouseholdMaid.Float64() +
		p.Groceries.Float64() +
		p.FoodDining.Float64() +
		p.Fuel.Float64() +
		p.Travel.Float64() +
		p.Shopping.Float64() +
		p.Entertainment.Float64() +
		p.TelecomUtilities.Float64() +
		p.Healthcare.Float64() +
		p.Education.Float64() +
		p.OtherExpenses.Float64()
	yearly := p.TermInsurancePremium.Float64() +
		p.HealthInsurancePremium.Float64() +
		p.VehicleInsurancePremium.Float64()
	for _, pol := range p.InsurancePolicies {
		yearly += pol.InsuranceAmount.Float64()
	}
	return sanitize(monthly + TotalMonthlyEMI(p.Loans) + yearly/12 + MonthlyEquivalent(p.ExpenseEntries))
}

// TotalAssets sums property and vehicle valuations, the fixed asset fields,
// fixed-income principals and custom asset entries.
func (p Profile) TotalAssets() float64 {
	var total float64
	for _, prop := range p.Properties {
		total += prop.EstimatedValue.Float64()
	}
	for _, v := range p.Vehicles {
		total += v.EstimatedValue.Float64()
	}
	total += p.GoldValue.Float64() +
		p.SilverValue.Float64() +
		p.StocksValue.Float64() +
		p.MutualFundsValue.Float64() +
		p.PFNPSValue.Float64() +
		p.BankBalance.Float64() +
		p.CashInHand.Float64() +
		p.EmergencyFund.Float64()
	for _, inv := range p.InterestInvestments {
		total += inv.PrincipalAmount.Float64()
	}
	return sanitize(total + EntrySum(p.AssetEntries))
}

// TotalLiabilities sums loan principals in full (the EMI is a flow, the
// principal is the debt), card outstanding and custom liability entries.
func (p Profile) TotalLiabilities() float64 {
	var total float64
	for _, l := range p.Loans {
		total += l.PrincipalAmount.Float64()
	}
	total += p.CreditCardOutstanding.Float64()
	return sanitize(total + EntrySum(p.LiabilityEntries))
}

// NetWorth is assets minus liabilities.
func (p Profile) NetWorth() float64 {
	return p.TotalAssets() - p.TotalLiabilities()
}

// ComputeTotals evaluates all headline figures in one pass.
func ComputeTotals(p Profile) Totals {
	assets := p.TotalAssets()
	liabilities := p.TotalLiabilities()
	return Totals{
		MonthlyIncome:   p.TotalMonthlyIncome(),
		MonthlyExpenses: p.TotalMonthlyExpenses(),
		Assets:          assets,
		Liabilities:     liabilities,
		NetWorth:        assets - liabilities,
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
