package finance

import (
	"fmt"
	"math"
	"sort"
)

// Age categories used for benchmarking.
const (
	AgeEarlyCareer   = "early_career"
	AgeBuilding      = "building"
	AgeAccumulation  = "accumulation"
	AgePeakEarning   = "peak_earning"
	AgePreRetirement = "pre_retirement"
)

// Benchmarks are the age-adjusted targets a profile is scored against.
type Benchmarks struct {
	SavingsTarget      float64
	EmergencyMonths    float64
	InvestmentMultiple float64
	NetWorthMultiple   float64
	DebtTolerance      float64
}

// AgeCategory buckets an age for benchmark lookup.
func AgeCategory(age int) string {
	switch {
	case age < 25:
		return AgeEarlyCareer
	case age < 35:
		return AgeBuilding
	case age < 45:
		return AgeAccumulation
	case age < 55:
		return AgePeakEarning
	default:
		return AgePreRetirement
	}
}

var ageBenchmarks = map[string]Benchmarks{
	AgeEarlyCareer:   {SavingsTarget: 0.15, EmergencyMonths: 3, InvestmentMultiple: 0.3, NetWorthMultiple: 0.5, DebtTolerance: 0.35},
	AgeBuilding:      {SavingsTarget: 0.20, EmergencyMonths: 6, InvestmentMultiple: 1.0, NetWorthMultiple: 1.5, DebtTolerance: 0.40},
	AgeAccumulation:  {SavingsTarget: 0.25, EmergencyMonths: 8, InvestmentMultiple: 2.5, NetWorthMultiple: 3.0, DebtTolerance: 0.35},
	AgePeakEarning:   {SavingsTarget: 0.30, EmergencyMonths: 10, InvestmentMultiple: 5.0, NetWorthMultiple: 5.0, DebtTolerance: 0.25},
	AgePreRetirement: {SavingsTarget: 0.35, EmergencyMonths: 12, InvestmentMultiple: 8.0, NetWorthMultiple: 8.0, DebtTolerance: 0.15},
}

// BenchmarksFor returns the targets for an age category, defaulting to
// the building stage for unknown categories.
func BenchmarksFor(category string) Benchmarks {
	if b, ok := ageBenchmarks[category]; ok {
		return b
	}
	return ageBenchmarks[AgeBuilding]
}

// Allocation is an equity/debt/alternative split in percent.
type Allocation struct {
	Equity      float64 `json:"equity"`
	Debt        float64 `json:"debt"`
	Alternative float64 `json:"alternative"`
}

// IdealAllocation applies the 100-minus-age rule with bounds.
func IdealAllocation(age int) Allocation {
	equity := clamp(float64(100-age), 20, 80)
	debt := clamp(float64(age-20), 15, 60)
	alternative := clamp(100-equity-debt, 5, 20)
	return Allocation{Equity: equity, Debt: debt, Alternative: alternative}
}

// ScoreComponent is one scored dimension of the health score.
type ScoreComponent struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Value  string `json:"value"`
	Target string `json:"target"`
}

// Insight is an actionable finding, ordered by priority.
type Insight struct {
	Category string `json:"category"`
	Issue    string `json:"issue"`
	Current  string `json:"current"`
	Target   string `json:"target"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// Financials echoes the engine totals alongside the score.
type Financials struct {
	MonthlyIncome    float64 `json:"monthly_income"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	MonthlySavings   float64 `json:"monthly_savings"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`
}

// AllocationReport compares actual allocation with the ideal for the age.
type AllocationReport struct {
	EquityPercent      float64 `json:"equity_percent"`
	DebtPercent        float64 `json:"debt_percent"`
	AlternativePercent float64 `json:"alternative_percent"`
	IdealEquity        float64 `json:"ideal_equity"`
	IdealDebt          float64 `json:"ideal_debt"`
	IdealAlternative   float64 `json:"ideal_alternative"`
	Deviation          float64 `json:"deviation"`
}

// HealthScore is the full scored assessment of a financial profile.
type HealthScore struct {
	Score           int              `json:"score"`
	Rating          string           `json:"rating"`
	Message         string           `json:"message"`
	Age             int              `json:"age"`
	AgeCategory     string           `json:"age_category"`
	Components      []ScoreComponent `json:"components"`
	Insights        []Insight        `json:"insights"`
	Financials      Financials       `json:"financials"`
	AssetAllocation AllocationReport `json:"asset_allocation"`
	Checkpoints     map[string]bool  `json:"checkpoints"`
}

// ComputeHealthScore scores a profile against age-adjusted benchmarks. The
// nine components add to a raw 120 which is normalized to 100. All monetary
// inputs come from the aggregation engine, never from re-summed fields.
func ComputeHealthScore(p Profile, age, dependents int) HealthScore {
	if age <= 0 {
		age = 30
	}
	totals := ComputeTotals(p)
	monthlyIncome := totals.MonthlyIncome
	monthlyExpenses := totals.MonthlyExpenses
	annualIncome := monthlyIncome * 12

	category := AgeCategory(age)
	bm := BenchmarksFor(category)

	// Investment buckets for allocation analysis.
	equity := p.StocksValue.Float64() + p.MutualFundsValue.Float64()
	debt := p.PFNPSValue.Float64()
	for _, inv := range p.InterestInvestments {
		debt += inv.PrincipalAmount.Float64()
	}
	alternative := p.GoldValue.Float64() + p.SilverValue.Float64()
	for _, prop := range p.Properties {
		alternative += prop.EstimatedValue.Float64()
	}
	totalInvestments := equity + debt + alternative

	var equityPct, debtPct, alternativePct float64
	if totalInvestments > 0 {
		equityPct = equity / totalInvestments * 100
		debtPct = debt / totalInvestments * 100
		alternativePct = alternative / totalInvestments * 100
	}
	ideal := IdealAllocation(age)
	deviation := math.Abs(equityPct-ideal.Equity) +
		math.Abs(debtPct-ideal.Debt) +
		math.Abs(alternativePct-ideal.Alternative)

	allocationScore := 0
	switch {
	case totalInvestments == 0:
		allocationScore = 0
	case deviation <= 20:
		allocationScore = 10
	case deviation <= 40:
		allocationScore = 8
	case deviation <= 60:
		allocationScore = 6
	case deviation <= 80:
		allocationScore = 4
	default:
		allocationScore = 2
	}

	emergencyFund := p.EmergencyFund.Float64()

	checkpoints := map[string]bool{
		"has_health_insurance": p.HasHealthInsurance,
		"has_term_insurance":   p.HasTermInsurance,
		"has_emergency_fund":   emergencyFund >= monthlyExpenses*3,
		"files_itr":            p.FilesITRYearly,
		"invests_regularly":    totalInvestments > 0,
		"has_credit_card":      len(p.CreditCards) > 0,
	}
	checkpointCount := 0
	for _, ok := range checkpoints {
		if ok {
			checkpointCount++
		}
	}
	habitsScore := int(math.Round(float64(checkpointCount) / 6 * 10))

	// Savings rate, 25 points.
	var savingsRate float64
	if monthlyIncome > 0 {
		savingsRate = (monthlyIncome - monthlyExpenses) / monthlyIncome
	}
	savingsScore := bandScore(savingsRate, bm.SavingsTarget,
		[]band{{1.5, 25}, {1.2, 22}, {1.0, 18}, {0.75, 14}, {0.50, 10}, {0.25, 5}})

	// Debt-to-income, 20 points.
	monthlyDebtPayments := TotalMonthlyEMI(p.Loans)
	var debtToIncome float64
	if monthlyIncome > 0 {
		debtToIncome = monthlyDebtPayments / monthlyIncome
	}
	debtScore := 0
	switch {
	case debtToIncome == 0:
		debtScore = 20
	case debtToIncome <= bm.DebtTolerance*0.25:
		debtScore = 18
	case debtToIncome <= bm.DebtTolerance*0.50:
		debtScore = 16
	case debtToIncome <= bm.DebtTolerance*0.75:
		debtScore = 12
	case debtToIncome <= bm.DebtTolerance:
		debtScore = 8
	case debtToIncome <= bm.DebtTolerance*1.25:
		debtScore = 4
	}

	// Emergency fund months, 15 points.
	var emergencyMonths float64
	if monthlyExpenses > 0 {
		emergencyMonths = emergencyFund / monthlyExpenses
	}
	emergencyScore := bandScore(emergencyMonths, bm.EmergencyMonths,
		[]band{{1.5, 15}, {1.2, 14}, {1.0, 12}, {0.75, 9}, {0.50, 6}, {0.25, 3}})

	// Investment ratio, 15 points.
	var investmentRate float64
	if annualIncome > 0 {
		investmentRate = totalInvestments / annualIncome
	}
	investmentScore := bandScore(investmentRate, bm.InvestmentMultiple,
		[]band{{1.5, 15}, {1.2, 13}, {1.0, 11}, {0.75, 9}, {0.50, 6}, {0.25, 3}})

	// Net worth ratio, 15 points.
	var netWorthRatio float64
	if annualIncome > 0 {
		netWorthRatio = totals.NetWorth / annualIncome
	}
	netWorthScore := 0
	switch {
	case netWorthRatio >= bm.NetWorthMultiple*1.5:
		netWorthScore = 15
	case netWorthRatio >= bm.NetWorthMultiple*1.2:
		netWorthScore = 13
	case netWorthRatio >= bm.NetWorthMultiple:
		netWorthScore = 11
	case netWorthRatio >= bm.NetWorthMultiple*0.75:
		netWorthScore = 8
	case netWorthRatio >= bm.NetWorthMultiple*0.50:
		netWorthScore = 5
	case netWorthRatio >= 0:
		netWorthScore = 2
	}

	// Insurance coverage, 5 + 5 points. Yearly premiums stand in for cover
	// via a 12x heuristic when the sum assured is not captured.
	lifeMultiple := lifeInsuranceMultiple(age)
	requiredLifeCover := annualIncome * float64(lifeMultiple)
	requiredHealthCover := float64(dependents+1) * healthCoverPerPerson(age)

	var lifeCover, healthCover float64
	for _, pol := range p.InsurancePolicies {
		switch pol.Type {
		case InsuranceLife:
			lifeCover += pol.InsuranceAmount.Float64() * 12
		case InsuranceHealth:
			healthCover += pol.InsuranceAmount.Float64() * 12
		}
	}

	var lifeRatio, healthRatio float64
	if requiredLifeCover > 0 {
		lifeRatio = lifeCover / requiredLifeCover
	}
	if requiredHealthCover > 0 {
		healthRatio = healthCover / requiredHealthCover
	}
	lifeScore := coverageScore(lifeRatio)
	healthScore := coverageScore(healthRatio)

	raw := savingsScore + debtScore + emergencyScore + investmentScore +
		netWorthScore + lifeScore + healthScore + allocationScore + habitsScore
	total := int(math.Round(float64(raw) / 120 * 100))

	rating, message := ratingFor(total)

	components := []ScoreComponent{
		{Name: "Savings Rate", Score: savingsScore, Max: 25, Value: fmt.Sprintf("%.1f%%", savingsRate*100), Target: fmt.Sprintf("%.0f%%+", bm.SavingsTarget*100)},
		{Name: "Debt Management", Score: debtScore, Max: 20, Value: fmt.Sprintf("%.1f%%", debtToIncome*100), Target: fmt.Sprintf("<%.0f%%", bm.DebtTolerance*100)},
		{Name: "Emergency Fund", Score: emergencyScore, Max: 15, Value: fmt.Sprintf("%.1f months", emergencyMonths), Target: fmt.Sprintf("%.0f months", bm.EmergencyMonths)},
		{Name: "Investment Portfolio", Score: investmentScore, Max: 15, Value: fmt.Sprintf("%.1fX income", investmentRate), Target: fmt.Sprintf("%.1fX income", bm.InvestmentMultiple)},
		{Name: "Net Worth", Score: netWorthScore, Max: 15, Value: fmt.Sprintf("%.1fX income", netWorthRatio), Target: fmt.Sprintf("%.1fX income", bm.NetWorthMultiple)},
		{Name: "Asset Allocation", Score: allocationScore, Max: 10, Value: fmt.Sprintf("%.0f%% deviation", deviation), Target: "Age-appropriate mix"},
		{Name: "Financial Habits", Score: habitsScore, Max: 10, Value: fmt.Sprintf("%d/6 checkpoints", checkpointCount), Target: "6/6 checkpoints"},
		{Name: "Life Insurance", Score: lifeScore, Max: 5, Value: fmt.Sprintf("%.0f%%", lifeRatio*100), Target: fmt.Sprintf("%dX income", lifeMultiple)},
		{Name: "Health Insurance", Score: healthScore, Max: 5, Value: fmt.Sprintf("%.0f%%", healthRatio*100), Target: fmt.Sprintf("₹%.1fL/person", healthCoverPerPerson(age)/100000)},
	}

	var insights []Insight
	if totalInvestments > 0 && allocationScore < 8 {
		insights = append(insights, Insight{
			Category: "Asset Allocation",
			Issue:    fmt.Sprintf("Poor asset allocation for age %d", age),
			Current:  fmt.Sprintf("Equity: %.0f%%, Debt: %.0f%%, Alt: %.0f%%", equityPct, debtPct, alternativePct),
			Target:   fmt.Sprintf("Equity: %.0f%%, Debt: %.0f%%, Alt: %.0f%%", ideal.Equity, ideal.Debt, ideal.Alternative),
			Action:   "Rebalance portfolio to age-appropriate allocation",
			Priority: "MEDIUM",
		})
	}
	if checkpointCount < 6 {
		insights = append(insights, Insight{
			Category: "Financial Habits",
			Issue:    fmt.Sprintf("Missing %d financial stability checkpoints", 6-checkpointCount),
			Current:  fmt.Sprintf("%d/6 checkpoints met", checkpointCount),
			Target:   "6/6 checkpoints",
			Action:   "Fix critical gaps in financial planning",
			Priority: "HIGH",
		})
	}
	if savingsRate < bm.SavingsTarget {
		insights = append(insights, Insight{
			Category: "Savings",
			Issue:    "Low savings rate for your age",
			Current:  fmt.Sprintf("%.1f%%", savingsRate*100),
			Target:   fmt.Sprintf("%.0f%%+", bm.SavingsTarget*100),
			Action:   fmt.Sprintf("Reduce expenses by ₹%.0f", monthlyIncome*bm.SavingsTarget-(monthlyIncome-monthlyExpenses)),
			Priority: "HIGH",
		})
	}
	if debtToIncome > bm.DebtTolerance {
		insights = append(insights, Insight{
			Category: "Debt",
			Issue:    "High debt burden for your age",
			Current:  fmt.Sprintf("%.1f%%", debtToIncome*100),
			Target:   fmt.Sprintf("Below %.0f%%", bm.DebtTolerance*100),
			Action:   fmt.Sprintf("Reduce EMIs by ₹%.0f", monthlyDebtPayments-monthlyIncome*bm.DebtTolerance),
			Priority: "HIGH",
		})
	}
	if emergencyMonths < bm.EmergencyMonths {
		gap := monthlyExpenses*bm.EmergencyMonths - emergencyFund
		insights = append(insights, Insight{
			Category: "Emergency Fund",
			Issue:    fmt.Sprintf("Insufficient emergency fund (need %.0f months)", bm.EmergencyMonths),
			Current:  fmt.Sprintf("%.1f months", emergencyMonths),
			Target:   fmt.Sprintf("%.0f months", bm.EmergencyMonths),
			Action:   fmt.Sprintf("Build emergency fund by ₹%.0f", gap),
			Priority: "HIGH",
		})
	}
	if lifeRatio < 1.0 {
		insights = append(insights, Insight{
			Category: "Life Insurance",
			Issue:    fmt.Sprintf("Inadequate life insurance (need %dX at age %d)", lifeMultiple, age),
			Current:  fmt.Sprintf("₹%.1fL", lifeCover/100000),
			Target:   fmt.Sprintf("₹%.0fL", requiredLifeCover/100000),
			Action:   fmt.Sprintf("Increase life cover by ₹%.0fL", (requiredLifeCover-lifeCover)/100000),
			Priority: "HIGH",
		})
	}
	if healthRatio < 1.0 {
		insights = append(insights, Insight{
			Category: "Health Insurance",
			Issue:    "Inadequate health insurance",
			Current:  fmt.Sprintf("₹%.1fL", healthCover/100000),
			Target:   fmt.Sprintf("₹%.0fL", requiredHealthCover/100000),
			Action:   fmt.Sprintf("Increase health cover by ₹%.0fL", (requiredHealthCover-healthCover)/100000),
			Priority: "HIGH",
		})
	}
	priorityOrder := map[string]int{"HIGH": 0, "MEDIUM": 1, "LOW": 2}
	sort.SliceStable(insights, func(i, j int) bool {
		return priorityOrder[insights[i].Priority] < priorityOrder[insights[j].Priority]
	})
	if len(insights) > 10 {
		insights = insights[:10]
	}

	return HealthScore{
		Score:       total,
		Rating:      rating,
		Message:     message,
		Age:         age,
		AgeCategory: category,
		Components:  components,
		Insights:    insights,
		Financials: Financials{
			MonthlyIncome:    round2(monthlyIncome),
			MonthlyExpenses:  round2(monthlyExpenses),
			MonthlySavings:   round2(monthlyIncome - monthlyExpenses),
			TotalAssets:      round2(totals.Assets),
			TotalLiabilities: round2(totals.Liabilities),
			NetWorth:         round2(totals.NetWorth),
		},
		AssetAllocation: AllocationReport{
			EquityPercent:      round1(equityPct),
			DebtPercent:        round1(debtPct),
			AlternativePercent: round1(alternativePct),
			IdealEquity:        round1(ideal.Equity),
			IdealDebt:          round1(ideal.Debt),
			IdealAlternative:   round1(ideal.Alternative),
			Deviation:          round1(deviation),
		},
		Checkpoints: checkpoints,
	}
}

type band struct {
	multiple float64
	points   int
}

// bandScore awards points for value relative to target using descending
// multiple thresholds; below the last threshold scores 0.
func bandScore(value, target float64, bands []band) int {
	for _, b := range bands {
		if value >= target*b.multiple {
			return b.points
		}
	}
	return 0
}

func coverageScore(ratio float64) int {
	switch {
	case ratio >= 1.0:
		return 5
	case ratio >= 0.75:
		return 4
	case ratio >= 0.50:
		return 3
	case ratio >= 0.25:
		return 2
	case ratio > 0:
		return 1
	default:
		return 0
	}
}

func lifeInsuranceMultiple(age int) int {
	switch {
	case age < 35:
		return 8
	case age < 45:
		return 10
	case age < 55:
		return 12
	default:
		return 15
	}
}

func healthCoverPerPerson(age int) float64 {
	switch {
	case age < 35:
		return 500000
	case age < 45:
		return 750000
	case age < 55:
		return 1000000
	default:
		return 1500000
	}
}

func ratingFor(score int) (string, string) {
	switch {
	case score >= 85:
		return "Excellent", "Outstanding financial health! You're on track for long-term wealth."
	case score >= 70:
		return "Very Good", "Strong financial position. A few tweaks will make it excellent."
	case score >= 55:
		return "Good", "Decent financial health, but room for significant improvement."
	case score >= 40:
		return "Fair", "You need to address several financial gaps urgently."
	default:
		return "Poor", "Critical financial situation. Immediate action required."
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
