package finance

import "fmt"

// RiskStatus of one coverage category.
type RiskStatus string

const (
	RiskCovered      RiskStatus = "covered"
	RiskUnderinsured RiskStatus = "underinsured"
	RiskNotInsured   RiskStatus = "not_insured"
	RiskUnknown      RiskStatus = "unknown"
)

// RiskCategory is the evaluation of one insurance category.
type RiskCategory struct {
	Category        string     `json:"category"`
	Status          RiskStatus `json:"status"`
	Message         string     `json:"message"`
	GapAmount       float64    `json:"gap_amount"`
	Recommendations []string   `json:"recommendations"`
}

// ProtectionGap is the overall risk-coverage assessment.
type ProtectionGap struct {
	ProtectionScore  int          `json:"protection_score"`
	LifeInsurance    RiskCategory `json:"life_insurance"`
	HealthInsurance  RiskCategory `json:"health_insurance"`
	VehicleInsurance RiskCategory `json:"vehicle_insurance"`
	CardsInsurance   RiskCategory `json:"cards_insurance"`
	UnprotectedAreas []string     `json:"unprotected_areas"`
	ActionItems      []string     `json:"action_items"`
}

// RequiredLifeCover is annual income times a dependents-based multiplier,
// plus outstanding debt, less existing investments, floored at zero.
func RequiredLifeCover(annualIncome, outstandingLoans, existingInvestments float64, dependents int) float64 {
	multiplier := 10.0
	switch {
	case dependents == 0:
		multiplier = 10
	case dependents <= 2:
		multiplier = 12
	default:
		multiplier = 15
	}
	required := annualIncome*multiplier + outstandingLoans - existingInvestments
	if required < 0 {
		return 0
	}
	return required
}

// RequiredHealthCover scales a city-tier base cover by family size.
func RequiredHealthCover(cityTier string, familySize int) float64 {
	base := 500000.0
	switch cityTier {
	case "tier1":
		base = 1000000
	case "tier2":
		base = 700000
	case "tier3":
		base = 500000
	}
	if familySize > 1 {
		base *= 1.5
	}
	if familySize > 3 {
		base *= 1.2
	}
	return base
}

// ComputeProtectionGap evaluates life, health, vehicle and card coverage for
// a profile and weighs them into a single protection score.
func ComputeProtectionGap(p Profile, age, dependents int, cityTier string) ProtectionGap {
	totals := ComputeTotals(p)
	annualIncome := totals.MonthlyIncome * 12

	var outstandingLoans float64
	for _, l := range p.Loans {
		outstandingLoans += l.PrincipalAmount.Float64()
	}
	investments := p.StocksValue.Float64() + p.MutualFundsValue.Float64() + p.PFNPSValue.Float64()
	for _, inv := range p.InterestInvestments {
		investments += inv.PrincipalAmount.Float64()
	}

	var lifeCover, healthCover float64
	var vehiclePolicies int
	for _, pol := range p.InsurancePolicies {
		switch pol.Type {
		case InsuranceLife:
			lifeCover += pol.InsuranceAmount.Float64() * 12
		case InsuranceHealth:
			healthCover += pol.InsuranceAmount.Float64() * 12
		case InsuranceVehicle:
			vehiclePolicies++
		}
	}

	life := evaluateLifeCover(lifeCover, RequiredLifeCover(annualIncome, outstandingLoans, investments, dependents))
	health := evaluateHealthCover(healthCover, RequiredHealthCover(cityTier, dependents+1))
	vehicle := evaluateVehicleCover(vehiclePolicies, p.Vehicles)
	cards := evaluateCardCover(p.CreditCards)

	weights := map[RiskStatus]float64{
		RiskCovered:      100,
		RiskUnderinsured: 50,
		RiskNotInsured:   0,
		RiskUnknown:      25,
	}
	score := weights[life.Status]*0.4 +
		weights[health.Status]*0.35 +
		weights[vehicle.Status]*0.15 +
		weights[cards.Status]*0.1

	var unprotected []string
	switch life.Status {
	case RiskNotInsured:
		unprotected = append(unprotected, "No life/term insurance")
	case RiskUnderinsured:
		unprotected = append(unprotected, fmt.Sprintf("Life insurance gap: ₹%.0fL", life.GapAmount/100000))
	}
	switch health.Status {
	case RiskNotInsured:
		unprotected = append(unprotected, "No health insurance")
	case RiskUnderinsured:
		unprotected = append(unprotected, "Health insurance inadequate")
	}
	if vehicle.Status == RiskUnknown {
		unprotected = append(unprotected, "Vehicle insurance not reviewed")
	}
	if cards.Status == RiskUnknown {
		unprotected = append(unprotected, "Card insurance benefits unknown")
	}

	var actions []string
	for _, cat := range []RiskCategory{life, health, vehicle, cards} {
		if cat.Status == RiskCovered {
			continue
		}
		n := len(cat.Recommendations)
		if n > 2 {
			n = 2
		}
		actions = append(actions, cat.Recommendations[:n]...)
	}
	if len(actions) > 6 {
		actions = actions[:6]
	}

	return ProtectionGap{
		ProtectionScore:  int(score),
		LifeInsurance:    life,
		HealthInsurance:  health,
		VehicleInsurance: vehicle,
		CardsInsurance:   cards,
		UnprotectedAreas: unprotected,
		ActionItems:      actions,
	}
}

func evaluateLifeCover(totalCover, required float64) RiskCategory {
	if totalCover == 0 {
		return RiskCategory{
			Category:  "Life Insurance",
			Status:    RiskNotInsured,
			Message:   "No life insurance coverage found",
			GapAmount: required,
			Recommendations: []string{
				"Get a pure term insurance immediately",
				fmt.Sprintf("Recommended cover: ₹%.0f lakh", required/100000),
			},
		}
	}
	ratio := 1.0
	if required > 0 {
		ratio = totalCover / required
	}
	switch {
	case ratio >= 0.9:
		return RiskCategory{
			Category:        "Life Insurance",
			Status:          RiskCovered,
			Message:         "Adequately covered",
			Recommendations: []string{"Review coverage annually", "Ensure nominees are updated"},
		}
	case ratio >= 0.5:
		gap := required - totalCover
		return RiskCategory{
			Category:  "Life Insurance",
			Status:    RiskUnderinsured,
			Message:   fmt.Sprintf("Cover short by ₹%.0f lakh", gap/100000),
			GapAmount: gap,
			Recommendations: []string{
				fmt.Sprintf("Increase life cover by ₹%.0f lakh", gap/100000),
				"Top up existing term plan",
			},
		}
	default:
		gap := required - totalCover
		return RiskCategory{
			Category:  "Life Insurance",
			Status:    RiskUnderinsured,
			Message:   fmt.Sprintf("Severely underinsured by ₹%.0f lakh", gap/100000),
			GapAmount: gap,
			Recommendations: []string{
				"Urgent: Get adequate life insurance",
				fmt.Sprintf("You need at least ₹%.0f lakh cover", required/100000),
			},
		}
	}
}

func evaluateHealthCover(totalCover, required float64) RiskCategory {
	if totalCover == 0 {
		return RiskCategory{
			Category:  "Health Insurance",
			Status:    RiskNotInsured,
			Message:   "No health insurance found",
			GapAmount: required,
			Recommendations: []string{
				"Get health insurance immediately",
				fmt.Sprintf("Recommended: ₹%.0f lakh family floater", required/100000),
			},
		}
	}
	ratio := 1.0
	if required > 0 {
		ratio = totalCover / required
	}
	if ratio >= 0.8 {
		return RiskCategory{
			Category:        "Health Insurance",
			Status:          RiskCovered,
			Message:         "Adequately covered",
			Recommendations: []string{"Review super top-up options", "Check for critical illness rider"},
		}
	}
	gap := required - totalCover
	return RiskCategory{
		Category:  "Health Insurance",
		Status:    RiskUnderinsured,
		Message:   fmt.Sprintf("Cover short by ₹%.0f lakh", gap/100000),
		GapAmount: gap,
		Recommendations: []string{
			fmt.Sprintf("Increase health cover by ₹%.0f lakh", gap/100000),
			"Consider a super top-up plan",
		},
	}
}

func evaluateVehicleCover(policies int, vehicles []Vehicle) RiskCategory {
	if policies == 0 && len(vehicles) == 0 {
		return RiskCategory{
			Category:        "Vehicle Insurance",
			Status:          RiskUnknown,
			Message:         "No vehicle insurance added",
			Recommendations: []string{"Add your vehicle insurance details to evaluate"},
		}
	}
	uninsured := 0
	for _, v := range vehicles {
		if !v.IsInsured {
			uninsured++
		}
	}
	if uninsured > 0 {
		return RiskCategory{
			Category:        "Vehicle Insurance",
			Status:          RiskUnderinsured,
			Message:         fmt.Sprintf("%d vehicle(s) without insurance", uninsured),
			Recommendations: []string{"Insure all owned vehicles", "Comprehensive cover over third-party only"},
		}
	}
	return RiskCategory{
		Category:        "Vehicle Insurance",
		Status:          RiskCovered,
		Message:         "Vehicle insurance active",
		Recommendations: []string{"Ensure zero depreciation add-on", "Review before renewal for better rates"},
	}
}

func evaluateCardCover(cards []string) RiskCategory {
	if len(cards) == 0 {
		return RiskCategory{
			Category:        "Cards Insurance",
			Status:          RiskUnknown,
			Message:         "Card benefits not reviewed",
			Recommendations: []string{"Add your credit/debit cards", "Review complimentary insurance benefits"},
		}
	}
	return RiskCategory{
		Category:        "Cards Insurance",
		Status:          RiskCovered,
		Message:         "Card benefits documented",
		Recommendations: []string{"Ensure card insurance is activated", "Check accidental death cover amount"},
	}
}
