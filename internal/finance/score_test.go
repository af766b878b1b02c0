package finance

import "testing"

func TestAgeCategory(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{22, AgeEarlyCareer},
		{25, AgeBuilding},
		{34, AgeBuilding},
		{35, AgeAccumulation},
		{45, AgePeakEarning},
		{55, AgePreRetirement},
		{70, AgePreRetirement},
	}
	for _, tc := range cases {
		if got := AgeCategory(tc.age); got != tc.want {
			t.Errorf("AgeCategory(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestIdealAllocationBounds(t *testing.T) {
	for age := 18; age <= 90; age++ {
		a := IdealAllocation(age)
		if a.Equity < 20 || a.Equity > 80 {
			t.Errorf("age %d: equity %v out of [20,80]", age, a.Equity)
		}
		if a.Debt < 15 || a.Debt > 60 {
			t.Errorf("age %d: debt %v out of [15,60]", age, a.Debt)
		}
		if a.Alternative < 5 || a.Alternative > 20 {
			t.Errorf("age %d: alternative %v out of [5,20]", age, a.Alternative)
		}
	}
	if a := IdealAllocation(30); a.Equity != 70 || a.Debt != 15 {
		t.Errorf("age 30: got %+v, want equity 70 debt 15", a)
	}
}

func TestComputeHealthScore_Bounds(t *testing.T) {
	var empty Profile
	hs := ComputeHealthScore(empty, 30, 0)
	if hs.Score < 0 || hs.Score > 100 {
		t.Errorf("score %d out of range", hs.Score)
	}
	if hs.AgeCategory != AgeBuilding {
		t.Errorf("age category = %q", hs.AgeCategory)
	}
	if len(hs.Components) != 9 {
		t.Errorf("expected 9 components, got %d", len(hs.Components))
	}
	var max int
	for _, c := range hs.Components {
		max += c.Max
	}
	if max != 120 {
		t.Errorf("component max sum = %d, want 120", max)
	}
}

func TestComputeHealthScore_HealthyProfileScoresHigher(t *testing.T) {
	weak := Profile{
		SalaryIncome: 600000,
		RentExpense:  40000,
		Groceries:    10000,
	}
	strong := Profile{
		SalaryIncome:       1800000,
		RentExpense:        20000,
		Groceries:          10000,
		EmergencyFund:      900000,
		StocksValue:        1200000,
		MutualFundsValue:   800000,
		PFNPSValue:         600000,
		GoldValue:          300000,
		BankBalance:        400000,
		HasHealthInsurance: true,
		HasTermInsurance:   true,
		FilesITRYearly:     true,
		CreditCards:        []string{"Regalia Gold"},
		InsurancePolicies: []InsurancePolicy{
			{Type: InsuranceLife, InsuranceAmount: 120000},
			{Type: InsuranceHealth, InsuranceAmount: 40000},
		},
	}
	weakScore := ComputeHealthScore(weak, 30, 0).Score
	strongScore := ComputeHealthScore(strong, 30, 0).Score
	if strongScore <= weakScore {
		t.Errorf("strong profile scored %d, weak scored %d", strongScore, weakScore)
	}
}

func TestComputeHealthScore_DefaultsAge(t *testing.T) {
	hs := ComputeHealthScore(Profile{}, 0, 0)
	if hs.Age != 30 {
		t.Errorf("zero age should default to 30, got %d", hs.Age)
	}
}

func TestRatingBands(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{90, "Excellent"},
		{85, "Excellent"},
		{70, "Very Good"},
		{55, "Good"},
		{40, "Fair"},
		{10, "Poor"},
	}
	for _, tc := range cases {
		if got, _ := ratingFor(tc.score); got != tc.want {
			t.Errorf("ratingFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestRequiredLifeCover(t *testing.T) {
	// 10x for no dependents, 12x up to two, 15x beyond.
	if got := RequiredLifeCover(1000000, 0, 0, 0); got != 10000000 {
		t.Errorf("no dependents: %v", got)
	}
	if got := RequiredLifeCover(1000000, 500000, 0, 2); got != 12500000 {
		t.Errorf("two dependents: %v", got)
	}
	if got := RequiredLifeCover(1000000, 0, 0, 4); got != 15000000 {
		t.Errorf("four dependents: %v", got)
	}
	if got := RequiredLifeCover(100000, 0, 5000000, 0); got != 0 {
		t.Errorf("cover floored at zero, got %v", got)
	}
}

func TestRequiredHealthCover(t *testing.T) {
	if got := RequiredHealthCover("tier1", 1); got != 1000000 {
		t.Errorf("tier1 single: %v", got)
	}
	if got := RequiredHealthCover("tier2", 2); got != 1050000 {
		t.Errorf("tier2 family: %v", got)
	}
	if got := RequiredHealthCover("tier3", 4); got != 900000 {
		t.Errorf("tier3 large family: %v", got)
	}
	if got := RequiredHealthCover("unknown", 1); got != 500000 {
		t.Errorf("unknown tier defaults to 5L: %v", got)
	}
}

func TestComputeProtectionGap(t *testing.T) {
	var empty Profile
	gap := ComputeProtectionGap(empty, 30, 1, "tier1")
	if gap.LifeInsurance.Status != RiskNotInsured {
		t.Errorf("life status = %q, want not_insured", gap.LifeInsurance.Status)
	}
	if gap.HealthInsurance.Status != RiskNotInsured {
		t.Errorf("health status = %q, want not_insured", gap.HealthInsurance.Status)
	}
	if gap.VehicleInsurance.Status != RiskUnknown {
		t.Errorf("vehicle status = %q, want unknown", gap.VehicleInsurance.Status)
	}
	if gap.ProtectionScore != 6 { // vehicle 25*0.15 + cards 25*0.1 = 6.25, truncated
		t.Errorf("protection score = %d, want 6", gap.ProtectionScore)
	}

	covered := Profile{
		InsurancePolicies: []InsurancePolicy{
			{Type: InsuranceVehicle, VehicleType: VehicleFourWheeler, VehicleNumber: "KA01AB1234"},
		},
		Vehicles:    []Vehicle{{RegistrationNumber: "KA01AB1234", IsInsured: true}},
		CreditCards: []string{"INFINIA"},
	}
	gap = ComputeProtectionGap(covered, 30, 0, "tier1")
	if gap.VehicleInsurance.Status != RiskCovered {
		t.Errorf("vehicle status = %q, want covered", gap.VehicleInsurance.Status)
	}
	if gap.CardsInsurance.Status != RiskCovered {
		t.Errorf("cards status = %q, want covered", gap.CardsInsurance.Status)
	}
}
