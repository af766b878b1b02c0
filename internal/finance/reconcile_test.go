package finance

import "testing"

func TestReconcileVehicles_AutoCreates(t *testing.T) {
	policies := []InsurancePolicy{
		{Type: InsuranceVehicle, VehicleType: VehicleTwoWheeler, VehicleNumber: "ka02cd5678", InsuranceAmount: 3000},
	}
	got := ReconcileVehicles(nil, policies)
	if len(got) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(got))
	}
	v := got[0]
	if v.RegistrationNumber != "KA02CD5678" {
		t.Errorf("registration = %q, want normalized KA02CD5678", v.RegistrationNumber)
	}
	if !v.IsInsured {
		t.Errorf("auto-created vehicle must be insured")
	}
	if v.VehicleType != VehicleTwoWheeler {
		t.Errorf("vehicle type = %q", v.VehicleType)
	}
}

func TestReconcileVehicles_IdempotentOnRegistration(t *testing.T) {
	policies := []InsurancePolicy{
		{Type: InsuranceVehicle, VehicleType: VehicleFourWheeler, VehicleNumber: "KA01AB1234"},
		{Type: InsuranceVehicle, VehicleType: VehicleFourWheeler, VehicleNumber: "ka01ab1234"},
	}
	first := ReconcileVehicles(nil, policies)
	if len(first) != 1 {
		t.Fatalf("duplicate policies created %d vehicles, want 1", len(first))
	}
	second := ReconcileVehicles(first, policies)
	if len(second) != 1 {
		t.Fatalf("re-running reconciliation created %d vehicles, want 1", len(second))
	}
}

func TestReconcileVehicles_MarksExistingInsured(t *testing.T) {
	vehicles := []Vehicle{
		{VehicleType: VehicleFourWheeler, Name: "car", RegistrationNumber: "KA01AB1234", EstimatedValue: 800000},
	}
	policies := []InsurancePolicy{
		{Type: InsuranceVehicle, VehicleType: VehicleFourWheeler, VehicleNumber: "KA01AB1234"},
	}
	got := ReconcileVehicles(vehicles, policies)
	if len(got) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(got))
	}
	if !got[0].IsInsured {
		t.Errorf("existing vehicle should be marked insured")
	}
	if got[0].EstimatedValue != 800000 {
		t.Errorf("existing vehicle value must be preserved, got %v", got[0].EstimatedValue)
	}
	if vehicles[0].IsInsured {
		t.Errorf("input slice was mutated")
	}
}

func TestReconcileVehicles_IgnoresIncompletePolicies(t *testing.T) {
	// no number, no type, and a non-vehicle policy carrying vehicle fields
	policies := []InsurancePolicy{
		{Type: InsuranceVehicle, VehicleType: VehicleFourWheeler},
		{Type: InsuranceVehicle, VehicleNumber: "KA01AB1234"},
		{Type: InsuranceHealth, VehicleType: VehicleFourWheeler, VehicleNumber: "KA09ZZ0001"},
	}
	if got := ReconcileVehicles(nil, policies); len(got) != 0 {
		t.Errorf("incomplete policies created %d vehicles, want 0", len(got))
	}
}
