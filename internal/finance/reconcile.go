package finance

import (
	"fmt"
	"strings"
)

// ReconcileVehicles derives vehicle records from vehicle-type insurance
// policies. A policy with both a vehicle type and a registration number
// yields a vehicle with is_insured set; an existing vehicle with the same
// registration number is marked insured instead of duplicated. The link is
// one-way and keyed only on the registration number, so running this any
// number of times gives the same result. The input slices are not mutated.
func ReconcileVehicles(vehicles []Vehicle, policies []InsurancePolicy) []Vehicle {
	result := make([]Vehicle, len(vehicles))
	copy(result, vehicles)

	for _, pol := range policies {
		if pol.Type != InsuranceVehicle || pol.VehicleType == "" || pol.VehicleNumber == "" {
			continue
		}
		reg := normalizeRegistration(pol.VehicleNumber)
		found := false
		for i := range result {
			if normalizeRegistration(result[i].RegistrationNumber) == reg {
				result[i].IsInsured = true
				found = true
			}
		}
		if found {
			continue
		}
		result = append(result, Vehicle{
			VehicleType:        pol.VehicleType,
			Name:               fmt.Sprintf("%s - %s", pol.VehicleType, reg),
			RegistrationNumber: reg,
			IsInsured:          true,
		})
	}
	return result
}

func normalizeRegistration(reg string) string {
	return strings.ToUpper(strings.TrimSpace(reg))
}
