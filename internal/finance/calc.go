package finance

import "math"

// EMI computes the fixed monthly installment for a reducing-balance loan.
// A zero principal, rate or tenure short-circuits to 0: the questionnaire
// presents partially-filled loans while the user is still typing, and those
// must not blow up into Inf/NaN figures on screen.
func EMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	if principal == 0 || annualRatePercent == 0 || tenureMonths == 0 {
		return 0
	}
	monthlyRate := annualRatePercent / 12 / 100
	n := float64(tenureMonths)
	factor := math.Pow(1+monthlyRate, n)
	emi := principal * monthlyRate * factor / (factor - 1)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return 0
	}
	return emi
}

// YearlyInterestExpense is the interest portion of one year of EMI payments:
// twelve installments minus the straight-line principal repaid in a year.
func YearlyInterestExpense(principal, annualRatePercent float64, tenureMonths int) float64 {
	emi := EMI(principal, annualRatePercent, tenureMonths)
	if emi == 0 {
		return 0
	}
	yearlyPayment := emi * 12
	principalPerYear := principal / float64(tenureMonths) * 12
	return yearlyPayment - principalPerYear
}

// InterestIncome is the simple yearly interest on a fixed-income instrument.
func InterestIncome(principal, ratePercent float64) float64 {
	if principal == 0 || ratePercent == 0 {
		return 0
	}
	v := principal * ratePercent / 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ValuePerSqft is 0 when the area is zero rather than Inf.
func ValuePerSqft(estimatedValue, areaSqft float64) float64 {
	if areaSqft == 0 {
		return 0
	}
	v := estimatedValue / areaSqft
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
