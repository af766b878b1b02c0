package finance

// MonthlyEquivalent reduces a heterogeneous list of entries to a single
// monthly figure. Yearly entries contribute one twelfth of their amount,
// monthly entries pass through. The reduction is a plain sum, so ordering
// of the input is irrelevant.
func MonthlyEquivalent(entries []FinancialEntry) float64 {
	var total float64
	for _, e := range entries {
		amount := e.Amount.Float64()
		if e.Frequency == FrequencyYearly {
			amount /= 12
		}
		total += amount
	}
	return total
}

// EntrySum adds up raw entry amounts with no frequency normalization. Asset
// and liability entries are point-in-time balances, not flows.
func EntrySum(entries []FinancialEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount.Float64()
	}
	return total
}
