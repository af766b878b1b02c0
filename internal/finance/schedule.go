package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleEntry is one period of a loan's repayment schedule.
type ScheduleEntry struct {
	Period           int             `json:"period"`
	DueDate          string          `json:"due_date"` // Format: YYYY-MM-DD
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// AmortizationSchedule expands a loan into its month-by-month repayment
// schedule starting one month after startDate. The installment comes from
// the same EMI formula the aggregation engine uses; per-period monetary
// amounts are rounded to 2 decimals with the final period adjusted so the
// balance lands exactly on zero. A loan the EMI guard rejects yields nil.
func AmortizationSchedule(l Loan, startDate time.Time) []ScheduleEntry {
	emi := l.MonthlyEMI()
	if emi == 0 {
		return nil
	}
	monthlyRate := decimal.NewFromFloat(l.InterestRate.Float64() / 12 / 100)
	payment := decimal.NewFromFloat(emi).Round(2)
	remaining := decimal.NewFromFloat(l.PrincipalAmount.Float64())

	schedule := make([]ScheduleEntry, 0, l.TenureMonths)
	for period := 1; period <= l.TenureMonths; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)
		total := payment

		if period == l.TenureMonths {
			principal = remaining
			total = principal.Add(interest)
		}
		remaining = remaining.Sub(principal)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, ScheduleEntry{
			Period:           period,
			DueDate:          startDate.AddDate(0, period, 0).Format("2006-01-02"),
			Principal:        principal,
			Interest:         interest,
			Total:            total,
			RemainingBalance: remaining,
		})
	}
	return schedule
}
