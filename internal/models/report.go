package models

// QuickHealthScore is the transaction-based score used when no
// questionnaire is on file
type QuickHealthScore struct {
	Score                int      `json:"score"`
	TotalIncome          float64  `json:"total_income"`
	TotalExpenses        float64  `json:"total_expenses"`
	NetSavings           float64  `json:"net_savings"`
	SavingsRate          float64  `json:"savings_rate"`
	ExpenseToIncomeRatio float64  `json:"expense_to_income_ratio"`
	Insights             []string `json:"insights"`
}

// MonthlyTrendPoint is one month of income vs expense
type MonthlyTrendPoint struct {
	Month    string  `json:"month"` // Format: YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// PLStatement is the profit & loss report over recorded transactions
type PLStatement struct {
	TotalIncome        float64             `json:"total_income"`
	TotalExpenses      float64             `json:"total_expenses"`
	NetProfitLoss      float64             `json:"net_profit_loss"`
	IncomeByCategory   map[string]float64  `json:"income_by_category"`
	ExpensesByCategory map[string]float64  `json:"expenses_by_category"`
	MonthlyTrend       []MonthlyTrendPoint `json:"monthly_trend"`
}

// BalanceSheet reports assets, liabilities and net worth
type BalanceSheet struct {
	TotalAssets          float64            `json:"total_assets"`
	TotalLiabilities     float64            `json:"total_liabilities"`
	NetWorth             float64            `json:"net_worth"`
	AssetsBreakdown      map[string]float64 `json:"assets_breakdown"`
	LiabilitiesBreakdown map[string]float64 `json:"liabilities_breakdown"`
}
