package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/arthverse/finance-service/internal/finance"
	"github.com/arthverse/finance-service/internal/models"
	"github.com/arthverse/finance-service/internal/repository"
	"github.com/shopspring/decimal"
)

const healthScoreCacheTTL = time.Hour

// tier-1 metros; everything else defaults to tier 2
var metroCities = map[string]bool{
	"mumbai": true, "delhi": true, "bangalore": true, "bengaluru": true,
	"chennai": true, "kolkata": true, "hyderabad": true, "pune": true,
	"ahmedabad": true, "gurgaon": true, "gurugram": true, "noida": true,
}

func cityTier(city string) string {
	if city == "" {
		return "tier1"
	}
	if metroCities[strings.ToLower(strings.TrimSpace(city))] {
		return "tier1"
	}
	return "tier2"
}

// HealthScoreReport computes the full benchmarked health score from the
// user's questionnaire. Results are cached for an hour; saving or
// resetting the questionnaire invalidates the cache.
func (s *Service) HealthScoreReport(ctx context.Context) (*finance.HealthScore, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, healthScoreCacheKey(userID)); ok {
		score := &finance.HealthScore{}
		if err := json.Unmarshal([]byte(cached), score); err == nil {
			return score, nil
		}
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfile(userID)
	if err == repository.ErrNotFound {
		return nil, ErrNoQuestionnaire
	}
	if err != nil {
		return nil, err
	}

	score := finance.ComputeHealthScore(*profile, user.Age, user.NoOfDependents)

	if len(profile.Loans) > 0 {
		if _, lending, err := s.rates.BenchmarkRate(); err == nil {
			score.Insights = append(score.Insights, refinanceInsights(profile.Loans, lending)...)
		} else {
			s.log.Debugf("Benchmark rate unavailable, skipping refinance insights: %v", err)
		}
	}

	if encoded, err := json.Marshal(score); err == nil {
		if err := s.cache.Set(ctx, healthScoreCacheKey(userID), string(encoded), healthScoreCacheTTL); err != nil {
			s.log.Debugf("Failed to cache health score for user %s: %v", userID, err)
		}
	}

	return &score, nil
}

// refinanceInsights flags questionnaire loans priced above the going
// lending rate derived from the central bank benchmark.
func refinanceInsights(loans []finance.Loan, lendingRate float64) []finance.Insight {
	var insights []finance.Insight
	if lendingRate <= 0 {
		return insights
	}
	for _, l := range loans {
		rate := l.InterestRate.Float64()
		if rate <= lendingRate {
			continue
		}
		name := l.Name
		if name == "" {
			name = string(l.LoanType)
		}
		insights = append(insights, finance.Insight{
			Category: "Loans",
			Issue:    fmt.Sprintf("%s is priced above the current lending rate", name),
			Current:  fmt.Sprintf("%.2f%% interest", rate),
			Target:   fmt.Sprintf("Around %.2f%%", lendingRate),
			Action:   "Consider refinancing this loan at the prevailing market rate",
			Priority: "MEDIUM",
		})
	}
	return insights
}

// QuickHealthScore scores transaction history alone, for users who have
// not completed the questionnaire.
func (s *Service) QuickHealthScore(ctx context.Context) (*models.QuickHealthScore, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(userID, defaultTransactionLimit)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == "income" {
			totalIncome = totalIncome.Add(amount)
		} else {
			totalExpenses = totalExpenses.Add(amount)
		}
	}

	income, _ := totalIncome.Float64()
	expenses, _ := totalExpenses.Float64()
	netSavings := income - expenses

	var savingsRate, expenseRatio float64
	if income > 0 {
		savingsRate = netSavings / income * 100
		expenseRatio = expenses / income
	}

	score := 50
	if savingsRate >= 20 {
		score += 30
	} else if savingsRate >= 10 {
		score += 15
	}
	if expenseRatio <= 0.5 {
		score += 20
	} else if expenseRatio <= 0.7 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	var insights []string
	if savingsRate < 10 {
		insights = append(insights, "Consider reducing expenses to improve your savings rate")
	} else if savingsRate >= 20 {
		insights = append(insights, "Excellent savings rate! You're on track for financial health")
	}
	if expenseRatio > 0.8 {
		insights = append(insights, "Your expenses are high relative to income. Review unnecessary spending")
	} else if expenseRatio <= 0.5 {
		insights = append(insights, "Great job keeping expenses low!")
	}
	if len(txs) < 5 {
		insights = append(insights, "Add more transactions to get better insights")
	}

	return &models.QuickHealthScore{
		Score:                score,
		TotalIncome:          income,
		TotalExpenses:        expenses,
		NetSavings:           netSavings,
		SavingsRate:          round2(savingsRate),
		ExpenseToIncomeRatio: round2(expenseRatio),
		Insights:             insights,
	}, nil
}

// PLReport builds a profit and loss statement over recorded transactions,
// with per-category breakdowns and a monthly income/expense trend.
func (s *Service) PLReport(ctx context.Context) (*models.PLStatement, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(userID, defaultTransactionLimit)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	incomeByCategory := map[string]decimal.Decimal{}
	expensesByCategory := map[string]decimal.Decimal{}
	type monthTotals struct{ income, expenses decimal.Decimal }
	byMonth := map[string]*monthTotals{}

	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		category := t.Category
		if category == "" {
			category = "Other"
		}
		month := t.Date
		if len(month) >= 7 {
			month = month[:7]
		}
		if byMonth[month] == nil {
			byMonth[month] = &monthTotals{}
		}
		if t.Type == "income" {
			totalIncome = totalIncome.Add(amount)
			incomeByCategory[category] = incomeByCategory[category].Add(amount)
			byMonth[month].income = byMonth[month].income.Add(amount)
		} else {
			totalExpenses = totalExpenses.Add(amount)
			expensesByCategory[category] = expensesByCategory[category].Add(amount)
			byMonth[month].expenses = byMonth[month].expenses.Add(amount)
		}
	}

	var trend []models.MonthlyTrendPoint
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		income, _ := byMonth[m].income.Float64()
		expenses, _ := byMonth[m].expenses.Float64()
		trend = append(trend, models.MonthlyTrendPoint{Month: m, Income: income, Expenses: expenses})
	}

	income, _ := totalIncome.Float64()
	expenses, _ := totalExpenses.Float64()

	return &models.PLStatement{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		NetProfitLoss:      income - expenses,
		IncomeByCategory:   toFloatMap(incomeByCategory),
		ExpensesByCategory: toFloatMap(expensesByCategory),
		MonthlyTrend:       trend,
	}, nil
}

// BalanceSheetReport prefers the questionnaire's asset and liability
// breakdown; without one it falls back to transaction totals.
func (s *Service) BalanceSheetReport(ctx context.Context) (*models.BalanceSheet, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.GetProfile(userID)
	if err == nil {
		return balanceSheetFromProfile(profile), nil
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	txs, err := s.repo.ListTransactions(userID, defaultTransactionLimit)
	if err != nil {
		return nil, err
	}
	assets := decimal.Zero
	liabilities := decimal.Zero
	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == "income" {
			assets = assets.Add(amount)
		} else {
			liabilities = liabilities.Add(amount)
		}
	}
	a, _ := assets.Float64()
	l, _ := liabilities.Float64()
	return &models.BalanceSheet{
		TotalAssets:          a,
		TotalLiabilities:     l,
		NetWorth:             a - l,
		AssetsBreakdown:      map[string]float64{"Cash": a},
		LiabilitiesBreakdown: map[string]float64{"Expenses": l},
	}, nil
}

func balanceSheetFromProfile(p *finance.Profile) *models.BalanceSheet {
	assets := map[string]float64{
		"Gold":           p.GoldValue.Float64(),
		"Silver":         p.SilverValue.Float64(),
		"Stocks":         p.StocksValue.Float64(),
		"Mutual Funds":   p.MutualFundsValue.Float64(),
		"PF / NPS":       p.PFNPSValue.Float64(),
		"Bank Balance":   p.BankBalance.Float64(),
		"Cash in Hand":   p.CashInHand.Float64(),
		"Emergency Fund": p.EmergencyFund.Float64(),
	}
	for _, prop := range p.Properties {
		assets["Property"] += prop.EstimatedValue.Float64()
	}
	for _, v := range p.Vehicles {
		assets["Vehicles"] += v.EstimatedValue.Float64()
	}
	for _, inv := range p.InterestInvestments {
		assets["Deposits"] += inv.PrincipalAmount.Float64()
	}
	assets["Other"] = finance.EntrySum(p.AssetEntries)

	liabilities := map[string]float64{
		"Credit Card Outstanding": p.CreditCardOutstanding.Float64(),
	}
	for _, l := range p.Loans {
		liabilities["Loans"] += l.PrincipalAmount.Float64()
	}
	liabilities["Other"] = finance.EntrySum(p.LiabilityEntries)

	for k, v := range assets {
		if v == 0 {
			delete(assets, k)
		}
	}
	for k, v := range liabilities {
		if v == 0 {
			delete(liabilities, k)
		}
	}

	return &models.BalanceSheet{
		TotalAssets:          p.TotalAssets(),
		TotalLiabilities:     p.TotalLiabilities(),
		NetWorth:             p.NetWorth(),
		AssetsBreakdown:      assets,
		LiabilitiesBreakdown: liabilities,
	}
}

// ProtectionGapReport evaluates insurance coverage against income,
// dependents and city tier.
func (s *Service) ProtectionGapReport(ctx context.Context) (*finance.ProtectionGap, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfile(userID)
	if err == repository.ErrNotFound {
		return nil, ErrNoQuestionnaire
	}
	if err != nil {
		return nil, err
	}

	gap := finance.ComputeProtectionGap(*profile, user.Age, user.NoOfDependents, cityTier(user.City))
	return &gap, nil
}

// LoanSchedule returns the month-by-month amortization of one of the
// user's loans, identified by its position in the questionnaire.
func (s *Service) LoanSchedule(ctx context.Context, index int) ([]finance.ScheduleEntry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfile(userID)
	if err == repository.ErrNotFound {
		return nil, ErrNoQuestionnaire
	}
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(profile.Loans) {
		return nil, fmt.Errorf("loan not found")
	}
	return finance.AmortizationSchedule(profile.Loans[index], time.Now()), nil
}

func toFloatMap(in map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		f, _ := v.Float64()
		out[k] = f
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
