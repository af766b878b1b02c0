package service

import (
	"strings"
	"testing"

	"github.com/arthverse/finance-service/internal/finance"
)

func TestRefinanceInsights(t *testing.T) {
	loans := []finance.Loan{
		{LoanType: finance.LoanHome, Name: "HDFC Home Loan", InterestRate: 14, PrincipalAmount: 2000000, TenureMonths: 120},
		{LoanType: finance.LoanPersonal, InterestRate: 10.5, PrincipalAmount: 300000, TenureMonths: 24},
	}

	got := refinanceInsights(loans, 11.5)
	if len(got) != 1 {
		t.Fatalf("got %d insights, want 1", len(got))
	}
	insight := got[0]
	if insight.Category != "Loans" {
		t.Errorf("category = %q, want Loans", insight.Category)
	}
	if !strings.Contains(insight.Issue, "HDFC Home Loan") {
		t.Errorf("issue should name the loan, got %q", insight.Issue)
	}
	if insight.Current != "14.00% interest" {
		t.Errorf("current = %q, want 14.00%% interest", insight.Current)
	}
	if insight.Priority != "MEDIUM" {
		t.Errorf("priority = %q, want MEDIUM", insight.Priority)
	}
}

func TestRefinanceInsights_NameFallsBackToType(t *testing.T) {
	loans := []finance.Loan{
		{LoanType: finance.LoanVehicle, InterestRate: 18, PrincipalAmount: 500000, TenureMonths: 48},
	}
	got := refinanceInsights(loans, 11.5)
	if len(got) != 1 {
		t.Fatalf("got %d insights, want 1", len(got))
	}
	if !strings.Contains(got[0].Issue, string(finance.LoanVehicle)) {
		t.Errorf("issue should fall back to the loan type, got %q", got[0].Issue)
	}
}

func TestRefinanceInsights_NoRateNoInsights(t *testing.T) {
	loans := []finance.Loan{
		{LoanType: finance.LoanPersonal, InterestRate: 24, PrincipalAmount: 100000, TenureMonths: 12},
	}
	if got := refinanceInsights(loans, 0); len(got) != 0 {
		t.Errorf("expected no insights without a lending rate, got %d", len(got))
	}
}
