package services

import (
	"testing"

	"github.com/sevasetu/ngo-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.ExpensePending, models.ExpenseApproved, true},
		{models.ExpensePending, models.ExpenseRejected, true},
		{models.ExpensePending, models.ExpensePending, false},
		{models.ExpenseApproved, models.ExpenseRejected, false},
		{models.ExpenseApproved, models.ExpensePending, false},
		{models.ExpenseRejected, models.ExpenseApproved, false},
		{models.ExpensePending, "cancelled", false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func incomeRec(amount float64, category string) models.IncomeRecord {
	rec := models.IncomeRecord{Amount: amount}
	if category != "" {
		rec.Category = &models.IncomeCategory{Name: category}
	}
	return rec
}

func expenseRec(amount float64, status, category string) models.ExpenseRecord {
	rec := models.ExpenseRecord{Amount: amount, Status: status}
	if category != "" {
		rec.Category = &models.ExpenseCategory{Name: category}
	}
	return rec
}

func TestBuildReportTotals(t *testing.T) {
	income := []models.IncomeRecord{
		incomeRec(1000, "Donations"),
		incomeRec(500, "Grants"),
		incomeRec(250, ""),
	}
	expenses := []models.ExpenseRecord{
		expenseRec(300, models.ExpenseApproved, "Food Supplies"),
		expenseRec(200, models.ExpensePending, "Food Supplies"),
		expenseRec(100, models.ExpenseRejected, "Transport"),
	}

	report := BuildReport(income, expenses)

	if report.TotalIncome != 1750 {
		t.Fatalf("TotalIncome = %v, want 1750", report.TotalIncome)
	}
	// Rejected spend is still recorded spend; it stays in the total.
	if report.TotalExpenses != 600 {
		t.Fatalf("TotalExpenses = %v, want 600", report.TotalExpenses)
	}
	if report.ApprovedExpenses != 300 {
		t.Fatalf("ApprovedExpenses = %v, want 300", report.ApprovedExpenses)
	}
	if report.PendingExpenses != 200 {
		t.Fatalf("PendingExpenses = %v, want 200", report.PendingExpenses)
	}
	if report.NetBalance != 1150 {
		t.Fatalf("NetBalance = %v, want 1150", report.NetBalance)
	}
}

func TestBuildReportCategorySums(t *testing.T) {
	income := []models.IncomeRecord{
		incomeRec(100, "Donations"),
		incomeRec(400, "Donations"),
		incomeRec(50, ""),
	}

	report := BuildReport(income, nil)

	if len(report.IncomeByCategory) != 2 {
		t.Fatalf("expected 2 income categories, got %d", len(report.IncomeByCategory))
	}
	if report.IncomeByCategory[0].Category != "Donations" || report.IncomeByCategory[0].Total != 500 {
		t.Fatalf("top category = %+v, want Donations/500", report.IncomeByCategory[0])
	}
	if report.IncomeByCategory[1].Category != UncategorizedLabel || report.IncomeByCategory[1].Total != 50 {
		t.Fatalf("second category = %+v, want %s/50", report.IncomeByCategory[1], UncategorizedLabel)
	}

	// Per-category sums must partition the total.
	var sum float64
	for _, s := range report.IncomeByCategory {
		sum += s.Total
	}
	if sum != report.TotalIncome {
		t.Fatalf("category sums %v != total income %v", sum, report.TotalIncome)
	}
}

func TestBuildReportCategoryOrdering(t *testing.T) {
	expenses := []models.ExpenseRecord{
		expenseRec(100, models.ExpenseApproved, "Bravo"),
		expenseRec(100, models.ExpenseApproved, "Alpha"),
		expenseRec(300, models.ExpensePending, "Charlie"),
	}

	report := BuildReport(nil, expenses)

	got := make([]string, 0, len(report.ExpensesByCategory))
	for _, s := range report.ExpensesByCategory {
		got = append(got, s.Category)
	}
	// Largest first; ties break alphabetically.
	want := []string{"Charlie", "Alpha", "Bravo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category order = %v, want %v", got, want)
		}
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, nil)
	if report.TotalIncome != 0 || report.TotalExpenses != 0 || report.NetBalance != 0 {
		t.Fatalf("empty report has non-zero totals: %+v", report)
	}
	if len(report.IncomeByCategory) != 0 || len(report.ExpensesByCategory) != 0 {
		t.Fatalf("empty report has categories: %+v", report)
	}
}

func TestBuildReportNegativeNetBalance(t *testing.T) {
	income := []models.IncomeRecord{incomeRec(100, "Donations")}
	expenses := []models.ExpenseRecord{expenseRec(400, models.ExpenseApproved, "Rent")}

	report := BuildReport(income, expenses)
	if report.NetBalance != -300 {
		t.Fatalf("NetBalance = %v, want -300", report.NetBalance)
	}
}
