package reports

import (
	"testing"
	"time"

	"github.com/hz-solucoes/financas/internal/models"
)

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		{Kind: models.KindIncome, Amount: 3000},
		{Kind: models.KindIncome, Amount: 500},
		{Kind: models.KindExpense, Amount: 800, Category: "Alimentação"},
		{Kind: models.KindExpense, Amount: 200, Category: "Alimentação"},
		{Kind: models.KindExpense, Amount: 150, Category: "Contas", Fixed: true},
	}

	summary := Summarize(txs)

	if summary.Income != 3500 {
		t.Errorf("Income = %v, want 3500", summary.Income)
	}
	if summary.Expense != 1150 {
		t.Errorf("Expense = %v, want 1150", summary.Expense)
	}
	if summary.Balance != 2350 {
		t.Errorf("Balance = %v, want 2350", summary.Balance)
	}
	if summary.FixedExpense != 150 {
		t.Errorf("FixedExpense = %v, want 150", summary.FixedExpense)
	}
	if summary.ByCategory["Alimentação"] != 1000 {
		t.Errorf("ByCategory[Alimentação] = %v, want 1000", summary.ByCategory["Alimentação"])
	}
	if summary.ByCategory["Contas"] != 150 {
		t.Errorf("ByCategory[Contas] = %v, want 150", summary.ByCategory["Contas"])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Income != 0 || summary.Expense != 0 || summary.Balance != 0 {
		t.Errorf("empty summary = %+v, want zeroes", summary)
	}
	if summary.ByCategory == nil {
		t.Error("ByCategory should be initialized even with no transactions")
	}
}

func TestMonthWindow(t *testing.T) {
	// Mid-February of a leap year.
	ref := time.Date(2024, time.February, 15, 13, 45, 0, 0, time.UTC)
	from, to := MonthWindow(ref)

	wantFrom := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Unix()
	wantTo := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC).Unix()

	if from != wantFrom {
		t.Errorf("from = %d, want %d", from, wantFrom)
	}
	if to != wantTo {
		t.Errorf("to = %d, want %d", to, wantTo)
	}
}

func TestDayWindow(t *testing.T) {
	ref := time.Date(2026, time.September, 1, 18, 30, 0, 0, time.UTC)
	from, to := DayWindow(ref)

	if got := to - from; got != 86399 {
		t.Errorf("window span = %d seconds, want 86399", got)
	}
	if from != time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC).Unix() {
		t.Errorf("from = %d, not midnight", from)
	}
}

func TestDay(t *testing.T) {
	ref := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC)
	if got := Day(ref); got != "2026-09-01" {
		t.Errorf("Day = %q, want 2026-09-01", got)
	}
}
