// Package reports provides pure aggregation helpers shared by the chat
// interpreter and the RPC services.
package reports

import (
	"time"

	"github.com/hz-solucoes/financas/internal/models"
)

// MonthlySummary aggregates one calendar month of transactions.
type MonthlySummary struct {
	Income  float64
	Expense float64
	// Balance is Income - Expense; negative when the month is in the red.
	Balance float64
	// ByCategory breaks the expense total down by category label.
	ByCategory map[string]float64
	// FixedExpense is the portion of Expense flagged as recurring.
	FixedExpense float64
}

// Summarize computes totals over the given transactions. Callers are
// expected to pass transactions already filtered to one user and one
// month window.
func Summarize(txs []models.Transaction) MonthlySummary {
	summary := MonthlySummary{
		ByCategory: make(map[string]float64),
	}

	for _, tx := range txs {
		switch tx.Kind {
		case models.KindIncome:
			summary.Income += tx.Amount
		case models.KindExpense:
			summary.Expense += tx.Amount
			summary.ByCategory[tx.Category] += tx.Amount
			if tx.Fixed {
				summary.FixedExpense += tx.Amount
			}
		}
	}

	summary.Balance = summary.Income - summary.Expense
	return summary
}

// MonthWindow returns the first and last instant of t's calendar month
// in t's location, as inclusive Unix-second bounds.
func MonthWindow(t time.Time) (from, to int64) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Second)
	return first.Unix(), last.Unix()
}

// DayWindow returns the first and last instant of t's calendar day in
// t's location, as inclusive Unix-second bounds.
func DayWindow(t time.Time) (from, to int64) {
	first := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 0, 1).Add(-time.Second)
	return first.Unix(), last.Unix()
}

// Day formats t as the care-log day key ("2006-01-02").
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}
