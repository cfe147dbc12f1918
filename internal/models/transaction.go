package models

// TransactionKind distinguishes incomes from expenses.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is a single money movement.
type Transaction struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Kind is "income" or "expense".
	Kind TransactionKind

	// Amount is the positive monetary value.
	Amount float64

	// Description is free text; defaults to "Sem descrição" for chat
	// entries without one.
	Description string

	// Category is the expense category label. Always empty for incomes.
	Category string

	// Fixed marks a recurring monthly transaction. Used only for
	// reporting aggregation, not scheduling.
	Fixed bool

	// OccurredAt is the Unix timestamp of the transaction itself.
	OccurredAt int64

	// CreatedAt is the Unix timestamp when the record was stored.
	CreatedAt int64
}
