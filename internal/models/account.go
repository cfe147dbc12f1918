package models

// Account is a bank account with a tracked balance.
type Account struct {
	// ID is the unique identifier (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Name is the display name (e.g. "Nubank", "Carteira").
	Name string

	// Balance is the current balance. May be negative.
	Balance float64

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
