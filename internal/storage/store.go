// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/hz-solucoes/financas/internal/models"
)

// TransactionFilter narrows ListTransactions and SumTransactions queries.
// Zero values mean "no constraint".
type TransactionFilter struct {
	// Kind restricts to incomes or expenses.
	Kind models.TransactionKind

	// From and To bound OccurredAt (Unix seconds, inclusive).
	From int64
	To   int64

	// Limit caps the number of returned rows (newest first).
	Limit int
}

// Store defines the persistence operations used by the services and the
// chat interpreter. This abstraction allows swapping storage backends
// (SQLite, PostgreSQL, etc.) without changing the callers.
type Store interface {
	// CreateUser persists a new user. Phone and email are unique when
	// set; inserting a duplicate returns an error.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByPhone retrieves a user by messaging identifier.
	// Returns (nil, nil) when no user matches.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no user matches.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateTransaction persists a transaction. ID, OccurredAt and
	// CreatedAt are populated when unset.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactions returns the user's transactions matching the
	// filter, newest first.
	ListTransactions(ctx context.Context, userID string, f TransactionFilter) ([]models.Transaction, error)

	// SumTransactions returns the total amount of the user's
	// transactions matching the filter.
	SumTransactions(ctx context.Context, userID string, f TransactionFilter) (float64, error)

	// DeleteTransaction removes one of the user's transactions.
	// Deleting another user's transaction is an error.
	DeleteTransaction(ctx context.Context, userID, txID string) error

	// CreateGoal persists a savings goal.
	CreateGoal(ctx context.Context, goal *models.SavingsGoal) error

	// ListGoals returns the user's savings goals, oldest first.
	ListGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error)

	// AddContribution increases a goal's saved amount and returns the
	// updated goal.
	AddContribution(ctx context.Context, userID, goalID string, amount float64) (*models.SavingsGoal, error)

	// DeleteGoal removes one of the user's goals.
	DeleteGoal(ctx context.Context, userID, goalID string) error

	// CreateShoppingItem persists a shopping-list entry.
	CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error

	// ListShoppingItems returns the user's shopping list, oldest first.
	ListShoppingItems(ctx context.Context, userID string) ([]models.ShoppingItem, error)

	// SetShoppingItemStatus flips an item between pending and bought.
	SetShoppingItemStatus(ctx context.Context, userID, itemID string, status models.ItemStatus) error

	// DeleteShoppingItem removes one of the user's items.
	DeleteShoppingItem(ctx context.Context, userID, itemID string) error

	// CreateCareTask persists a daily-care routine.
	CreateCareTask(ctx context.Context, task *models.CareTask) error

	// ListCareTasks returns the user's routines, oldest first.
	ListCareTasks(ctx context.Context, userID string) ([]models.CareTask, error)

	// UpsertCareLog records completion of a task for a day, replacing
	// any previous log for the same (task, day).
	UpsertCareLog(ctx context.Context, log *models.CareLog) error

	// ListCareLogs returns the user's logs for a day ("2006-01-02").
	ListCareLogs(ctx context.Context, userID, day string) ([]models.CareLog, error)

	// CreateWaterIntake persists a water-intake entry.
	CreateWaterIntake(ctx context.Context, intake *models.WaterIntake) error

	// SumWaterIntake returns the total volume logged by the user in the
	// Unix-second window [from, to].
	SumWaterIntake(ctx context.Context, userID string, from, to int64) (float64, error)

	// CreateAccount persists a bank account.
	CreateAccount(ctx context.Context, account *models.Account) error

	// ListAccounts returns the user's accounts, oldest first.
	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)

	// UpdateAccountBalance sets an account's balance and returns the
	// updated account.
	UpdateAccountBalance(ctx context.Context, userID, accountID string, balance float64) (*models.Account, error)

	// Close releases any resources held by the store.
	Close() error
}
