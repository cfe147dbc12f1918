package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hz-solucoes/financas/internal/models"
)

// CreateAccount persists a new bank account.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, user_id, name, balance, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		account.ID, account.UserID, account.Name, account.Balance, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// ListAccounts returns the user's accounts, oldest first.
func (s *SQLiteStore) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, balance, created_at
		FROM accounts
		WHERE user_id = ?
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// UpdateAccountBalance sets an account's balance and returns the
// updated account.
func (s *SQLiteStore) UpdateAccountBalance(ctx context.Context, userID, accountID string, balance float64) (*models.Account, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET balance = ? WHERE id = ? AND user_id = ?",
		balance, accountID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update account balance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update account balance: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("account not found: %s", accountID)
	}

	a := &models.Account{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, balance, created_at
		FROM accounts WHERE id = ?`,
		accountID,
	).Scan(&a.ID, &a.UserID, &a.Name, &a.Balance, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found: %s", accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated account: %w", err)
	}

	return a, nil
}
