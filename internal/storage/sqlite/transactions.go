package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/storage"
)

// CreateTransaction persists a new transaction.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if tx.OccurredAt == 0 {
		tx.OccurredAt = now
	}
	if tx.CreatedAt == 0 {
		tx.CreatedAt = now
	}

	query := `
		INSERT INTO transactions (id, user_id, kind, amount, description, category, fixed, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		tx.UserID,
		string(tx.Kind),
		tx.Amount,
		tx.Description,
		tx.Category,
		boolToInt(tx.Fixed),
		tx.OccurredAt,
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListTransactions returns the user's transactions matching the filter,
// newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string, f storage.TransactionFilter) ([]models.Transaction, error) {
	where, args := transactionFilterClause(userID, f)

	query := `
		SELECT id, user_id, kind, amount, description, category, fixed, occurred_at, created_at
		FROM transactions
		WHERE ` + where + `
		ORDER BY occurred_at DESC, created_at DESC
	`
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var fixed int
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Kind,
			&tx.Amount,
			&tx.Description,
			&tx.Category,
			&fixed,
			&tx.OccurredAt,
			&tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Fixed = fixed != 0
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// SumTransactions returns the total amount of the user's transactions
// matching the filter.
func (s *SQLiteStore) SumTransactions(ctx context.Context, userID string, f storage.TransactionFilter) (float64, error) {
	where, args := transactionFilterClause(userID, f)

	var total float64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE "+where,
		args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return total, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, userID, txID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?",
		txID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("transaction not found: %s", txID)
	}

	return nil
}

// transactionFilterClause builds the WHERE clause shared by list and sum
// queries.
func transactionFilterClause(userID string, f storage.TransactionFilter) (string, []interface{}) {
	clauses := []string{"user_id = ?"}
	args := []interface{}{userID}

	if f.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.From > 0 {
		clauses = append(clauses, "occurred_at >= ?")
		args = append(args, f.From)
	}
	if f.To > 0 {
		clauses = append(clauses, "occurred_at <= ?")
		args = append(args, f.To)
	}

	return strings.Join(clauses, " AND "), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
