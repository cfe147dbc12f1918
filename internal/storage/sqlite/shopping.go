package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hz-solucoes/financas/internal/models"
)

// CreateShoppingItem persists a new shopping-list entry.
func (s *SQLiteStore) CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shopping_items (id, user_id, name, status, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.Name, string(item.Status), item.Price, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create shopping item: %w", err)
	}

	return nil
}

// ListShoppingItems returns the user's shopping list, oldest first.
func (s *SQLiteStore) ListShoppingItems(ctx context.Context, userID string) ([]models.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, status, price, created_at
		FROM shopping_items
		WHERE user_id = ?
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	var items []models.ShoppingItem
	for rows.Next() {
		var item models.ShoppingItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Status, &item.Price, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopping items: %w", err)
	}

	return items, nil
}

// SetShoppingItemStatus flips an item between pending and bought.
func (s *SQLiteStore) SetShoppingItemStatus(ctx context.Context, userID, itemID string, status models.ItemStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE shopping_items SET status = ? WHERE id = ? AND user_id = ?",
		string(status), itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("shopping item not found: %s", itemID)
	}

	return nil
}

// DeleteShoppingItem removes one of the user's items.
func (s *SQLiteStore) DeleteShoppingItem(ctx context.Context, userID, itemID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM shopping_items WHERE id = ? AND user_id = ?",
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("shopping item not found: %s", itemID)
	}

	return nil
}
