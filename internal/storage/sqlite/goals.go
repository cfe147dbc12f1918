package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hz-solucoes/financas/internal/models"
)

// CreateGoal persists a new savings goal.
func (s *SQLiteStore) CreateGoal(ctx context.Context, goal *models.SavingsGoal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	if goal.CreatedAt == 0 {
		goal.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO savings_goals (id, user_id, name, target, saved, deadline, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.UserID, goal.Name, goal.Target, goal.Saved, goal.Deadline, goal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

// ListGoals returns the user's savings goals, oldest first.
func (s *SQLiteStore) ListGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, target, saved, deadline, created_at
		FROM savings_goals
		WHERE user_id = ?
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Target, &g.Saved, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// AddContribution increases a goal's saved amount and returns the
// updated goal.
func (s *SQLiteStore) AddContribution(ctx context.Context, userID, goalID string, amount float64) (*models.SavingsGoal, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE savings_goals SET saved = saved + ? WHERE id = ? AND user_id = ?",
		amount, goalID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("goal not found: %s", goalID)
	}

	g := &models.SavingsGoal{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, target, saved, deadline, created_at
		FROM savings_goals WHERE id = ?`,
		goalID,
	).Scan(&g.ID, &g.UserID, &g.Name, &g.Target, &g.Saved, &g.Deadline, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal not found: %s", goalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated goal: %w", err)
	}

	return g, nil
}

// DeleteGoal removes one of the user's goals.
func (s *SQLiteStore) DeleteGoal(ctx context.Context, userID, goalID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM savings_goals WHERE id = ? AND user_id = ?",
		goalID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal not found: %s", goalID)
	}

	return nil
}
