package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hz-solucoes/financas/internal/models"
)

// CreateWaterIntake persists a new water-intake entry.
func (s *SQLiteStore) CreateWaterIntake(ctx context.Context, intake *models.WaterIntake) error {
	if intake.ID == "" {
		intake.ID = uuid.New().String()
	}
	if intake.CreatedAt == 0 {
		intake.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO water_intake (id, user_id, amount, created_at)
		VALUES (?, ?, ?, ?)`,
		intake.ID, intake.UserID, intake.Amount, intake.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create water intake: %w", err)
	}

	return nil
}

// SumWaterIntake returns the total volume logged in [from, to].
func (s *SQLiteStore) SumWaterIntake(ctx context.Context, userID string, from, to int64) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM water_intake
		WHERE user_id = ? AND created_at >= ? AND created_at <= ?`,
		userID, from, to,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum water intake: %w", err)
	}

	return total, nil
}
