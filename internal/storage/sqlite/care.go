package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hz-solucoes/financas/internal/models"
)

// CreateCareTask persists a new daily-care routine.
func (s *SQLiteStore) CreateCareTask(ctx context.Context, task *models.CareTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO care_tasks (id, user_id, name, created_at)
		VALUES (?, ?, ?, ?)`,
		task.ID, task.UserID, task.Name, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create care task: %w", err)
	}

	return nil
}

// ListCareTasks returns the user's routines, oldest first.
func (s *SQLiteStore) ListCareTasks(ctx context.Context, userID string) ([]models.CareTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at
		FROM care_tasks
		WHERE user_id = ?
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list care tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.CareTask
	for rows.Next() {
		var task models.CareTask
		if err := rows.Scan(&task.ID, &task.UserID, &task.Name, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan care task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating care tasks: %w", err)
	}

	return tasks, nil
}

// UpsertCareLog records completion of a task for a day. The UNIQUE
// (task_id, day) constraint makes repeated logs idempotent.
func (s *SQLiteStore) UpsertCareLog(ctx context.Context, log *models.CareLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt == 0 {
		log.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO care_logs (id, user_id, task_id, day, done, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (task_id, day) DO UPDATE SET done = excluded.done`,
		log.ID, log.UserID, log.TaskID, log.Day, boolToInt(log.Done), log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert care log: %w", err)
	}

	return nil
}

// ListCareLogs returns the user's logs for a day.
func (s *SQLiteStore) ListCareLogs(ctx context.Context, userID, day string) ([]models.CareLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, task_id, day, done, created_at
		FROM care_logs
		WHERE user_id = ? AND day = ?
		ORDER BY created_at ASC`,
		userID, day,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list care logs: %w", err)
	}
	defer rows.Close()

	var logs []models.CareLog
	for rows.Next() {
		var log models.CareLog
		var done int
		if err := rows.Scan(&log.ID, &log.UserID, &log.TaskID, &log.Day, &done, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan care log: %w", err)
		}
		log.Done = done != 0
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating care logs: %w", err)
	}

	return logs, nil
}
