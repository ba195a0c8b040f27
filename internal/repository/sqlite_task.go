package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
)

const taskColumns = `id, project_id, name, price, hours, completed, position, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo on a SQLite connection or transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Name,
		t.Price,
		t.Hours,
		boolToInt(t.Completed),
		t.Position,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var completed int
		var createdAt, updatedAt string
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Name, &t.Price, &t.Hours,
			&completed, &t.Position, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Completed = intToBool(completed)
		t.CreatedAt = parseTime(createdAt)
		t.UpdatedAt = parseTime(updatedAt)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) ReplaceForProject(ctx context.Context, projectID string, tasks []domain.Task) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	for i := range tasks {
		t := tasks[i]
		t.ProjectID = projectID
		t.Position = i
		if err := r.Create(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("deleting task %s: %w", id, ErrNotFound)
	}
	return nil
}
