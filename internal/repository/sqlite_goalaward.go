package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/matteobrandi/traccia/internal/db"
)

// SQLiteGoalAwardRepo persists which goals have already been celebrated,
// so a goal never fires twice even across restarts.
type SQLiteGoalAwardRepo struct {
	db db.DBTX
}

// NewSQLiteGoalAwardRepo creates a new SQLiteGoalAwardRepo.
func NewSQLiteGoalAwardRepo(conn db.DBTX) *SQLiteGoalAwardRepo {
	return &SQLiteGoalAwardRepo{db: conn}
}

func (r *SQLiteGoalAwardRepo) Record(ctx context.Context, goalID string, at time.Time) error {
	query := `INSERT INTO goal_awards (goal_id, achieved_at) VALUES (?, ?)
		ON CONFLICT(goal_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, goalID, at.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording goal award: %w", err)
	}
	return nil
}

func (r *SQLiteGoalAwardRepo) ListAwarded(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT goal_id FROM goal_awards ORDER BY achieved_at`)
	if err != nil {
		return nil, fmt.Errorf("listing goal awards: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning goal award: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal awards: %w", err)
	}
	return ids, nil
}
