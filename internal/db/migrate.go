package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent and re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		client       TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		total_budget INTEGER NOT NULL DEFAULT 0 CHECK(total_budget >= 0),
		status       TEXT NOT NULL DEFAULT 'active'
		             CHECK(status IN ('active','completed','paused')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		price      INTEGER NOT NULL DEFAULT 0 CHECK(price >= 0),
		hours      INTEGER NOT NULL DEFAULT 0 CHECK(hours >= 0),
		completed  INTEGER NOT NULL DEFAULT 0,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project_position
		ON tasks(project_id, position)`,

	`CREATE TABLE IF NOT EXISTS goal_awards (
		goal_id     TEXT PRIMARY KEY,
		achieved_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
