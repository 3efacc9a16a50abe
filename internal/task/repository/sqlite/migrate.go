package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion gates the one-time upgrade via PRAGMA user_version.
const schemaVersion = 1

// schemaStatements create the tasks table and its secondary indexes. Every
// statement is IF NOT EXISTS so re-running on a partially upgraded store is
// a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		text        TEXT    NOT NULL,
		category    TEXT    NOT NULL DEFAULT 'General',
		priority    TEXT    NOT NULL DEFAULT 'medium',
		due_date    TEXT    NOT NULL DEFAULT '',
		due_date_ts INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_text ON tasks(text)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks(priority)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date_ts ON tasks(due_date_ts)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed)`,
}

// migrate applies the schema upgrade exactly once per version.
func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	// PRAGMA does not support placeholders.
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("bumping schema version: %w", err)
	}
	return nil
}
