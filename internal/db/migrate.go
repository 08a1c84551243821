package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillTaskCounts(db); err != nil {
		return fmt.Errorf("backfilling brain dump task counts: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS brain_dumps (
		id          TEXT PRIMARY KEY,
		raw_text    TEXT NOT NULL,
		capacity    TEXT CHECK(capacity IS NULL OR capacity IN ('light','medium','full')),
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		dump_id          TEXT REFERENCES brain_dumps(id) ON DELETE SET NULL,
		position         INTEGER NOT NULL DEFAULT 0,
		title            TEXT NOT NULL,
		duration_minutes REAL NOT NULL CHECK(duration_minutes > 0),
		color            TEXT NOT NULL
		                 CHECK(color IN ('blue','coral','green','orange','purple')),
		reasoning        TEXT NOT NULL DEFAULT '',
		completed        INTEGER NOT NULL DEFAULT 0,
		completed_at     TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_dump ON tasks(dump_id)`,
	`CREATE INDEX IF NOT EXISTS idx_brain_dumps_created ON brain_dumps(created_at)`,

	// Added after the first release.
	`ALTER TABLE brain_dumps ADD COLUMN task_count INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE brain_dumps ADD COLUMN provider TEXT NOT NULL DEFAULT ''`,
}

// migrateBackfillTaskCounts fills task_count for dumps recorded before the
// column existed. Dumps whose tasks were all removed keep a count of 0.
func migrateBackfillTaskCounts(db *sql.DB) error {
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `
		UPDATE brain_dumps
		SET task_count = (SELECT COUNT(*) FROM tasks WHERE tasks.dump_id = brain_dumps.id)
		WHERE task_count = 0`)
	if err != nil {
		return fmt.Errorf("updating task_count: %w", err)
	}
	return nil
}
