package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_BackfillsTaskCount simulates a database created
// before brain_dumps carried task_count and provider.
func TestMigrate_UpgradePath_BackfillsTaskCount(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE brain_dumps (
			id TEXT PRIMARY KEY, raw_text TEXT NOT NULL, capacity TEXT, created_at TEXT NOT NULL
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			dump_id TEXT REFERENCES brain_dumps(id) ON DELETE SET NULL,
			position INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL,
			duration_minutes REAL NOT NULL,
			color TEXT NOT NULL,
			reasoning TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,
			completed_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`INSERT INTO brain_dumps (id, raw_text, created_at) VALUES ('d1', 'a; b', '2025-01-01T00:00:00Z')`,
		`INSERT INTO brain_dumps (id, raw_text, created_at) VALUES ('d2', 'nothing', '2025-01-02T00:00:00Z')`,
		`INSERT INTO tasks (id, dump_id, title, duration_minutes, color, created_at, updated_at)
			VALUES ('t1', 'd1', 'A', 10, 'blue', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`,
		`INSERT INTO tasks (id, dump_id, title, duration_minutes, color, created_at, updated_at)
			VALUES ('t2', 'd1', 'B', 10, 'coral', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var count int
	var provider string
	require.NoError(t, db.QueryRow(`SELECT task_count, provider FROM brain_dumps WHERE id = 'd1'`).Scan(&count, &provider))
	assert.Equal(t, 2, count)
	assert.Equal(t, "", provider)

	require.NoError(t, db.QueryRow(`SELECT task_count FROM brain_dumps WHERE id = 'd2'`).Scan(&count))
	assert.Equal(t, 0, count)

	_, err = db.Exec(`SELECT 1 FROM kv LIMIT 1`)
	assert.NoError(t, err, "kv table should be created on upgrade")
}
