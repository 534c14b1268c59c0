package db

import (
	"database/sql"
	"errors"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "snapshot_schema",
		sql: `
CREATE TABLE IF NOT EXISTS export_runs (
  id TEXT PRIMARY KEY,
  exported_at DATETIME NOT NULL,
  source_dir TEXT NOT NULL,
  username_filter TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS calorie_intake (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id TEXT NOT NULL REFERENCES export_runs(id) ON DELETE CASCADE,
  username TEXT NOT NULL,
  food_item TEXT NOT NULL,
  calories INTEGER NOT NULL,
  logged_on TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_activity (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id TEXT NOT NULL REFERENCES export_runs(id) ON DELETE CASCADE,
  username TEXT NOT NULL,
  exercise_type TEXT NOT NULL,
  duration_min INTEGER NOT NULL,
  calories_burned INTEGER NOT NULL,
  logged_on TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sleep_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id TEXT NOT NULL REFERENCES export_runs(id) ON DELETE CASCADE,
  username TEXT NOT NULL,
  sleep_start TEXT NOT NULL,
  sleep_end TEXT NOT NULL,
  logged_on TEXT NOT NULL
);
`,
	},
	{
		version: 2,
		name:    "username_indexes",
		sql: `
CREATE INDEX IF NOT EXISTS idx_calorie_intake_user ON calorie_intake(run_id, username, logged_on);
CREATE INDEX IF NOT EXISTS idx_exercise_activity_user ON exercise_activity(run_id, username, logged_on);
CREATE INDEX IF NOT EXISTS idx_sleep_records_user ON sleep_records(run_id, username, logged_on);
`,
	},
}

// SchemaVersion is the highest migration version.
func SchemaVersion() int {
	return migrations[len(migrations)-1].version
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}
	return nil
}
