package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ongvang00/HealthManagementSystem/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	defer sqldb.Close()

	require.NoError(t, db.ApplyMigrations(sqldb))
	require.NoError(t, db.ApplyMigrations(sqldb))

	var count int
	require.NoError(t, sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, db.SchemaVersion(), count)

	for _, table := range []string{"export_runs", "calorie_intake", "exercise_activity", "sleep_records"} {
		var n int
		require.NoError(t, sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n))
		assert.Equal(t, 1, n, "table %s", table)
	}
}

func TestForeignKeysAreEnforced(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	defer sqldb.Close()
	require.NoError(t, db.ApplyMigrations(sqldb))

	_, err = sqldb.Exec(`INSERT INTO calorie_intake(run_id, username, food_item, calories, logged_on) VALUES('missing', 'alice', 'toast', 200, '2026-02-20')`)
	assert.Error(t, err, "rows must reference an export run")
}
