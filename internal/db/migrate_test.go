package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'applications'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "applications", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; re-running must not fail or wipe data.
	_, err = database.Exec(
		`INSERT INTO applications (child_name, child_age_range, parent_name, parent_phone)
		 VALUES ('Anna', '6-8', 'Olga', '+100000')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&count))
	assert.Equal(t, 1, count)
}
