package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Safe to re-run: every statement is
// either IF NOT EXISTS or a tolerated ALTER TABLE.
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
	return nil
}

var migrations = []string{
	// Table name and column set are frozen so an existing
	// applications.db keeps working across upgrades.
	`CREATE TABLE IF NOT EXISTS applications (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		child_name      TEXT NOT NULL,
		child_age_range TEXT NOT NULL,
		parent_name     TEXT NOT NULL,
		parent_phone    TEXT NOT NULL,
		created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_applications_created ON applications(created_at)`,
}
