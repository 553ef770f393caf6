package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS quotes (
		id         TEXT PRIMARY KEY,
		distance   INTEGER NOT NULL CHECK(distance >= 0),
		repayment  INTEGER NOT NULL CHECK(repayment > 0),
		language   TEXT NOT NULL CHECK(language IN ('en','ur')),
		band       TEXT NOT NULL DEFAULT ''
		           CHECK(band IN ('','floor','linear','ceiling')),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quotes_created ON quotes(created_at)`,
}
