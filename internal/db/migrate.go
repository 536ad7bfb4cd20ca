package db

import (
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
	return nil
}

// migrations holds the full schema. Indexed columns carry the fields the
// list and lookup queries filter or sort on; the plan itself is stored as
// a JSON document since it is only ever read back whole.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id             TEXT PRIMARY KEY,
		destination    TEXT NOT NULL,
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		duration_days  INTEGER NOT NULL,
		travelers      INTEGER NOT NULL,
		budget         REAL NOT NULL,
		total_cost     REAL NOT NULL,
		budget_status  TEXT NOT NULL CHECK(budget_status IN ('within_budget','over_budget')),
		plan_json      TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_destination ON trips(destination)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_created_at ON trips(created_at)`,
}
