package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so
// Migrate may run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// slot pins the table to a single row.
	`CREATE TABLE IF NOT EXISTS baby_profile (
		slot       INTEGER PRIMARY KEY CHECK(slot = 1),
		id         TEXT NOT NULL,
		name       TEXT NOT NULL,
		dob        TEXT NOT NULL,
		height_cm  TEXT NOT NULL,
		weight_kg  TEXT NOT NULL,
		gender     TEXT NOT NULL CHECK(gender IN ('male','female')),
		updated_at TEXT NOT NULL
	)`,

	`INSERT INTO baby_profile (slot, id, name, dob, height_cm, weight_kg, gender, updated_at)
		SELECT 1, 'baby_01', 'Tít', '2023-09-15', '65', '7.2', 'male', strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE NOT EXISTS (SELECT 1 FROM baby_profile)`,

	// seq records insertion order; listing is newest-inserted first.
	// created_day is the calendar date of created_at in its own offset.
	`CREATE TABLE IF NOT EXISTS activity_records (
		seq              INTEGER PRIMARY KEY AUTOINCREMENT,
		id               TEXT NOT NULL UNIQUE,
		baby_id          TEXT NOT NULL,
		type             TEXT NOT NULL CHECK(type IN ('pumping','feeding','sleep')),
		created_at       TEXT NOT NULL,
		created_day      TEXT NOT NULL,
		note             TEXT NOT NULL DEFAULT '',
		side             TEXT CHECK(side IN ('left','right','both')),
		volume_total     INTEGER CHECK(volume_total >= 0),
		feed_type        TEXT CHECK(feed_type IN ('formula','breast')),
		amount_ml        INTEGER CHECK(amount_ml >= 0),
		start_time       TEXT,
		end_time         TEXT,
		duration_minutes INTEGER CHECK(duration_minutes >= 0),
		CHECK (
			(type = 'pumping' AND side IS NOT NULL AND volume_total IS NOT NULL
				AND feed_type IS NULL AND amount_ml IS NULL
				AND start_time IS NULL AND duration_minutes IS NULL) OR
			(type = 'feeding' AND feed_type IS NOT NULL AND amount_ml IS NOT NULL
				AND side IS NULL AND volume_total IS NULL
				AND start_time IS NULL AND duration_minutes IS NULL) OR
			(type = 'sleep' AND start_time IS NOT NULL AND duration_minutes IS NOT NULL
				AND side IS NULL AND volume_total IS NULL
				AND feed_type IS NULL AND amount_ml IS NULL)
		)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_created_day ON activity_records(created_day)`,
	`CREATE INDEX IF NOT EXISTS idx_records_type ON activity_records(type)`,
}
