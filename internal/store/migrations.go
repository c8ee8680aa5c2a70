package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		// A single-row profile: streaks and overall tracking tenure.
		`CREATE TABLE IF NOT EXISTS profile (
			id              INTEGER PRIMARY KEY CHECK (id = 1),
			name            TEXT NOT NULL DEFAULT '',
			start_date      TEXT NOT NULL,
			current_streak  INTEGER NOT NULL DEFAULT 0,
			longest_streak  INTEGER NOT NULL DEFAULT 0,
			total_days      INTEGER NOT NULL DEFAULT 0,
			last_tracked_at TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_goals (
			category TEXT PRIMARY KEY,
			goal     REAL NOT NULL
		)`,

		// One row per calendar date. Energy columns use 0 for "not
		// recorded"; hour-based categories store minutes.
		`CREATE TABLE IF NOT EXISTS daily_records (
			date              TEXT PRIMARY KEY,
			job_apps          INTEGER NOT NULL DEFAULT 0,
			workout           BOOLEAN NOT NULL DEFAULT false,
			reading_pages     INTEGER NOT NULL DEFAULT 0,
			social_connection BOOLEAN NOT NULL DEFAULT false,
			skills_minutes    INTEGER NOT NULL DEFAULT 0,
			creative_minutes  INTEGER NOT NULL DEFAULT 0,
			energy_predicted  INTEGER NOT NULL DEFAULT 0,
			energy_actual     INTEGER NOT NULL DEFAULT 0,
			mood              TEXT NOT NULL DEFAULT '',
			intention         TEXT NOT NULL DEFAULT '',
			day_type          TEXT NOT NULL DEFAULT '',
			reflection        TEXT NOT NULL DEFAULT '',
			updated_at        TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_daily_records_updated ON daily_records(updated_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
