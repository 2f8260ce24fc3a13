package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 2

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
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

	migrations := []struct {
		version int
		stmts   []string
	}{
		{1, migrationV1},
		{2, migrationV2},
	}
	for _, m := range migrations {
		if version >= m.version {
			continue
		}
		if err := db.apply(m.version, m.stmts); err != nil {
			return fmt.Errorf("migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// migrationV1 stores raw samples as recorded or imported.
var migrationV1 = []string{
	`CREATE TABLE IF NOT EXISTS samples (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		kind       TEXT NOT NULL,
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		value      REAL NOT NULL,
		source     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_samples_kind_start ON samples(kind, start_at)`,
}

// migrationV2 keeps a history of computed daily scores.
var migrationV2 = []string{
	`CREATE TABLE IF NOT EXISTS daily_scores (
		id             TEXT PRIMARY KEY,
		day            TEXT NOT NULL UNIQUE,
		sleep_hours    REAL NOT NULL,
		resting_hr     REAL NOT NULL,
		hrv            REAL NOT NULL,
		activity_load  REAL NOT NULL,
		recovery_score REAL NOT NULL,
		status         TEXT NOT NULL,
		saved_at       TEXT NOT NULL
	)`,
}

func (db *DB) apply(version int, statements []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:min(len(stmt), 40)], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}

	return tx.Commit()
}
