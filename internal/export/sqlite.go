// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS manufacturers (
		id TEXT PRIMARY KEY,
		bank INTEGER NOT NULL,
		code INTEGER NOT NULL,
		name TEXT NOT NULL,
		enabled INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_manufacturers_name ON manufacturers(name)`,
	`CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// WriteSQLite stores doc in the SQLite database at path, replacing any
// manufacturers table contents from an earlier export.
func WriteSQLite(path string, doc Document) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM manufacturers`); err != nil {
		return fmt.Errorf("clearing manufacturers: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO manufacturers (id, bank, code, name, enabled) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range doc.Manufacturers {
		if _, err := stmt.Exec(r.ID, r.Bank, r.Code, r.Name, r.Enabled); err != nil {
			return fmt.Errorf("inserting %s: %w", r.ID, err)
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO metadata (key, value) VALUES ('source', ?)`, doc.Source); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}
