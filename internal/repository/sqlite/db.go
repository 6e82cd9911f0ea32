package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/clinicscribe/scribe-api/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient TEXT NOT NULL,
	visit_number INTEGER NOT NULL,
	doctor TEXT NOT NULL,
	date TEXT NOT NULL,
	transcript TEXT NOT NULL,
	summary TEXT NOT NULL,
	diseases TEXT NOT NULL DEFAULT '',
	UNIQUE(patient, visit_number)
);
`

// NewDB opens (creating if needed) the sqlite database and ensures the
// schema exists. The returned handle is owned by the caller and closed
// at shutdown.
func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// modernc sqlite handles are not safe for concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
