package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB is an open handle on one email dataset file.
type DB struct {
	*sql.DB
	Path string
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create dataset directory: %w", err)
	}

	// Pragmas go in the DSN so they apply to every connection the driver opens
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	// A dataset is bound to a single connection; statements serialize on it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to dataset: %w", err)
	}

	return &DB{DB: db, Path: dbPath}, nil
}

// EnsureSchema creates the dataset tables if they are missing. It never alters
// existing tables.
func (db *DB) EnsureSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS EMAIL (
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			PARENT_ID INTEGER REFERENCES EMAIL(ID) ON DELETE SET NULL,
			MESSAGE_ID TEXT NOT NULL UNIQUE,
			SUBJECT TEXT NOT NULL DEFAULT '',
			IN_REPLY_TO TEXT,
			SENT_FROM TEXT NOT NULL DEFAULT '',
			DATE DATETIME NOT NULL,
			BODY TEXT NOT NULL DEFAULT '',
			HIDDEN BOOLEAN NOT NULL DEFAULT FALSE
		)`,

		`CREATE TABLE IF NOT EXISTS TAG (
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			NAME TEXT NOT NULL UNIQUE,
			DESCRIPTION TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS EMAIL_TAG (
			MESSAGE_ID TEXT NOT NULL REFERENCES EMAIL(MESSAGE_ID) ON DELETE CASCADE,
			TAG_ID INTEGER NOT NULL REFERENCES TAG(ID) ON DELETE CASCADE,
			PRIMARY KEY (MESSAGE_ID, TAG_ID)
		)`,

		`CREATE TABLE IF NOT EXISTS MUTATION (
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			DESCRIPTION TEXT NOT NULL,
			PERFORMED_AT DATETIME NOT NULL,
			AFFECTED_EMAIL_COUNT INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS MUTATION_EMAIL (
			MUTATION_ID INTEGER NOT NULL REFERENCES MUTATION(ID) ON DELETE CASCADE,
			MESSAGE_ID TEXT NOT NULL REFERENCES EMAIL(MESSAGE_ID) ON DELETE CASCADE,
			PRIMARY KEY (MUTATION_ID, MESSAGE_ID)
		)`,

		// Indexes for thread traversal and tag lookups
		`CREATE INDEX IF NOT EXISTS idx_email_parent ON EMAIL(PARENT_ID)`,
		`CREATE INDEX IF NOT EXISTS idx_email_hidden ON EMAIL(HIDDEN) WHERE HIDDEN = TRUE`,
		`CREATE INDEX IF NOT EXISTS idx_email_tag_tag ON EMAIL_TAG(TAG_ID)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
