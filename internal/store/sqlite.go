// Package store provides the SQLite-backed session store: registered
// sources survive across CLI invocations and the material master doubles
// as the descriptor-lookup collaborator.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harborops/consign/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.SessionStore and service.DescriptorLookup.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

var (
	_ service.SessionStore     = (*SQLiteStore)(nil)
	_ service.DescriptorLookup = (*SQLiteStore)(nil)
)

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
