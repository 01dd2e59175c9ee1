package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// expectedSchemaVersion is the latest schema version the application
// expects. Failing to reach it is fatal for the store.
const expectedSchemaVersion = 2

// migration represents a database schema migration.
type migration struct {
	up          func(*sql.Tx) error
	description string
	version     int
}

var migrations = []migration{
	{
		version:     1,
		description: "Initial schema",
		up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS sources (
					id TEXT PRIMARY KEY,
					document_id TEXT NOT NULL,
					file_name TEXT,
					ingested_at DATETIME NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE UNIQUE INDEX idx_sources_document ON sources(document_id)`,
				`CREATE TABLE IF NOT EXISTS material_records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					source_id TEXT NOT NULL REFERENCES sources(id) ON DELETE CASCADE,
					material_code TEXT NOT NULL,
					description TEXT,
					category TEXT NOT NULL,
					qty INTEGER NOT NULL,
					remarks TEXT,
					ship_name TEXT
				)`,
				`CREATE INDEX idx_material_source ON material_records(source_id)`,
				`CREATE TABLE IF NOT EXISTS serial_records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					source_id TEXT NOT NULL REFERENCES sources(id) ON DELETE CASCADE,
					material_code TEXT NOT NULL,
					description TEXT,
					barcode TEXT,
					location TEXT,
					bin_code TEXT,
					ship_to_name TEXT,
					ship_to_address TEXT,
					sold_to TEXT,
					document_id TEXT
				)`,
				`CREATE INDEX idx_serial_source ON serial_records(source_id)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("failed to execute %q: %w", q[:40], err)
				}
			}
			return nil
		},
	},
	{
		version:     2,
		description: "Material master for descriptor lookup",
		up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS descriptors (
				code TEXT PRIMARY KEY,
				description TEXT NOT NULL,
				category TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`)
			if err != nil {
				return fmt.Errorf("failed to create descriptors table: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if current.Valid && int64(m.version) <= current.Int64 {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		if err := m.up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.description, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}

		slog.Debug("Applied migration",
			"version", m.version,
			"description", m.description)
	}

	var final sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&final); err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if !final.Valid || final.Int64 != expectedSchemaVersion {
		return fmt.Errorf("schema at version %d, expected %d", final.Int64, expectedSchemaVersion)
	}

	return nil
}
