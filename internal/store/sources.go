package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/harborops/consign/internal/common"
	"github.com/harborops/consign/internal/model"
	"github.com/mattn/go-sqlite3"
)

// SaveSource persists one source and all of its rows atomically.
func (s *SQLiteStore) SaveSource(ctx context.Context, source *model.Source) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSource(source); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sources (id, document_id, file_name, ingested_at) VALUES (?, ?, ?, ?)`,
		source.ID, source.DocumentID, source.FileName, source.IngestedAt,
	); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: document %s", common.ErrDuplicateEntry, source.DocumentID)
		}
		return fmt.Errorf("failed to insert source %s: %w", source.DocumentID, err)
	}

	for _, m := range source.Materials {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO material_records (source_id, material_code, description, category, qty, remarks, ship_name)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			source.ID, m.MaterialCode, m.Description, string(m.Category), m.Qty, m.Remarks, m.ShipName,
		); err != nil {
			return fmt.Errorf("failed to insert material row: %w", err)
		}
	}

	for _, sr := range source.Serials {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO serial_records (source_id, material_code, description, barcode, location, bin_code, ship_to_name, ship_to_address, sold_to, document_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			source.ID, sr.MaterialCode, sr.Description, sr.Barcode, sr.Location, sr.BinCode,
			sr.ShipToName, sr.ShipToAddress, sr.SoldTo, sr.DocumentID,
		); err != nil {
			return fmt.Errorf("failed to insert serial row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit source: %w", err)
	}
	return nil
}

// ListSources loads every persisted source in registration order, rows
// included, ready for registry rehydration.
func (s *SQLiteStore) ListSources(ctx context.Context) ([]*model.Source, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, file_name, ingested_at FROM sources ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sources []*model.Source
	for rows.Next() {
		var src model.Source
		if err := rows.Scan(&src.ID, &src.DocumentID, &src.FileName, &src.IngestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, &src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sources: %w", err)
	}

	for _, src := range sources {
		if src.Materials, err = s.loadMaterials(ctx, src.ID); err != nil {
			return nil, err
		}
		if src.Serials, err = s.loadSerials(ctx, src.ID); err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// DeleteSource removes a source; its rows cascade.
func (s *SQLiteStore) DeleteSource(ctx context.Context, sourceID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sourceID, "sourceID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM sources WHERE id = ?`, sourceID)
	if err != nil {
		return fmt.Errorf("failed to delete source %s: %w", sourceID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("source %s: %w", sourceID, common.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) loadMaterials(ctx context.Context, sourceID string) ([]model.MaterialRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT material_code, description, category, qty, remarks, ship_name
		 FROM material_records WHERE source_id = ? ORDER BY id`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query material rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.MaterialRecord
	for rows.Next() {
		var m model.MaterialRecord
		var category string
		if err := rows.Scan(&m.MaterialCode, &m.Description, &category, &m.Qty, &m.Remarks, &m.ShipName); err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		m.Category = model.CategoryLabel(category)
		records = append(records, m)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) loadSerials(ctx context.Context, sourceID string) ([]model.SerialRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT material_code, description, barcode, location, bin_code, ship_to_name, ship_to_address, sold_to, document_id
		 FROM serial_records WHERE source_id = ? ORDER BY id`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query serial rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.SerialRecord
	for rows.Next() {
		var sr model.SerialRecord
		if err := rows.Scan(&sr.MaterialCode, &sr.Description, &sr.Barcode, &sr.Location, &sr.BinCode,
			&sr.ShipToName, &sr.ShipToAddress, &sr.SoldTo, &sr.DocumentID); err != nil {
			return nil, fmt.Errorf("failed to scan serial row: %w", err)
		}
		records = append(records, sr)
	}
	return records, rows.Err()
}
