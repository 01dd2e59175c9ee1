package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harborops/consign/internal/common"
	"github.com/harborops/consign/internal/model"
	"github.com/harborops/consign/internal/service"
)

// Lookup resolves a code against the material master. A miss is reported
// as common.ErrNotFound; callers fall back to the local classifier.
func (s *SQLiteStore) Lookup(ctx context.Context, code string) (*service.MaterialDescriptor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	normalized := model.NormalizeCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("descriptor for empty code: %w", common.ErrNotFound)
	}

	var descriptor service.MaterialDescriptor
	var category string
	err := s.db.QueryRowContext(ctx,
		`SELECT code, description, category FROM descriptors WHERE code = ?`, normalized,
	).Scan(&descriptor.Code, &descriptor.Description, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("descriptor %s: %w", normalized, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up descriptor %s: %w", normalized, err)
	}

	descriptor.Category = model.CategoryLabel(category)
	return &descriptor, nil
}

// SaveDescriptor upserts one material-master entry.
func (s *SQLiteStore) SaveDescriptor(ctx context.Context, descriptor *service.MaterialDescriptor) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDescriptor(descriptor); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO descriptors (code, description, category) VALUES (?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET description = excluded.description,
			category = excluded.category, updated_at = CURRENT_TIMESTAMP`,
		model.NormalizeCode(descriptor.Code), descriptor.Description, string(descriptor.Category))
	if err != nil {
		return fmt.Errorf("failed to save descriptor %s: %w", descriptor.Code, err)
	}
	return nil
}
