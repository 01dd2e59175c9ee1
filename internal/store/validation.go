package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harborops/consign/internal/model"
	"github.com/harborops/consign/internal/service"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidSource   = errors.New("invalid source")
	ErrInvalidCategory = errors.New("invalid category")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSource validates a source before persistence.
func validateSource(source *model.Source) error {
	if source == nil {
		return fmt.Errorf("%w: source", ErrNilParameter)
	}
	if source.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidSource)
	}
	for i, m := range source.Materials {
		if m.MaterialCode == "" {
			return fmt.Errorf("%w: material row %d missing code", ErrInvalidSource, i)
		}
		if !m.Category.IsValid() {
			return fmt.Errorf("%w: material row %d category %q", ErrInvalidCategory, i, m.Category)
		}
	}
	return nil
}

// validateDescriptor validates a material-master entry.
func validateDescriptor(descriptor *service.MaterialDescriptor) error {
	if descriptor == nil {
		return fmt.Errorf("%w: descriptor", ErrNilParameter)
	}
	if strings.TrimSpace(descriptor.Code) == "" {
		return fmt.Errorf("%w: code", ErrEmptyString)
	}
	if !descriptor.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, descriptor.Category)
	}
	return nil
}
