// Package service defines the contracts between the consolidation core and
// its outer collaborators (session persistence, descriptor lookup).
package service

import (
	"context"

	"github.com/harborops/consign/internal/model"
)

// MaterialDescriptor is the result of resolving a code against a material
// master: a human description plus the curated category, when one exists.
type MaterialDescriptor struct {
	Code        string
	Description string
	Category    model.CategoryLabel
}

// DescriptorLookup resolves a code to a descriptor. Implementations may be
// backed by a database or a remote service; callers fall back directly to
// the local classifier when the lookup errors or finds nothing, so no
// implementation is ever load-bearing for classification.
type DescriptorLookup interface {
	Lookup(ctx context.Context, code string) (*MaterialDescriptor, error)
}

// SessionStore persists registered sources between CLI invocations. The
// in-memory registry remains the authority on duplicate rejection and
// ordering; the store only rehydrates it.
type SessionStore interface {
	SaveSource(ctx context.Context, source *model.Source) error
	ListSources(ctx context.Context) ([]*model.Source, error)
	DeleteSource(ctx context.Context, sourceID string) error
	Migrate(ctx context.Context) error
	Close() error
}
