// Package registry holds the set of ingested sources for a session and
// enforces at-ingestion-time duplicate rejection by natural document id.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/harborops/consign/internal/common"
	"github.com/harborops/consign/internal/model"
)

// Registry is the session's source set. Insertion order is preserved and
// user-visible. The registry holds no aggregate state: consolidated views
// are always recomputed from the current contents.
type Registry struct {
	byDocument map[string]*model.Source
	sources    []*model.Source
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byDocument: make(map[string]*model.Source)}
}

// Register adds one source. A source whose natural document id matches any
// currently-held source is rejected before any of its rows are merged in;
// the match is case-sensitive on the raw id as captured from the document.
func (r *Registry) Register(source *model.Source) error {
	if source == nil {
		return fmt.Errorf("source: %w", common.ErrUnknownSource)
	}
	if _, exists := r.byDocument[source.DocumentID]; exists {
		return fmt.Errorf("%w: %s", common.ErrDuplicateDocument, source.DocumentID)
	}
	r.byDocument[source.DocumentID] = source
	r.sources = append(r.sources, source)
	return nil
}

// RegisterAll registers a batch in order. Duplicates are rejected
// individually and reported back as the list of rejected document ids;
// the batch's other sources are still registered.
func (r *Registry) RegisterAll(sources []*model.Source) (accepted []*model.Source, rejected []string) {
	for _, source := range sources {
		if source == nil {
			slog.Warn("Skipped nil source in batch")
			continue
		}
		if err := r.Register(source); err != nil {
			slog.Warn("Rejected duplicate document",
				"document_id", source.DocumentID,
				"file", source.FileName)
			rejected = append(rejected, source.DocumentID)
			continue
		}
		accepted = append(accepted, source)
	}
	return accepted, rejected
}

// Remove deletes the source with the given source id. Callers must re-run
// consolidation afterward; no cached totals live here.
func (r *Registry) Remove(sourceID string) error {
	for i, source := range r.sources {
		if source.ID == sourceID {
			r.sources = append(r.sources[:i], r.sources[i+1:]...)
			delete(r.byDocument, source.DocumentID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", common.ErrUnknownSource, sourceID)
}

// Get returns the source with the given source id.
func (r *Registry) Get(sourceID string) (*model.Source, error) {
	for _, source := range r.sources {
		if source.ID == sourceID {
			return source, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", common.ErrUnknownSource, sourceID)
}

// List returns all registered sources in registration order.
func (r *Registry) List() []*model.Source {
	out := make([]*model.Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.sources)
}
