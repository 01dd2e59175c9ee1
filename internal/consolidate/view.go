package consolidate

import (
	"github.com/harborops/consign/internal/model"
	"github.com/harborops/consign/internal/registry"
)

// viewMode identifies which consolidated view is active.
type viewMode int

const (
	modeAll viewMode = iota
	modeOne
)

// Result is one recomputed view: the grouped table plus the serial-level
// rows backing it.
type Result struct {
	Rows    []model.AggregateRow
	Serials []model.SerialRecord
}

// View is a thin coordinator between the registry and the aggregator. Its
// only state is which view was last requested; every call recomputes over
// the registry's current contents.
type View struct {
	reg      *registry.Registry
	activeID string
	mode     viewMode
}

// NewView creates a view selector over the given registry.
func NewView(reg *registry.Registry) *View {
	return &View{reg: reg}
}

// ShowAll recomputes the all-sources aggregate and serial union.
func (v *View) ShowAll() Result {
	v.mode = modeAll
	v.activeID = ""
	sources := v.reg.List()
	return Result{
		Rows:    AggregateAll(sources),
		Serials: UnionSerials(sources),
	}
}

// ShowOne recomputes the aggregate restricted to a single source.
func (v *View) ShowOne(sourceID string) (Result, error) {
	source, err := v.reg.Get(sourceID)
	if err != nil {
		return Result{}, err
	}
	v.mode = modeOne
	v.activeID = sourceID
	return Result{
		Rows:    AggregateOne(source),
		Serials: UnionSerials([]*model.Source{source}),
	}, nil
}

// AfterRemoval removes the source from the registry and re-runs whichever
// view was last active. If the removed source was the one being viewed,
// the view falls back to all sources.
func (v *View) AfterRemoval(sourceID string) (Result, error) {
	if err := v.reg.Remove(sourceID); err != nil {
		return Result{}, err
	}
	if v.mode == modeOne && v.activeID != sourceID {
		return v.ShowOne(v.activeID)
	}
	return v.ShowAll(), nil
}
