// Package consolidate folds material rows from one or many sources into a
// grouped, quantity-summed table and exposes an ungrouped union of serial
// rows. All functions are pure over their inputs: consolidated views are
// rebuilt from scratch on every registry change rather than patched in
// place, so removing a source can never leave stale totals behind.
package consolidate

import (
	"strings"

	"github.com/harborops/consign/internal/model"
)

// accumulator tracks one in-progress aggregate row plus the ship names
// already seen for its key.
type accumulator struct {
	row       model.AggregateRow
	shipNames []string
	seen      map[string]bool
}

// AggregateAll folds every material row from every source into the
// composite-key table, in source-registration order then row order. For a
// repeated key, quantity accumulates by addition and only ship names not
// already present (case-sensitive) are appended.
func AggregateAll(sources []*model.Source) []model.AggregateRow {
	groups := make(map[model.AggregateKey]*accumulator)
	var order []model.AggregateKey

	for _, source := range sources {
		for _, record := range source.Materials {
			key := record.Key()
			acc, ok := groups[key]
			if !ok {
				acc = &accumulator{
					row: model.AggregateRow{
						MaterialCode: record.MaterialCode,
						Description:  record.Description,
						Category:     record.Category,
						Remarks:      record.Remarks,
					},
					seen: make(map[string]bool),
				}
				groups[key] = acc
				order = append(order, key)
			}
			acc.row.Qty += record.Qty
			if record.ShipName != "" && !acc.seen[record.ShipName] {
				acc.seen[record.ShipName] = true
				acc.shipNames = append(acc.shipNames, record.ShipName)
			}
		}
	}

	rows := make([]model.AggregateRow, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		acc.row.ShipName = strings.Join(acc.shipNames, ", ")
		rows = append(rows, acc.row)
	}
	return rows
}

// AggregateOne folds a single source's own material rows, for the "view
// just this upload" mode. Per key it produces the same results as filtering
// AggregateAll down to that source's contributing rows.
func AggregateOne(source *model.Source) []model.AggregateRow {
	if source == nil {
		return nil
	}
	return AggregateAll([]*model.Source{source})
}

// UnionSerials concatenates every source's serial rows in registration
// order, filtered to rows carrying both a material code and a barcode.
// No deduplication: physical units are distinct even when two sources
// coincidentally share a material code.
func UnionSerials(sources []*model.Source) []model.SerialRecord {
	var out []model.SerialRecord
	for _, source := range sources {
		for _, serial := range source.Serials {
			if serial.IsValid() {
				out = append(out, serial)
			}
		}
	}
	return out
}
