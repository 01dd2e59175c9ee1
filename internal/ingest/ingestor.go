package ingest

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/harborops/consign/internal/classify"
	"github.com/harborops/consign/internal/model"
)

// Options adjusts a single ingestion.
type Options struct {
	// DocumentID overrides the natural document id derived from the
	// document-number column of the first data row.
	DocumentID string
	// FileName is recorded on the source for operator-facing listings.
	FileName string
}

// Ingestor converts raw tables into sources, attaching a category to every
// material row at ingestion time.
type Ingestor struct {
	classifier *classify.Classifier
}

// NewIngestor creates an ingestor backed by the given classifier.
func NewIngestor(classifier *classify.Classifier) *Ingestor {
	return &Ingestor{classifier: classifier}
}

// Ingest parses one tabular document into a source. Rows without a material
// code are skipped, never the whole document; a missing or unparseable
// quantity defaults to 1. Ingest has no failure mode beyond producing an
// empty source: structural problems are data-quality issues, not faults.
func (i *Ingestor) Ingest(table RawTable, opts Options) *model.Source {
	cols := resolveColumns(table.Header)

	source := &model.Source{
		ID:         uuid.NewString(),
		FileName:   opts.FileName,
		IngestedAt: time.Now(),
	}

	if cols.material < 0 {
		slog.Warn("No material code column recognized; skipping all rows",
			"file", opts.FileName,
			"header_cells", len(table.Header))
	}

	source.DocumentID = documentID(table, cols, opts)

	skipped := 0
	for _, row := range table.Rows {
		code := cell(row, cols.material)
		if code == "" {
			skipped++
			continue
		}

		source.Materials = append(source.Materials, model.MaterialRecord{
			MaterialCode: code,
			Description:  cell(row, cols.description),
			Category:     i.classifier.Classify(code),
			Qty:          parseQty(cell(row, cols.qty)),
			Remarks:      source.DocumentID,
			ShipName:     cell(row, cols.shipName),
		})

		source.Serials = append(source.Serials, model.SerialRecord{
			MaterialCode:  code,
			Description:   cell(row, cols.description),
			Barcode:       cell(row, cols.barcode),
			Location:      cell(row, cols.location),
			BinCode:       cell(row, cols.binCode),
			ShipToName:    cell(row, cols.shipName),
			ShipToAddress: cell(row, cols.shipAddress),
			SoldTo:        cell(row, cols.soldTo),
			DocumentID:    source.DocumentID,
		})
	}

	if skipped > 0 {
		slog.Debug("Skipped rows without material code",
			"file", opts.FileName,
			"skipped", skipped,
			"accepted", len(source.Materials))
	}

	return source
}

// documentID resolves the natural document id: an explicit override wins,
// otherwise the document-number column of the first data row is used.
func documentID(table RawTable, cols columnIndexes, opts Options) string {
	if id := trim(opts.DocumentID); id != "" {
		return id
	}
	for _, row := range table.Rows {
		if id := cell(row, cols.document); id != "" {
			return id
		}
	}
	return ""
}

// parseQty parses a quantity-like cell. Absent or unparseable values
// default to 1; rows are never dropped for a bad quantity.
func parseQty(raw string) int {
	if raw == "" {
		return 1
	}
	if qty, err := strconv.Atoi(raw); err == nil && qty > 0 {
		return qty
	}
	// Spreadsheet exports sometimes render integers as "3.0".
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
		return int(f)
	}
	return 1
}
