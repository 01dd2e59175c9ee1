package model

import "strings"

// MaterialRecord is one aggregable line from an ingested document.
// Remarks carries the owning source's natural document id; it doubles as the
// correlation key when a document has no separate reference column.
type MaterialRecord struct {
	MaterialCode string
	Description  string
	Category     CategoryLabel
	Remarks      string
	ShipName     string
	Qty          int
}

// Key returns the composite grouping key for consolidation.
func (m MaterialRecord) Key() AggregateKey {
	return AggregateKey{
		MaterialCode: m.MaterialCode,
		Description:  m.Description,
		Remarks:      m.Remarks,
	}
}

// SerialRecord is one physical-unit line tied to a single scanned barcode.
// Serial rows are never aggregated, only unioned across sources.
type SerialRecord struct {
	MaterialCode  string
	Description   string
	Barcode       string
	Location      string
	BinCode       string
	ShipToName    string
	ShipToAddress string
	SoldTo        string
	DocumentID    string
}

// IsValid reports whether the row carries both a material code and a
// barcode. Only valid rows appear in the consolidated serial view.
func (s SerialRecord) IsValid() bool {
	return strings.TrimSpace(s.MaterialCode) != "" && strings.TrimSpace(s.Barcode) != ""
}

// AggregateKey identifies one consolidated row: identical material codes
// from different documents stay separate because Remarks differs.
type AggregateKey struct {
	MaterialCode string
	Description  string
	Remarks      string
}

// AggregateRow is one accumulated consolidation result. Qty is the sum over
// every contributing MaterialRecord; ShipName is the comma-joined list of
// distinct ship names in order of first appearance.
type AggregateRow struct {
	MaterialCode string
	Description  string
	Category     CategoryLabel
	Remarks      string
	ShipName     string
	Qty          int
}
