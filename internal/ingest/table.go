// Package ingest parses uploaded tabular documents into sources: parallel
// material and serial row sets with categories attached at ingestion time.
package ingest

// RawTable is a parsed tabular document: one header row plus data rows.
// Rows may be ragged; consumers must bounds-check column access.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// FromRows splits a raw 2-D sheet into header and data rows. An empty
// sheet yields an empty table.
func FromRows(rows [][]string) RawTable {
	if len(rows) == 0 {
		return RawTable{}
	}
	return RawTable{Header: rows[0], Rows: rows[1:]}
}

// cell returns the trimmed value at col for a possibly ragged row, or ""
// when the column is absent or unresolved.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return trim(row[col])
}
