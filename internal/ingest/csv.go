package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/harborops/consign/internal/common"
)

// readCSV parses comma-separated data. Ragged rows are accepted; column
// access is bounds-checked downstream.
func readCSV(data []byte) (RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return RawTable{}, fmt.Errorf("csv: %w", common.ErrNoRows)
	}

	return FromRows(rows), nil
}
