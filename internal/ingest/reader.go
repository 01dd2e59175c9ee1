package ingest

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile loads a tabular document from disk. The format cascade tries
// XLSX first, then legacy XLS, then CSV, so callers can accept whatever a
// warehouse team exports without inspecting extensions. Only when every
// reader fails is an error returned.
func ReadFile(path string) (RawTable, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	if table, err := readXLSX(data); err == nil {
		return table, nil
	}

	if table, err := readXLS(data); err == nil {
		return table, nil
	}

	table, csvErr := readCSV(data)
	if csvErr != nil {
		return RawTable{}, fmt.Errorf("failed to parse %s as xlsx, xls, or csv: %w", filepath.Base(path), csvErr)
	}
	return table, nil
}
