package ingest

import (
	"bytes"
	"fmt"

	"github.com/harborops/consign/internal/common"
	"github.com/xuri/excelize/v2"
)

// readXLSX parses the first sheet of an XLSX workbook.
func readXLSX(data []byte) (RawTable, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = workbook.Close() }()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return RawTable{}, fmt.Errorf("workbook: %w", common.ErrNoRows)
	}

	return FromRows(rows), nil
}
