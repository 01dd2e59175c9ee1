package ingest

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/harborops/consign/internal/common"
)

// readXLS parses the first sheet of a legacy BIFF (.xls) workbook.
func readXLS(data []byte) (RawTable, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to open xls workbook: %w", err)
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return RawTable{}, errors.New("xls workbook has no sheets")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		// FirstCol can be nonzero on sparse rows; pad so column indexes
		// stay aligned with the header.
		for c := 0; c < row.FirstCol(); c++ {
			cells = append(cells, "")
		}
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return RawTable{}, fmt.Errorf("xls workbook: %w", common.ErrNoRows)
	}

	return FromRows(rows), nil
}
