package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumnsVariants(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		check  func(t *testing.T, cols columnIndexes)
	}{
		{
			name:   "canonical SAP-style header",
			header: []string{"Material Code", "Material Description", "Qty", "Barcode", "DN No.", "Ship To Name"},
			check: func(t *testing.T, cols columnIndexes) {
				assert.Equal(t, 0, cols.material)
				assert.Equal(t, 1, cols.description)
				assert.Equal(t, 2, cols.qty)
				assert.Equal(t, 3, cols.barcode)
				assert.Equal(t, 4, cols.document)
				assert.Equal(t, 5, cols.shipName)
			},
		},
		{
			name:   "squashed and lowercase spellings",
			header: []string{"materialcode", "description", "quantity", "serial no", "delivery note"},
			check: func(t *testing.T, cols columnIndexes) {
				assert.Equal(t, 0, cols.material)
				assert.Equal(t, 1, cols.description)
				assert.Equal(t, 2, cols.qty)
				assert.Equal(t, 3, cols.barcode)
				assert.Equal(t, 4, cols.document)
			},
		},
		{
			name:   "column order is irrelevant",
			header: []string{"Qty", "DN Number", "Item Code"},
			check: func(t *testing.T, cols columnIndexes) {
				assert.Equal(t, 2, cols.material)
				assert.Equal(t, 0, cols.qty)
				assert.Equal(t, 1, cols.document)
			},
		},
		{
			name:   "unresolved optional columns degrade to -1",
			header: []string{"Material No."},
			check: func(t *testing.T, cols columnIndexes) {
				assert.Equal(t, 0, cols.material)
				assert.Equal(t, -1, cols.description)
				assert.Equal(t, -1, cols.barcode)
				assert.Equal(t, -1, cols.qty)
				assert.Equal(t, -1, cols.document)
			},
		},
		{
			name:   "routing metadata columns",
			header: []string{"Material Code", "Location", "Storage Bin", "Ship To Address", "Sold To Party"},
			check: func(t *testing.T, cols columnIndexes) {
				assert.Equal(t, 1, cols.location)
				assert.Equal(t, 2, cols.binCode)
				assert.Equal(t, 3, cols.shipAddress)
				assert.Equal(t, 4, cols.soldTo)
			},
		},
		{
			name:   "empty header",
			header: nil,
			check: func(t *testing.T, cols columnIndexes) {
				assert.Equal(t, -1, cols.material)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, resolveColumns(tt.header))
		})
	}
}

func TestFindColumnFirstCellWins(t *testing.T) {
	header := []string{"Old Material Code", "Material Code"}
	assert.Equal(t, 0, findColumn(header, headerVariants["material"]))
}
