package ingest

import (
	"testing"

	"github.com/harborops/consign/internal/classify"
	"github.com/harborops/consign/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngestor() *Ingestor {
	return NewIngestor(classify.NewDefault())
}

func TestIngestBuildsParallelRowSets(t *testing.T) {
	table := RawTable{
		Header: []string{"Material Code", "Material Description", "Qty", "Barcode", "DN No.", "Ship To Name", "Location", "Bin Code"},
		Rows: [][]string{
			{"BCD-350WDL", "350L Combi Fridge", "2", "SN0001", "DN20260815", "Acme Retail", "JKT01", "A-01-02"},
			{"KFR-35GW", "1.5HP Split AC", "1", "SN0002", "DN20260815", "Acme Retail", "JKT01", "B-02-01"},
		},
	}

	source := newTestIngestor().Ingest(table, Options{FileName: "dn.xlsx"})

	require.Len(t, source.Materials, 2)
	require.Len(t, source.Serials, 2)
	assert.NotEmpty(t, source.ID)
	assert.Equal(t, "DN20260815", source.DocumentID)

	first := source.Materials[0]
	assert.Equal(t, "BCD-350WDL", first.MaterialCode)
	assert.Equal(t, "350L Combi Fridge", first.Description)
	assert.Equal(t, model.CategoryRefrigerator, first.Category, "category is attached at ingestion time")
	assert.Equal(t, 2, first.Qty)
	assert.Equal(t, "DN20260815", first.Remarks, "remarks carries the natural document id")
	assert.Equal(t, "Acme Retail", first.ShipName)

	serial := source.Serials[0]
	assert.Equal(t, "BCD-350WDL", serial.MaterialCode)
	assert.Equal(t, "SN0001", serial.Barcode)
	assert.Equal(t, "JKT01", serial.Location)
	assert.Equal(t, "A-01-02", serial.BinCode)
	assert.True(t, serial.IsValid())
}

func TestIngestSkipsRowsWithoutMaterialCode(t *testing.T) {
	table := RawTable{
		Header: []string{"Material Code", "Qty"},
		Rows: [][]string{
			{"BCD-350WDL", "1"},
			{"", "4"},
			{"   ", "2"},
			{"KFR-35GW", "1"},
		},
	}

	source := newTestIngestor().Ingest(table, Options{})

	require.Len(t, source.Materials, 2)
	assert.Equal(t, "BCD-350WDL", source.Materials[0].MaterialCode)
	assert.Equal(t, "KFR-35GW", source.Materials[1].MaterialCode)
}

func TestIngestQuantityDefaults(t *testing.T) {
	tests := []struct {
		name string
		qty  string
		want int
	}{
		{name: "plain integer", qty: "3", want: 3},
		{name: "missing", qty: "", want: 1},
		{name: "garbage", qty: "three", want: 1},
		{name: "spreadsheet float", qty: "5.0", want: 5},
		{name: "zero falls back", qty: "0", want: 1},
		{name: "negative falls back", qty: "-2", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := RawTable{
				Header: []string{"Material Code", "Qty"},
				Rows:   [][]string{{"BCD-350WDL", tt.qty}},
			}
			source := newTestIngestor().Ingest(table, Options{})
			require.Len(t, source.Materials, 1, "a bad quantity must never drop the row")
			assert.Equal(t, tt.want, source.Materials[0].Qty)
		})
	}
}

func TestIngestDocumentIDResolution(t *testing.T) {
	t.Run("override wins over header-derived id", func(t *testing.T) {
		table := RawTable{
			Header: []string{"Material Code", "DN No."},
			Rows:   [][]string{{"BCD-350WDL", "DN111"}},
		}
		source := newTestIngestor().Ingest(table, Options{DocumentID: "DN999"})
		assert.Equal(t, "DN999", source.DocumentID)
		assert.Equal(t, "DN999", source.Materials[0].Remarks)
	})

	t.Run("derived from first data row with a value", func(t *testing.T) {
		table := RawTable{
			Header: []string{"Material Code", "DN No."},
			Rows: [][]string{
				{"BCD-350WDL", ""},
				{"KFR-35GW", "DN222"},
			},
		}
		source := newTestIngestor().Ingest(table, Options{})
		assert.Equal(t, "DN222", source.DocumentID)
	})

	t.Run("absent column yields empty id", func(t *testing.T) {
		table := RawTable{
			Header: []string{"Material Code"},
			Rows:   [][]string{{"BCD-350WDL"}},
		}
		source := newTestIngestor().Ingest(table, Options{})
		assert.Empty(t, source.DocumentID)
	})
}

func TestIngestMissingMaterialColumnYieldsEmptySource(t *testing.T) {
	table := RawTable{
		Header: []string{"Notes", "Qty"},
		Rows: [][]string{
			{"free text", "3"},
			{"more text", "5"},
		},
	}

	source := newTestIngestor().Ingest(table, Options{FileName: "junk.csv"})

	assert.Empty(t, source.Materials, "rows are skipped, the source itself is not an error")
	assert.Empty(t, source.Serials)
}

func TestIngestRaggedRows(t *testing.T) {
	table := RawTable{
		Header: []string{"Material Code", "Description", "Qty", "Barcode"},
		Rows: [][]string{
			{"BCD-350WDL"}, // short row: optional cells degrade to ""
		},
	}

	source := newTestIngestor().Ingest(table, Options{})

	require.Len(t, source.Materials, 1)
	assert.Equal(t, 1, source.Materials[0].Qty)
	assert.Empty(t, source.Materials[0].Description)
	assert.False(t, source.Serials[0].IsValid(), "no barcode, so the serial row is filtered at consolidation")
}
