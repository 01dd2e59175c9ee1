package ingest

import "strings"

// columnIndexes holds the resolved position of each logical field in a
// document's header row. -1 means the column was not found; every field
// except the material code is optional and degrades to "".
type columnIndexes struct {
	material    int
	description int
	barcode     int
	qty         int
	shipName    int
	document    int
	location    int
	binCode     int
	shipAddress int
	soldTo      int
}

// headerVariants lists the recognized spellings per logical field. Matching
// is case-insensitive substring over each header cell, so "Material Code",
// "MaterialCode" and "MATERIAL NO." all resolve the material column.
var headerVariants = map[string][]string{
	"material":    {"material code", "materialcode", "material no", "item code", "model code"},
	"description": {"material description", "description", "model name"},
	"barcode":     {"barcode", "serial no", "serial number", "serialno"},
	"qty":         {"qty", "quantity"},
	"shipName":    {"ship to name", "ship-to name", "shipto name", "customer name"},
	"document":    {"dn no", "dn number", "do no", "delivery note", "document no"},
	"location":    {"location", "warehouse", "whse"},
	"binCode":     {"bin code", "bincode", "storage bin"},
	"shipAddress": {"ship to address", "ship-to address", "shipto address", "address"},
	"soldTo":      {"sold to", "sold-to", "soldto"},
}

// resolveColumns maps the header row to logical field positions. The first
// header cell containing any recognized variant wins for that field.
func resolveColumns(header []string) columnIndexes {
	return columnIndexes{
		material:    findColumn(header, headerVariants["material"]),
		description: findColumn(header, headerVariants["description"]),
		barcode:     findColumn(header, headerVariants["barcode"]),
		qty:         findColumn(header, headerVariants["qty"]),
		shipName:    findColumn(header, headerVariants["shipName"]),
		document:    findColumn(header, headerVariants["document"]),
		location:    findColumn(header, headerVariants["location"]),
		binCode:     findColumn(header, headerVariants["binCode"]),
		shipAddress: findColumn(header, headerVariants["shipAddress"]),
		soldTo:      findColumn(header, headerVariants["soldTo"]),
	}
}

// findColumn returns the index of the first header cell containing any of
// the variants, case-insensitively, or -1.
func findColumn(header []string, variants []string) int {
	for i, raw := range header {
		name := strings.ToLower(trim(raw))
		if name == "" {
			continue
		}
		for _, variant := range variants {
			if strings.Contains(name, variant) {
				return i
			}
		}
	}
	return -1
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
