package model

import "time"

// Source is one ingested upload: the unit of duplicate detection and
// removal. DocumentID is the business-assigned delivery-note identifier used
// to reject re-uploads of the same document.
type Source struct {
	IngestedAt time.Time
	ID         string
	DocumentID string
	FileName   string
	Materials  []MaterialRecord
	Serials    []SerialRecord
}

// TotalQty returns the sum of quantities over the source's material rows.
func (s *Source) TotalQty() int {
	total := 0
	for _, m := range s.Materials {
		total += m.Qty
	}
	return total
}
