// Package model defines the core data structures for the consign application.
package model

import "strings"

// NormalizeCode prepares a raw material or bin code for comparison.
// It returns "" for empty input; otherwise it trims surrounding whitespace
// and upper-cases the result. It is defined for every input.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CategoryLabel is one of the fixed set of product categories a material
// code can classify to. CategoryOthers is the universal fallback and is a
// normal result, never an error.
type CategoryLabel string

// The closed category set.
const (
	CategoryRefrigerator    CategoryLabel = "Refrigerator"
	CategoryFreezer         CategoryLabel = "Freezer"
	CategoryHomeAC          CategoryLabel = "Home Air Conditioner"
	CategoryCommercialAC    CategoryLabel = "Commercial Air Conditioner"
	CategoryWashingMachine  CategoryLabel = "Washing Machine"
	CategoryTelevision      CategoryLabel = "Television"
	CategoryWaterHeater     CategoryLabel = "Water Heater"
	CategoryMicrowave       CategoryLabel = "Microwave Oven"
	CategorySmallAppliance  CategoryLabel = "Small Appliance"
	CategorySparePart       CategoryLabel = "Spare Part"
	CategoryPromotionalItem CategoryLabel = "Promotional Item"
	CategoryOthers          CategoryLabel = "Others"
)

// AllCategories returns every valid category label, fallback included.
func AllCategories() []CategoryLabel {
	return []CategoryLabel{
		CategoryRefrigerator,
		CategoryFreezer,
		CategoryHomeAC,
		CategoryCommercialAC,
		CategoryWashingMachine,
		CategoryTelevision,
		CategoryWaterHeater,
		CategoryMicrowave,
		CategorySmallAppliance,
		CategorySparePart,
		CategoryPromotionalItem,
		CategoryOthers,
	}
}

// IsValid reports whether the label belongs to the closed category set.
func (c CategoryLabel) IsValid() bool {
	for _, label := range AllCategories() {
		if c == label {
			return true
		}
	}
	return false
}
