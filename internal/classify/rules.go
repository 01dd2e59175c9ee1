package classify

import "github.com/harborops/consign/internal/model"

// defaultRules is the frozen heuristic rule list, evaluated top to bottom
// with first-match-wins semantics. The order is load-bearing: several
// prefix families overlap (KFD ducted units share the KF stem with room air
// conditioners, BCD combis share the BC stem with all-fridge cabinets), so
// reordering or alphabetizing this list changes classification output.
// Structured prefix rules come first; free-text keyword rules stay at the
// bottom so they only catch codes no prefix family claimed.
var defaultRules = []Rule{
	// Refrigeration. BCD (fridge-freezer combi) must precede the bare BC
	// family; BC additionally excludes BCD so the carve-out holds even if a
	// later edit moves the rule.
	{Name: "combi-refrigerator", Predicate: Predicate{Prefix: "BCD"}, Category: model.CategoryRefrigerator},
	{Name: "all-refrigerator", Predicate: Predicate{Prefix: "BC", NotPrefixes: []string{"BCD"}}, Category: model.CategoryRefrigerator},
	{Name: "chest-upright-freezer", Predicate: Predicate{Prefix: "BD"}, Category: model.CategoryFreezer},
	{Name: "deep-freezer", Predicate: Predicate{Prefix: "DW"}, Category: model.CategoryFreezer},
	{Name: "showcase-chiller", Predicate: Predicate{Prefix: "SC"}, Category: model.CategoryRefrigerator},

	// Air conditioning. KFD ducted units are commercial and must be tried
	// before the broader KF room-unit family they are spelled inside of.
	// KFB spare blowers are parts, not units, so the bare KF rule carves
	// them out and lets the keyword rules (or Others) pick them up.
	{Name: "ducted-ac", Predicate: Predicate{Prefix: "KFD"}, Category: model.CategoryCommercialAC},
	{Name: "heatpump-split-ac", Predicate: Predicate{Prefix: "KFR"}, Category: model.CategoryHomeAC},
	{Name: "cooling-only-ac", Predicate: Predicate{Prefix: "KF", NotPrefixes: []string{"KFB"}}, Category: model.CategoryHomeAC},
	{Name: "rooftop-packaged-ac", Predicate: Predicate{Prefix: "RF"}, Category: model.CategoryCommercialAC},
	{Name: "vrf-system", Predicate: Predicate{Prefix: "MRV"}, Category: model.CategoryCommercialAC},

	// Laundry.
	{Name: "front-load-washer", Predicate: Predicate{Prefix: "XQG"}, Category: model.CategoryWashingMachine},
	{Name: "top-load-washer", Predicate: Predicate{Prefix: "XQB"}, Category: model.CategoryWashingMachine},
	{Name: "twin-tub-washer", Predicate: Predicate{Prefix: "XPB"}, Category: model.CategoryWashingMachine},
	{Name: "tumble-dryer", Predicate: Predicate{Prefix: "GDZ"}, Category: model.CategoryWashingMachine},

	// Audio visual.
	{Name: "led-tv", Predicate: Predicate{Prefix: "LE"}, Category: model.CategoryTelevision},
	{Name: "uhd-tv", Predicate: Predicate{Prefix: "LU"}, Category: model.CategoryTelevision},

	// Water heating.
	{Name: "electric-storage-heater", Predicate: Predicate{Prefix: "ES"}, Category: model.CategoryWaterHeater},
	{Name: "electric-compact-heater", Predicate: Predicate{Prefix: "EC"}, Category: model.CategoryWaterHeater},
	{Name: "gas-instant-heater", Predicate: Predicate{Prefix: "JSQ"}, Category: model.CategoryWaterHeater},

	// Kitchen and small domestic.
	{Name: "microwave", Predicate: Predicate{Prefix: "MZ"}, Category: model.CategoryMicrowave},
	{Name: "kettle-family", Predicate: Predicate{Prefix: "HKT"}, Category: model.CategorySmallAppliance},
	{Name: "blender-family", Predicate: Predicate{Prefix: "HBL"}, Category: model.CategorySmallAppliance},

	// Service parts carry numeric-leading part numbers.
	{Name: "numbered-spare", Predicate: Predicate{Prefix: "00"}, Category: model.CategorySparePart},

	// Free-text keyword rules. These stay last so vendor free-text tokens
	// never shadow a structured prefix family.
	{Name: "assembly-spare", Predicate: Predicate{Contains: "ASSY"}, Category: model.CategorySparePart},
	{Name: "gift-item", Predicate: Predicate{Contains: "GIFT"}, Category: model.CategoryPromotionalItem},
	{Name: "free-of-charge-item", Predicate: Predicate{Contains: "FOC"}, Category: model.CategoryPromotionalItem},
	{Name: "point-of-sale-material", Predicate: Predicate{Contains: "POSM"}, Category: model.CategoryPromotionalItem},
	{Name: "display-dummy", Predicate: Predicate{Contains: "DUMMY"}, Category: model.CategoryPromotionalItem},
}

// DefaultRules returns the frozen rule list in evaluation order.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
