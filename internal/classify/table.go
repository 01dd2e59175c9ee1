package classify

import "github.com/harborops/consign/internal/model"

// exactTable is the curated code→category dictionary. It is consulted
// before any heuristic rule and exists to correct the exceptions the
// prefix families get wrong (export codes, rebadged models, legacy
// numbering) as well as to cover series that carry no recognizable stem.
// Built once at init via NewDefault; no mutation path exists.
var exactTable = map[string]model.CategoryLabel{
	// BS-series export refrigerators carry no domestic prefix family.
	"BS0900EAE": model.CategoryRefrigerator,
	"BS1100EAE": model.CategoryRefrigerator,
	"BS1400TGE": model.CategoryRefrigerator,
	"BS1700TGE": model.CategoryRefrigerator,
	"BS2100WDE": model.CategoryRefrigerator,

	// Legacy BD codes that are actually bottom-drawer refrigerators, not
	// freezers; the BD prefix rule would misfile them.
	"BD0350HLD": model.CategoryRefrigerator,
	"BD0420HLD": model.CategoryRefrigerator,

	// SBS side-by-side series.
	"SBS5500XE": model.CategoryRefrigerator,
	"SBS6021XE": model.CategoryRefrigerator,
	"SBS6621PE": model.CategoryRefrigerator,

	// Island and glass-top freezers sold under showcase-style SD codes.
	"SD0330GTE": model.CategoryFreezer,
	"SD0420GTE": model.CategoryFreezer,
	"SD0520GTE": model.CategoryFreezer,
	"SD0700ILE": model.CategoryFreezer,

	// SC showcases that are freezer cabinets despite the chiller stem.
	"SC0380FCE": model.CategoryFreezer,
	"SC0450FCE": model.CategoryFreezer,

	// HSU export split air conditioners.
	"HSU09TEK03": model.CategoryHomeAC,
	"HSU12TEK03": model.CategoryHomeAC,
	"HSU18TEK03": model.CategoryHomeAC,
	"HSU24TEK03": model.CategoryHomeAC,
	"HPU44CK03":  model.CategoryCommercialAC,
	"HPU48CK03":  model.CategoryCommercialAC,
	"HPU60CK03":  model.CategoryCommercialAC,

	// Cassette units sold under AB codes.
	"AB36SS1ERA": model.CategoryCommercialAC,
	"AB48SS1ERA": model.CategoryCommercialAC,
	"AB60SS1ERA": model.CategoryCommercialAC,

	// HW export washers.
	"HW0860TVE":  model.CategoryWashingMachine,
	"HW1070TVE":  model.CategoryWashingMachine,
	"HW1208TVE":  model.CategoryWashingMachine,
	"HWM0700KSA": model.CategoryWashingMachine,
	"HWM0900KSA": model.CategoryWashingMachine,
	"HWM1100KSA": model.CategoryWashingMachine,

	// HD export dryers.
	"HD0800MVE": model.CategoryWashingMachine,
	"HD0900MVE": model.CategoryWashingMachine,

	// Flat panels sold under H-series export codes.
	"H32K6000":  model.CategoryTelevision,
	"H40K6000":  model.CategoryTelevision,
	"H43K6600U": model.CategoryTelevision,
	"H50K6600U": model.CategoryTelevision,
	"H55Q8000U": model.CategoryTelevision,
	"H65Q8000U": model.CategoryTelevision,

	// EWH export water heaters; EW stem would otherwise miss entirely.
	"EWH0500VDE": model.CategoryWaterHeater,
	"EWH0800VDE": model.CategoryWaterHeater,
	"EWH1000VDE": model.CategoryWaterHeater,

	// Export microwaves without the MZ stem.
	"HMW2070EGB": model.CategoryMicrowave,
	"HMW2590EGB": model.CategoryMicrowave,

	// Small domestic appliances with ad-hoc codes.
	"HRC180SSE": model.CategorySmallAppliance, // rice cooker
	"HRC280SSE": model.CategorySmallAppliance,
	"HVC1600BE": model.CategorySmallAppliance, // vacuum cleaner
	"HVC2000BE": model.CategorySmallAppliance,
	"HFN1600WE": model.CategorySmallAppliance, // pedestal fan

	// High-runner service parts shipped under product-style codes.
	"COMPR134A09": model.CategorySparePart,
	"COMPR134A12": model.CategorySparePart,
	"PCBMAINBCD":  model.CategorySparePart,
	"DOORGSKT52":  model.CategorySparePart,

	// Trade-marketing items that ship on manifests like stock.
	"SHELFTALK01": model.CategoryPromotionalItem,
	"CANOPYSTD02": model.CategoryPromotionalItem,
	"BROCHRACK01": model.CategoryPromotionalItem,
}
