package entities

import "github.com/shopspring/decimal"

// Supplier price list and multiplier table shipped with the service. Prices
// are CAD list prices; labor hours are reference installation times per unit
// (per foot for ductwork and line sets).

const (
	CategoryFurnaces        = "furnaces"
	CategoryAirConditioners = "air_conditioners"
	CategoryHeatPumps       = "heat_pumps"
	CategoryWaterHeaters    = "water_heaters"
	CategoryDuctwork        = "ductwork"
	CategoryVentilation     = "ventilation"
	CategoryThermostats     = "thermostats"
	CategoryRefrigerantLine = "refrigerant_lines"
	CategoryAccessories     = "accessories"
)

// DefaultMultiplier applies to categories absent from the multiplier table.
var DefaultMultiplier = dec("0.625")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(category, name, price, laborHours string) CatalogItem {
	return CatalogItem{
		Category:   category,
		Name:       name,
		UnitPrice:  dec(price),
		LaborHours: dec(laborHours),
	}
}

// DefaultCatalog builds the embedded supplier catalog. It panics only on a
// programming error in the static table (duplicate entries).
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]CatalogItem{
		item(CategoryFurnaces, "Goodman GM9S80 80k BTU 80% Gas Furnace", "1899.00", "8"),
		item(CategoryFurnaces, "Goodman GM9C96 60k BTU 96% Gas Furnace", "2549.00", "8"),
		item(CategoryFurnaces, "Goodman GM9C96 80k BTU 96% Gas Furnace", "2749.00", "8"),
		item(CategoryFurnaces, "Goodman GM9C96 100k BTU 96% Gas Furnace", "2999.00", "9"),
		item(CategoryFurnaces, "Carrier 59TP6 80k BTU 96.5% Gas Furnace", "3649.00", "9"),
		item(CategoryFurnaces, "Lennox ML196E 66k BTU 96% Gas Furnace", "3299.00", "8"),

		item(CategoryAirConditioners, "Goodman GSXH5 2 Ton 15.2 SEER2 AC", "2299.00", "6"),
		item(CategoryAirConditioners, "Goodman GSXH5 2.5 Ton 15.2 SEER2 AC", "2499.00", "6"),
		item(CategoryAirConditioners, "Goodman GSXH5 3 Ton 15.2 SEER2 AC", "2699.00", "7"),
		item(CategoryAirConditioners, "Goodman GSXH5 4 Ton 15.2 SEER2 AC", "3199.00", "7"),
		item(CategoryAirConditioners, "Carrier 24SCA5 3 Ton 15.2 SEER2 AC", "3499.00", "7"),
		item(CategoryAirConditioners, "Evaporator Coil Cased A-Coil 3 Ton", "899.00", "3"),

		item(CategoryHeatPumps, "Goodman GSZB4 2 Ton 14.3 SEER2 Heat Pump", "2899.00", "7"),
		item(CategoryHeatPumps, "Goodman GSZB4 3 Ton 14.3 SEER2 Heat Pump", "3299.00", "8"),
		item(CategoryHeatPumps, "Mitsubishi MSZ-GL12 Ductless Mini-Split", "1999.00", "6"),
		item(CategoryHeatPumps, "Mitsubishi MXZ-3C24 Multi-Zone Condenser", "3899.00", "10"),

		item(CategoryWaterHeaters, "Bradford White 40 Gal Atmospheric Gas", "1249.00", "3"),
		item(CategoryWaterHeaters, "Bradford White 50 Gal Atmospheric Gas", "1399.00", "3"),
		item(CategoryWaterHeaters, "Rinnai RU160iN Tankless Gas", "1899.00", "6"),
		item(CategoryWaterHeaters, "Rheem ProTerra 50 Gal Hybrid Electric", "2399.00", "5"),

		item(CategoryDuctwork, "Rectangular Trunk Duct 8x16 (per ft)", "14.50", "0.25"),
		item(CategoryDuctwork, "Round Pipe 6in 30ga (per ft)", "4.25", "0.15"),
		item(CategoryDuctwork, "Round Pipe 7in 30ga (per ft)", "5.10", "0.15"),
		item(CategoryDuctwork, "Flex Duct R8 6in (per ft)", "3.80", "0.1"),
		item(CategoryDuctwork, "Supply Boot 6in", "11.90", "0.5"),
		item(CategoryDuctwork, "Return Air Grille 20x20", "34.00", "0.5"),

		item(CategoryVentilation, "Panasonic WhisperCeiling 110 CFM Bath Fan", "289.00", "2"),
		item(CategoryVentilation, "vanEE G2400H HRV", "1549.00", "8"),
		item(CategoryVentilation, "Broan Range Hood Liner 600 CFM", "679.00", "3"),

		item(CategoryThermostats, "Ecobee Smart Thermostat Premium", "329.00", "1"),
		item(CategoryThermostats, "Honeywell T6 Pro Programmable", "129.00", "1"),
		item(CategoryThermostats, "Honeywell T10 Pro with RedLINK Sensor", "289.00", "1.5"),

		item(CategoryRefrigerantLine, "Line Set 3/8-3/4 25ft", "189.00", "1.5"),
		item(CategoryRefrigerantLine, "Line Set 3/8-7/8 35ft", "259.00", "2"),
		item(CategoryRefrigerantLine, "Soft Copper 1/4in (per ft)", "2.10", "0.05"),

		item(CategoryAccessories, "Condensate Pump Little Giant VCMA-20", "89.00", "0.5"),
		item(CategoryAccessories, "Media Filter Cabinet 16x25", "219.00", "1"),
		item(CategoryAccessories, "UV Air Purifier 24V", "349.00", "1"),
		item(CategoryAccessories, "Vibration Isolation Pads (set of 4)", "24.00", "0.25"),
	})
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultMultipliers builds the embedded category multiplier table. Contractor
// cost basis as a fraction of supplier list price, negotiated per category.
func DefaultMultipliers() MultiplierTable {
	t, err := NewMultiplierTable(DefaultMultiplier, map[string]decimal.Decimal{
		CategoryFurnaces:        dec("0.6"),
		CategoryAirConditioners: dec("0.6"),
		CategoryHeatPumps:       dec("0.62"),
		CategoryWaterHeaters:    dec("0.65"),
		CategoryDuctwork:        dec("0.7"),
		CategoryVentilation:     dec("0.68"),
		CategoryThermostats:     dec("0.75"),
		CategoryRefrigerantLine: dec("0.7"),
		CategoryAccessories:     dec("0.72"),
	})
	if err != nil {
		panic(err)
	}
	return t
}
