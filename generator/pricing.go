package generator

import "datagen/catalog"

// Markup returns the multiplicative factor applied over unit cost for a
// product sold at a given store.
func Markup(productName string, category catalog.Category, location catalog.Location) float64 {
	var base float64
	switch {
	case catalog.IsPremium(productName):
		base = 3.5
	case category == catalog.Sandwich:
		base = 2.8
	case category == catalog.Pastry:
		// Made in-house, best margins of the regular lineup.
		base = 3.5
	case category == catalog.Tea:
		base = 2.3
	default:
		base = 2.5
	}

	switch location {
	case catalog.Downtown:
		base *= 1.15
	case catalog.Campus:
		base *= 0.90
	}
	return base
}
