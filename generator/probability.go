package generator

import "datagen/catalog"

// Distribution holds one probability per product category, indexed by
// catalog.Category. Values are non-negative and sum to 1.
type Distribution [catalog.NumCategories]float64

// Every category keeps at least this weight before renormalization, so no
// category ever becomes impossible.
const weightFloor = 0.01

// CategoryDistribution returns the category demand distribution for a given
// operating hour, store and day of week (0 = Monday). Pure function: same
// inputs always produce the same distribution.
func CategoryDistribution(hour int, location catalog.Location, dayOfWeek int) Distribution {
	var d Distribution

	// Base demand by time of day: {Coffee, Tea, Pastry, Sandwich}.
	switch {
	case hour >= 6 && hour < 10: // morning rush
		d = Distribution{0.55, 0.15, 0.25, 0.05}
	case hour >= 10 && hour < 12: // late morning
		d = Distribution{0.40, 0.20, 0.25, 0.15}
	case hour >= 12 && hour < 14: // lunch
		d = Distribution{0.20, 0.10, 0.10, 0.60}
	case hour >= 14 && hour < 17: // afternoon
		d = Distribution{0.35, 0.25, 0.30, 0.10}
	default: // evening
		d = Distribution{0.30, 0.30, 0.20, 0.20}
	}

	switch location {
	case catalog.Campus:
		// Students: coffee and pastries, rarely sandwiches.
		d[catalog.Coffee] += 0.15
		d[catalog.Pastry] += 0.05
		d[catalog.Sandwich] -= 0.20
		if hour >= 7 && hour < 10 {
			d[catalog.Coffee] += 0.10
			d[catalog.Pastry] -= 0.05
			d[catalog.Sandwich] -= 0.05
		}
	case catalog.Downtown:
		// Office crowd: lunch rush on sandwiches, coffee before meetings.
		if hour >= 12 && hour < 14 {
			d[catalog.Sandwich] += 0.25
			d[catalog.Coffee] -= 0.15
			d[catalog.Pastry] -= 0.10
		}
		if hour >= 8 && hour < 10 {
			d[catalog.Coffee] += 0.10
			d[catalog.Tea] -= 0.05
			d[catalog.Pastry] -= 0.05
		}
	case catalog.Suburb:
		// Families: tea over coffee, after-school pastries.
		d[catalog.Tea] += 0.25
		d[catalog.Coffee] -= 0.25
		if hour >= 15 && hour < 17 {
			d[catalog.Tea] += 0.10
			d[catalog.Pastry] += 0.10
			d[catalog.Sandwich] -= 0.10
			d[catalog.Coffee] -= 0.10
		}
	}

	switch dayOfWeek {
	case 0: // Monday
		d[catalog.Coffee] += 0.05
		d[catalog.Tea] -= 0.05
	case 4: // Friday
		if hour >= 12 && hour < 14 {
			d[catalog.Sandwich] += 0.10
			d[catalog.Coffee] -= 0.05
			d[catalog.Pastry] -= 0.05
		}
	}

	// Clamp and renormalize in one pass.
	sum := 0.0
	for i := range d {
		if d[i] < weightFloor {
			d[i] = weightFloor
		}
		sum += d[i]
	}
	for i := range d {
		d[i] /= sum
	}
	return d
}
