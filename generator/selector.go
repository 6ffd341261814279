package generator

import (
	"math/rand"

	"datagen/catalog"
)

// SelectProduct draws one product from the catalog rows of the given
// category. Weights reflect how the stores actually sell: premium items are
// rare, the BLT barely moves, Campus avoids expensive items and Downtown
// leans into the premium tier.
func SelectProduct(rng *rand.Rand, category catalog.Category, location catalog.Location, products []catalog.Product) catalog.Product {
	subset := catalog.ByCategory(products, category)
	if len(subset) == 1 {
		return subset[0]
	}

	weights := make([]float64, len(subset))
	for i, p := range subset {
		w := 1.0
		if catalog.IsPremium(p.Name) {
			w = 0.15
		} else if p.Name == catalog.BLT {
			w = 0.10
		}

		switch location {
		case catalog.Campus:
			if p.Name == catalog.TurkeyClub || p.Name == catalog.SteakPanini {
				w *= 0.30
			}
			if p.Name == catalog.NitroColdBrew || p.Name == catalog.PremiumMatcha {
				w *= 0.20
			}
		case catalog.Downtown:
			if catalog.IsPremium(p.Name) {
				w *= 2.5
			}
		}
		weights[i] = w
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	r := rng.Float64() * sum
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return subset[i]
		}
	}
	// Float rounding can leave r just past the last boundary.
	return subset[len(subset)-1]
}
