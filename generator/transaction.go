package generator

import (
	"math/rand"
	"time"

	"datagen/catalog"

	"github.com/shopspring/decimal"
)

// Transaction is one sales record. Quantity and Revenue are pointers because
// the data quality passes null them out in a handful of rows; before
// corruption they are always set.
type Transaction struct {
	ID            int
	Timestamp     time.Time
	Location      catalog.Location
	ProductID     int
	Quantity      *int
	Revenue       *decimal.Decimal
	PaymentMethod catalog.PaymentMethod
	LoyaltyMember bool
}

// Per-location payment method probabilities, in order {Cash, Credit, Mobile}.
var paymentProbs = map[catalog.Location][3]float64{
	catalog.Campus:   {0.10, 0.40, 0.50},
	catalog.Downtown: {0.05, 0.55, 0.40},
	catalog.Suburb:   {0.15, 0.60, 0.25},
}

var loyaltyProbs = map[catalog.Location]float64{
	catalog.Campus:   0.25,
	catalog.Downtown: 0.45,
	catalog.Suburb:   0.55,
}

// Generate produces one fully populated transaction. The draw order is fixed
// (category, product, quantity, price variation, payment, loyalty) so that a
// seeded stream reproduces the same record every run.
func Generate(rng *rand.Rand, id int, timestamp time.Time, location catalog.Location, dayOfWeek int, products []catalog.Product) Transaction {
	dist := CategoryDistribution(timestamp.Hour(), location, dayOfWeek)
	category := drawCategory(rng, dist)
	product := SelectProduct(rng, category, location, products)
	quantity := drawQuantity(rng)

	markup := Markup(product.Name, product.Category, location)
	variation := 0.90 + rng.Float64()*0.20
	unitPrice := product.Cost.InexactFloat64() * markup * variation
	revenue := decimal.NewFromFloat(unitPrice * float64(quantity)).Round(2)

	payment := drawPayment(rng, location)
	loyalty := rng.Float64() < loyaltyProbs[location]

	return Transaction{
		ID:            id,
		Timestamp:     timestamp,
		Location:      location,
		ProductID:     product.ID,
		Quantity:      &quantity,
		Revenue:       &revenue,
		PaymentMethod: payment,
		LoyaltyMember: loyalty,
	}
}

func drawCategory(rng *rand.Rand, dist Distribution) catalog.Category {
	r := rng.Float64()
	acc := 0.0
	for i, p := range dist {
		acc += p
		if r < acc {
			return catalog.Category(i)
		}
	}
	return catalog.Category(len(dist) - 1)
}

// Almost every sale is a single item; two and three-item sales are rare.
func drawQuantity(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r < 0.95:
		return 1
	case r < 0.995:
		return 2
	default:
		return 3
	}
}

func drawPayment(rng *rand.Rand, location catalog.Location) catalog.PaymentMethod {
	probs := paymentProbs[location]
	r := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return catalog.PaymentMethod(i)
		}
	}
	return catalog.Mobile
}
