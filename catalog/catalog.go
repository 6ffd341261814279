package catalog

import "github.com/shopspring/decimal"

// Category classifies a product. It drives both the demand model and the
// markup applied over cost.
type Category int

const (
	Coffee Category = iota
	Tea
	Pastry
	Sandwich
)

// NumCategories is the number of product categories. Probability tables are
// arrays indexed by Category.
const NumCategories = 4

func (c Category) String() string {
	switch c {
	case Coffee:
		return "Coffee"
	case Tea:
		return "Tea"
	case Pastry:
		return "Pastry"
	case Sandwich:
		return "Sandwich"
	}
	return "Unknown"
}

// Location identifies one of the chain's three stores.
type Location int

const (
	Downtown Location = iota
	Campus
	Suburb
)

// Locations lists every store in draw order.
var Locations = []Location{Downtown, Campus, Suburb}

func (l Location) String() string {
	switch l {
	case Downtown:
		return "Downtown"
	case Campus:
		return "Campus"
	case Suburb:
		return "Suburb"
	}
	return "Unknown"
}

type PaymentMethod int

const (
	Cash PaymentMethod = iota
	Credit
	Mobile
)

func (p PaymentMethod) String() string {
	switch p {
	case Cash:
		return "Cash"
	case Credit:
		return "Credit"
	case Mobile:
		return "Mobile"
	}
	return "Unknown"
}

// Product is one row of the catalog table. The catalog is immutable for the
// lifetime of a run.
type Product struct {
	ID       int
	Name     string
	Category Category
	Cost     decimal.Decimal
}

// Product names referenced by the pricing and selection rules.
const (
	NitroColdBrew = "Nitro Cold Brew"
	PremiumMatcha = "Premium Matcha"
	SteakPanini   = "Steak Panini"
	TurkeyClub    = "Turkey Club"
	BLT           = "BLT"
)

// SlowMoverID is the product id of the BLT, the chain's worst seller.
const SlowMoverID = 117

// IsPremium reports whether name is one of the three premium-tier products.
func IsPremium(name string) bool {
	return name == NitroColdBrew || name == PremiumMatcha || name == SteakPanini
}

func product(id int, name string, category Category, cost string) Product {
	return Product{
		ID:       id,
		Name:     name,
		Category: category,
		Cost:     decimal.RequireFromString(cost),
	}
}

// Products builds the 18-row product catalog, ids 101 through 118.
func Products() []Product {
	return []Product{
		product(101, "Espresso", Coffee, "1.20"),
		product(102, "Cappuccino", Coffee, "1.80"),
		product(103, "Latte", Coffee, "1.90"),
		product(104, "Americano", Coffee, "1.00"),
		product(105, "Cold Brew", Coffee, "1.50"),
		product(106, NitroColdBrew, Coffee, "2.50"),
		product(107, "Green Tea", Tea, "0.80"),
		product(108, "Chai Latte", Tea, "1.20"),
		product(109, "Herbal Tea", Tea, "0.70"),
		product(110, PremiumMatcha, Tea, "2.20"),
		product(111, "Croissant", Pastry, "1.00"),
		product(112, "Muffin", Pastry, "0.90"),
		product(113, "Scone", Pastry, "1.10"),
		product(114, "Cinnamon Roll", Pastry, "1.40"),
		product(115, TurkeyClub, Sandwich, "3.50"),
		product(116, "Veggie Wrap", Sandwich, "2.80"),
		product(117, BLT, Sandwich, "3.20"),
		product(118, SteakPanini, Sandwich, "5.50"),
	}
}

// ByCategory returns the catalog rows belonging to the given category, in
// catalog order.
func ByCategory(products []Product, c Category) []Product {
	var subset []Product
	for _, p := range products {
		if p.Category == c {
			subset = append(subset, p)
		}
	}
	return subset
}
