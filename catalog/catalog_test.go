package catalog_test

import (
	"testing"

	"datagen/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsShape(t *testing.T) {
	products := catalog.Products()
	require.Len(t, products, 18)

	byCategory := map[catalog.Category]int{}
	for i, p := range products {
		assert.Equal(t, 101+i, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Cost.IsPositive())
		byCategory[p.Category]++
	}

	assert.Equal(t, 6, byCategory[catalog.Coffee])
	assert.Equal(t, 4, byCategory[catalog.Tea])
	assert.Equal(t, 4, byCategory[catalog.Pastry])
	assert.Equal(t, 4, byCategory[catalog.Sandwich])
}

func TestSlowMoverIsTheBLT(t *testing.T) {
	for _, p := range catalog.Products() {
		if p.ID == catalog.SlowMoverID {
			assert.Equal(t, catalog.BLT, p.Name)
			return
		}
	}
	t.Fatal("slow mover id not present in catalog")
}

func TestIsPremium(t *testing.T) {
	assert.True(t, catalog.IsPremium(catalog.NitroColdBrew))
	assert.True(t, catalog.IsPremium(catalog.PremiumMatcha))
	assert.True(t, catalog.IsPremium(catalog.SteakPanini))
	assert.False(t, catalog.IsPremium(catalog.BLT))
	assert.False(t, catalog.IsPremium("Espresso"))
}

func TestByCategory(t *testing.T) {
	products := catalog.Products()

	sandwiches := catalog.ByCategory(products, catalog.Sandwich)
	require.Len(t, sandwiches, 4)
	for _, p := range sandwiches {
		assert.Equal(t, catalog.Sandwich, p.Category)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Coffee", catalog.Coffee.String())
	assert.Equal(t, "Sandwich", catalog.Sandwich.String())
	assert.Equal(t, "Downtown", catalog.Downtown.String())
	assert.Equal(t, "Suburb", catalog.Suburb.String())
	assert.Equal(t, "Mobile", catalog.Mobile.String())
}
