package generator

import (
	"fmt"
	"testing"

	"datagen/catalog"

	"github.com/stretchr/testify/assert"
)

var allLocations = []catalog.Location{catalog.Downtown, catalog.Campus, catalog.Suburb}

func TestDistributionSumsToOne(t *testing.T) {
	for hour := 6; hour < 22; hour++ {
		for _, location := range allLocations {
			for day := 0; day < 7; day++ {
				t.Run(fmt.Sprintf("hour=%d/%s/day=%d", hour, location, day), func(t *testing.T) {
					dist := CategoryDistribution(hour, location, day)

					sum := 0.0
					for _, p := range dist {
						assert.Greater(t, p, 0.0)
						// The 0.01 clamp happens before renormalization, so
						// the smallest normalized share is floor/sum.
						assert.GreaterOrEqual(t, p, 0.008)
						sum += p
					}
					assert.InDelta(t, 1.0, sum, 1e-9)
				})
			}
		}
	}
}

func TestCampusMorningRushFavorsCoffee(t *testing.T) {
	// Campus + morning rush + Monday boosts compound.
	dist := CategoryDistribution(8, catalog.Campus, 0)

	assert.GreaterOrEqual(t, dist[catalog.Coffee]-dist[catalog.Sandwich], 0.30)
}

func TestDowntownLunchFavorsSandwiches(t *testing.T) {
	dist := CategoryDistribution(12, catalog.Downtown, 2)

	assert.Greater(t, dist[catalog.Sandwich], dist[catalog.Coffee])
	assert.Greater(t, dist[catalog.Sandwich], dist[catalog.Tea])
	assert.Greater(t, dist[catalog.Sandwich], dist[catalog.Pastry])
}

func TestSuburbPrefersTeaOverCoffee(t *testing.T) {
	dist := CategoryDistribution(15, catalog.Suburb, 2)

	assert.Greater(t, dist[catalog.Tea], dist[catalog.Coffee])
}

func TestClampKeepsEveryCategoryPossible(t *testing.T) {
	// Campus morning on a Monday pushes the sandwich weight negative before
	// the clamp kicks in.
	dist := CategoryDistribution(7, catalog.Campus, 0)

	assert.Greater(t, dist[catalog.Sandwich], 0.0)
	assert.Less(t, dist[catalog.Sandwich], 0.02)
}

func TestDistributionIsPure(t *testing.T) {
	first := CategoryDistribution(12, catalog.Downtown, 4)
	second := CategoryDistribution(12, catalog.Downtown, 4)

	assert.Equal(t, first, second)
}
