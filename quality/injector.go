// Package quality corrupts a finished transaction set to mimic real-world
// dirty data: dangling references, null fields and duplicated rows. The
// corrupted dataset is the intended output of the generator, not a defect.
package quality

import (
	"math/rand"
	"slices"

	"datagen/catalog"
	"datagen/generator"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// Product ids that exist in no catalog: rows pointing at them become
// orphaned references.
var orphanProductIDs = []int{199, 200, 201}

// Inject applies the five corruption passes and returns a new slice sorted
// by timestamp. The input is left untouched so the clean dataset stays
// available for verification.
func Inject(rng *rand.Rand, transactions []generator.Transaction) []generator.Transaction {
	rows := make([]generator.Transaction, len(transactions))
	copy(rows, transactions)

	orphanReferences(rng, rows)
	boostSlowMover(rng, rows)
	nullQuantities(rng, rows)
	nullRevenues(rng, rows)
	rows = duplicateRows(rng, rows)

	// Stable sort interleaves the duplicates naturally instead of leaving
	// them trailing at the end.
	slices.SortStableFunc(rows, func(a, b generator.Transaction) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return rows
}

// Pass 1: 8 to 15 rows get a product id that no catalog row carries.
func orphanReferences(rng *rand.Rand, rows []generator.Transaction) {
	n := 8 + rng.Intn(8)
	for _, i := range sampleIndices(rng, n, len(rows)) {
		rows[i].ProductID = orphanProductIDs[rng.Intn(len(orphanProductIDs))]
	}
}

// Pass 2: one store's clerk habitually keys the BLT code. 3 to 8 rows of a
// randomly chosen location are forced to the slow mover's id.
func boostSlowMover(rng *rand.Rand, rows []generator.Transaction) {
	n := 3 + rng.Intn(6)
	location := catalog.Locations[rng.Intn(len(catalog.Locations))]

	var subset []int
	for i, row := range rows {
		if row.Location == location {
			subset = append(subset, i)
		}
	}
	if len(subset) < n {
		return
	}
	for _, j := range sampleIndices(rng, n, len(subset)) {
		rows[subset[j]].ProductID = catalog.SlowMoverID
	}
}

// Pass 3: 3 to 7 rows lose their quantity.
func nullQuantities(rng *rand.Rand, rows []generator.Transaction) {
	n := 3 + rng.Intn(5)
	for _, i := range sampleIndices(rng, n, len(rows)) {
		rows[i].Quantity = nil
	}
}

// Pass 4: 2 to 5 rows lose their revenue.
func nullRevenues(rng *rand.Rand, rows []generator.Transaction) {
	n := 2 + rng.Intn(4)
	for _, i := range sampleIndices(rng, n, len(rows)) {
		rows[i].Revenue = nil
	}
}

// Pass 5: 2 to 5 rows are appended again verbatim, transaction id included.
// Duplicate ids in the output are an expected artifact.
func duplicateRows(rng *rand.Rand, rows []generator.Transaction) []generator.Transaction {
	n := 2 + rng.Intn(4)
	if n > len(rows) {
		n = len(rows)
	}
	for _, i := range sampleIndices(rng, n, len(rows)) {
		rows = append(rows, rows[i])
	}
	return rows
}

// sampleIndices draws n distinct indices in [0, size) from the stream. A
// bitmap tracks what was already drawn so every pass samples without
// replacement.
func sampleIndices(rng *rand.Rand, n, size int) []int {
	if n > size {
		n = size
	}
	drawn := roaring64.New()
	indices := make([]int, 0, n)
	for len(indices) < n {
		i := rng.Intn(size)
		if drawn.Contains(uint64(i)) {
			continue
		}
		drawn.Add(uint64(i))
		indices = append(indices, i)
	}
	return indices
}
