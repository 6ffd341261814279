package generator

import (
	"math/rand"
	"time"

	"datagen/catalog"
)

const (
	// Stores operate 06:00 through 21:59.
	openingHour = 6
	closingHour = 22

	windowDays = 14

	firstTransactionID = 1000
)

// Base transaction volume per operating hour. Peaks at the 8am rush and the
// noon lunch wave.
var baseHourlyActivity = map[int]int{
	6: 5, 7: 15, 8: 30, 9: 20, 10: 12,
	11: 15, 12: 35, 13: 30, 14: 10,
	15: 8, 16: 12, 17: 15, 18: 10,
	19: 8, 20: 5, 21: 3,
}

// Per-transaction store probabilities, in order {Downtown, Campus, Suburb}.
var (
	weekdayLocationProbs = [3]float64{0.40, 0.45, 0.15}
	weekendLocationProbs = [3]float64{0.25, 0.15, 0.60}
)

// Schedule generates the full transaction sequence for the 14-day window
// ending the day before now. Records are appended in generation order with
// ids incrementing from 1000.
func Schedule(rng *rand.Rand, products []catalog.Product, now time.Time) []Transaction {
	endDate := midnight(now).AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -(windowDays - 1))

	// One multiplier for the whole run: a slow or busy fortnight shifts
	// every hour together, the relative hourly shape stays fixed.
	globalMultiplier := 0.90 + rng.Float64()*0.20

	promoDay := firstFriday(startDate)

	var transactions []Transaction
	id := firstTransactionID

	for day := 0; day < windowDays; day++ {
		date := startDate.AddDate(0, 0, day)
		dayOfWeek := mondayIndexed(date.Weekday())

		dayFactor := 1.0
		if dayOfWeek >= 5 { // weekend
			dayFactor = 0.55
		}
		if dayOfWeek == 4 { // Friday runs busier
			dayFactor = 1.15
		}
		if date.Equal(promoDay) { // promotional Friday
			dayFactor = 1.5
		}

		for hour := openingHour; hour < closingHour; hour++ {
			count := int(float64(baseHourlyActivity[hour]) * globalMultiplier * dayFactor)

			for i := 0; i < count; i++ {
				minute := rng.Intn(60)
				timestamp := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
				location := drawLocation(rng, dayOfWeek >= 5)

				transactions = append(transactions, Generate(rng, id, timestamp, location, dayOfWeek, products))
				id++
			}
		}
	}

	return transactions
}

func drawLocation(rng *rand.Rand, weekend bool) catalog.Location {
	probs := weekdayLocationProbs
	if weekend {
		probs = weekendLocationProbs
	}
	r := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return catalog.Locations[i]
		}
	}
	return catalog.Locations[len(catalog.Locations)-1]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayIndexed converts time.Weekday (Sunday = 0) to the scheme used by the
// demand tables (Monday = 0, Sunday = 6).
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func firstFriday(startDate time.Time) time.Time {
	d := startDate
	for d.Weekday() != time.Friday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
