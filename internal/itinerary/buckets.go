// Package itinerary derives per-day views of a city entry's restaurants
// and activities. The persisted model did not always record a day
// assignment, so display code needs a deterministic reconstruction.
package itinerary

import "WANDERPLAN_BACK-END/internal/models"

// itemsPerDay is the estimate used when a city entry carries no
// authoritative day count: one day per four planned items.
const itemsPerDay = 4

// Day is the derived association of restaurants and activities with one
// day of the stay in a city. DayNumber is 1-based.
type Day struct {
	DayNumber   int
	Restaurants []models.Place
	Activities  []models.Place
}

// DayCount resolves how many day buckets a city entry has. An
// authoritative NumberOfDays wins; otherwise the count is estimated from
// the item total. The result is always at least 1 so there is always a
// selectable day.
func DayCount(city models.CityEntry) int {
	if city.NumberOfDays >= 1 {
		return city.NumberOfDays
	}
	itemCount := len(city.Restaurants) + len(city.Activities)
	if itemCount == 0 {
		return 1
	}
	days := (itemCount + itemsPerDay - 1) / itemsPerDay
	if days < 1 {
		days = 1
	}
	return days
}

// Buckets partitions a city entry's restaurants and activities into day
// buckets. Items carrying an explicit day number are placed there
// (clamped into range). Items without one all land in day 1: guessing a
// day of visit that was never recorded would fabricate an association,
// so later days start empty instead.
//
// Pure function: identical input yields identical output.
func Buckets(city models.CityEntry) []Day {
	count := DayCount(city)

	days := make([]Day, count)
	for i := range days {
		days[i] = Day{
			DayNumber:   i + 1,
			Restaurants: []models.Place{},
			Activities:  []models.Place{},
		}
	}

	for _, p := range city.Restaurants {
		i := bucketIndex(p, count)
		days[i].Restaurants = append(days[i].Restaurants, p)
	}
	for _, p := range city.Activities {
		i := bucketIndex(p, count)
		days[i].Activities = append(days[i].Activities, p)
	}

	return days
}

// bucketIndex maps a place to a zero-based day index. Legacy rows with no
// day number go to day 1; out-of-range day numbers clamp into range.
func bucketIndex(p models.Place, count int) int {
	if p.DayNumber == nil {
		return 0
	}
	n := *p.DayNumber
	if n < 1 {
		return 0
	}
	if n > count {
		return count - 1
	}
	return n - 1
}
