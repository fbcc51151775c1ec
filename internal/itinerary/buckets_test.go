package itinerary

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/models"
)

func place(t models.ItemType, name string, day *int) models.Place {
	return models.Place{
		ID:        uuid.New(),
		Type:      t,
		Name:      name,
		DayNumber: day,
	}
}

func intPtr(n int) *int { return &n }

func TestDayCountFloor(t *testing.T) {
	cases := []struct {
		name string
		city models.CityEntry
		want int
	}{
		{"zero days no items", models.CityEntry{NumberOfDays: 0}, 1},
		{"negative days", models.CityEntry{NumberOfDays: -2}, 1},
		{"authoritative wins", models.CityEntry{NumberOfDays: 5}, 5},
		{
			"estimated from items",
			models.CityEntry{
				NumberOfDays: 0,
				Restaurants: []models.Place{
					place(models.TypeRestaurant, "a", nil),
					place(models.TypeRestaurant, "b", nil),
					place(models.TypeRestaurant, "c", nil),
					place(models.TypeRestaurant, "d", nil),
					place(models.TypeRestaurant, "e", nil),
				},
			},
			2, // ceil(5/4)
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayCount(tc.city); got != tc.want {
				t.Fatalf("DayCount = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLegacyFallbackPlacesEverythingInDayOne(t *testing.T) {
	city := models.CityEntry{
		NumberOfDays: 3,
		Restaurants: []models.Place{
			place(models.TypeRestaurant, "r1", nil),
			place(models.TypeRestaurant, "r2", nil),
			place(models.TypeRestaurant, "r3", nil),
			place(models.TypeRestaurant, "r4", nil),
			place(models.TypeRestaurant, "r5", nil),
		},
		Activities: []models.Place{
			place(models.TypeActivity, "a1", nil),
			place(models.TypeActivity, "a2", nil),
		},
	}

	days := Buckets(city)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if len(days[0].Restaurants) != 5 || len(days[0].Activities) != 2 {
		t.Fatalf("expected all 7 items in day 1, got %d restaurants, %d activities",
			len(days[0].Restaurants), len(days[0].Activities))
	}
	for _, d := range days[1:] {
		if len(d.Restaurants) != 0 || len(d.Activities) != 0 {
			t.Fatalf("expected day %d empty", d.DayNumber)
		}
	}
}

func TestExplicitDayNumbersAreAuthoritative(t *testing.T) {
	city := models.CityEntry{
		NumberOfDays: 3,
		Restaurants: []models.Place{
			place(models.TypeRestaurant, "day2", intPtr(2)),
			place(models.TypeRestaurant, "legacy", nil),
		},
		Activities: []models.Place{
			place(models.TypeActivity, "day3", intPtr(3)),
			place(models.TypeActivity, "clamped high", intPtr(9)),
			place(models.TypeActivity, "clamped low", intPtr(0)),
		},
	}

	days := Buckets(city)
	if got := days[1].Restaurants; len(got) != 1 || got[0].Name != "day2" {
		t.Fatalf("day 2 restaurants = %v", got)
	}
	if got := days[0].Restaurants; len(got) != 1 || got[0].Name != "legacy" {
		t.Fatalf("day 1 restaurants = %v", got)
	}
	// day 3 gets both the explicit item and the clamped-from-9 one
	if got := days[2].Activities; len(got) != 2 {
		t.Fatalf("day 3 activities = %v", got)
	}
	if got := days[0].Activities; len(got) != 1 || got[0].Name != "clamped low" {
		t.Fatalf("day 1 activities = %v", got)
	}
}

func TestBucketsDeterministic(t *testing.T) {
	city := models.CityEntry{
		NumberOfDays: 2,
		Restaurants: []models.Place{
			place(models.TypeRestaurant, "r1", intPtr(1)),
			place(models.TypeRestaurant, "r2", intPtr(2)),
			place(models.TypeRestaurant, "r3", nil),
		},
		Activities: []models.Place{
			place(models.TypeActivity, "a1", nil),
		},
	}

	first := Buckets(city)
	for i := 0; i < 20; i++ {
		if got := Buckets(city); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed from first run", i)
		}
	}
}

func TestEmptyCityYieldsOneEmptyDay(t *testing.T) {
	days := Buckets(models.CityEntry{})
	if len(days) != 1 {
		t.Fatalf("expected exactly 1 day, got %d", len(days))
	}
	if days[0].DayNumber != 1 || len(days[0].Restaurants) != 0 || len(days[0].Activities) != 0 {
		t.Fatalf("unexpected day: %+v", days[0])
	}
}
