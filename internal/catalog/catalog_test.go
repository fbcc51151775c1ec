package catalog

import (
	"reflect"
	"testing"
)

func TestCitiesForKnownCountry(t *testing.T) {
	c, err := NewCityCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	cities := c.CitiesFor("Japan")
	if len(cities) == 0 {
		t.Fatal("expected cities for Japan")
	}
	want := []string{"Hiroshima", "Kyoto", "Nara", "Osaka", "Sapporo", "Tokyo"}
	if !reflect.DeepEqual(cities, want) {
		t.Fatalf("cities = %v, want %v", cities, want)
	}
}

func TestCitiesForIsCaseInsensitive(t *testing.T) {
	c, err := NewCityCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	if !reflect.DeepEqual(c.CitiesFor("  jApAn "), c.CitiesFor("Japan")) {
		t.Fatal("expected case-insensitive country lookup")
	}
}

func TestCitiesForUnknownCountry(t *testing.T) {
	c, err := NewCityCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	if got := c.CitiesFor("Atlantis"); len(got) != 0 {
		t.Fatalf("expected no cities, got %v", got)
	}
}

func TestCountriesSorted(t *testing.T) {
	c, err := NewCityCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	countries := c.Countries()
	if len(countries) < 2 {
		t.Fatalf("expected several countries, got %v", countries)
	}
	for i := 1; i < len(countries); i++ {
		if countries[i-1] >= countries[i] {
			t.Fatalf("countries not sorted: %v", countries)
		}
	}
}
