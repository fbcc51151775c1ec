// Package catalog serves the reference data behind trip planning: the
// country-to-cities lookup used by the trip creation form, and seeded
// place suggestions per city.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed cities.json
var citiesJSON []byte

// CityCatalog maps countries to their known cities. Read-only after
// construction, safe for concurrent use.
type CityCatalog struct {
	byCountry map[string][]string // key is lowercased country name
	countries []string
}

// NewCityCatalog parses the embedded dataset.
func NewCityCatalog() (*CityCatalog, error) {
	var raw map[string][]string
	if err := json.Unmarshal(citiesJSON, &raw); err != nil {
		return nil, fmt.Errorf("parse cities dataset: %w", err)
	}

	c := &CityCatalog{byCountry: make(map[string][]string, len(raw))}
	for country, cities := range raw {
		sorted := append([]string(nil), cities...)
		sort.Strings(sorted)
		c.byCountry[strings.ToLower(country)] = sorted
		c.countries = append(c.countries, country)
	}
	sort.Strings(c.countries)
	return c, nil
}

// Countries returns every country in the catalog, sorted.
func (c *CityCatalog) Countries() []string {
	return append([]string(nil), c.countries...)
}

// CitiesFor returns the cities of a country, matched case-insensitively.
// Unknown countries yield an empty list, not an error.
func (c *CityCatalog) CitiesFor(country string) []string {
	cities := c.byCountry[strings.ToLower(strings.TrimSpace(country))]
	return append([]string(nil), cities...)
}
