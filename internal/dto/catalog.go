package dto

// CitiesResponse lists the known cities of a country
type CitiesResponse struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

// CountriesResponse lists every country in the catalog
type CountriesResponse struct {
	Countries []string `json:"countries"`
}

// SuggestionItem is one reference place offered for a city
type SuggestionItem struct {
	Name     string          `json:"name"`
	Location string          `json:"location"`
	Rating   *float64        `json:"rating"`
	Review   *ReviewResponse `json:"review"`
}

// SuggestionsResponse lists reference places for a city and item type
type SuggestionsResponse struct {
	City        string           `json:"city"`
	ItemType    string           `json:"item_type"`
	Suggestions []SuggestionItem `json:"suggestions"`
}
