package dto

// CityPayload is a city slot supplied when creating or updating a trip
type CityPayload struct {
	Name         string `json:"name"`
	Country      string `json:"country"`
	NumberOfDays int    `json:"number_of_days"`
}

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	EndDate     string        `json:"end_date"`   // ISO 8601 format: YYYY-MM-DD or RFC3339
	Countries   []string      `json:"countries"`
	Cities      []CityPayload `json:"cities"`
	IsPublic    bool          `json:"is_public"`
	IsDraft     *bool         `json:"is_draft"` // defaults to true
}

// UpdateTripRequest represents fields allowed to update a trip
// All fields are optional; only provided ones will be updated
type UpdateTripRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Countries   []string `json:"countries"`
	IsPublic    *bool    `json:"is_public"`
	IsDraft     *bool    `json:"is_draft"`
}

// PlaceResponse represents a hotel/restaurant/activity in responses
type PlaceResponse struct {
	ID        string          `json:"id"`
	ItemType  string          `json:"item_type"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Rating    *float64        `json:"rating"`
	Review    *ReviewResponse `json:"review"`
	Liked     *bool           `json:"liked"`
	DayNumber *int            `json:"day_number"`
}

// ReviewResponse is the decoded review union: plain text or third-party
// sourced metadata
type ReviewResponse struct {
	Kind       string `json:"kind"`
	Text       string `json:"text,omitempty"`
	LocationID string `json:"location_id,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	NumReviews int    `json:"num_reviews,omitempty"`
	WebURL     string `json:"web_url,omitempty"`
}

// DayResponse is one derived day bucket of a city entry
type DayResponse struct {
	DayNumber   int             `json:"day_number"`
	Restaurants []PlaceResponse `json:"restaurants"`
	Activities  []PlaceResponse `json:"activities"`
}

// CityEntryResponse represents a city entry with its places and derived
// day buckets
type CityEntryResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Country      string          `json:"country"`
	NumberOfDays int             `json:"number_of_days"`
	Hotels       []PlaceResponse `json:"hotels"`
	Restaurants  []PlaceResponse `json:"restaurants"`
	Activities   []PlaceResponse `json:"activities"`
	Days         []DayResponse   `json:"days"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Countries   []string            `json:"countries"`
	Cities      []string            `json:"cities"`
	IsPublic    bool                `json:"is_public"`
	IsDraft     bool                `json:"is_draft"`
	OwnerID     string              `json:"owner_id"`
	CityEntries []CityEntryResponse `json:"city_entries"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// TripEnvelope wraps a single trip
type TripEnvelope struct {
	Trip TripResponse `json:"trip"`
}

// TripListItem minimal list item
type TripListItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Countries   []string `json:"countries"`
	Cities      []string `json:"cities"`
	IsPublic    bool     `json:"is_public"`
	IsDraft     bool     `json:"is_draft"`
	OwnerID     string   `json:"owner_id"`
	CreatedAt   string   `json:"created_at"`
}

// Pagination info
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips      []TripListItem `json:"trips"`
	Pagination Pagination     `json:"pagination"`
}
