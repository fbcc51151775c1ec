package dto

// ItemPayload is the writable portion of a place record
type ItemPayload struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Rating   *float64 `json:"rating"`
	Review   *string  `json:"review"`
	Liked    *bool    `json:"liked"`
}

// AppendItemRequest appends one item under a trip's city
type AppendItemRequest struct {
	ItemType  string      `json:"item_type"` // hotel | restaurant | activity
	CityID    string      `json:"city_id"`
	DayNumber *int        `json:"day_number"` // required for restaurant/activity
	Item      ItemPayload `json:"item"`
}

// UpdateItemRequest represents fields allowed to update an item
// All fields are optional; only provided ones will be updated
type UpdateItemRequest struct {
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Rating    *float64 `json:"rating"`
	Review    *string  `json:"review"`
	Liked     *bool    `json:"liked"`
	DayNumber *int     `json:"day_number"`
}

// ItemEnvelope wraps a single item
type ItemEnvelope struct {
	Item PlaceResponse `json:"item"`
}
