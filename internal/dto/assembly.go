package dto

// SetTargetRequest sets (or changes) the assembly target. Any change
// clears the current selections.
type SetTargetRequest struct {
	DraftID   *string `json:"draft_id"`
	CityID    *string `json:"city_id"`
	DayNumber *int    `json:"day_number"`
}

// ToggleSelectionRequest toggles one source item in/out of the selection
type ToggleSelectionRequest struct {
	ItemType string `json:"item_type"` // hotel | restaurant | activity
	ItemID   string `json:"item_id"`
}

// SessionResponse echoes the current assembly session state
type SessionResponse struct {
	DraftID             *string  `json:"draft_id"`
	CityID              *string  `json:"city_id"`
	DayNumber           *int     `json:"day_number"`
	SelectedHotels      []string `json:"selected_hotels"`
	SelectedRestaurants []string `json:"selected_restaurants"`
	SelectedActivities  []string `json:"selected_activities"`
}

// CopyFailure names one item that could not be copied
type CopyFailure struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Error  string `json:"error"`
}

// CopyReportResponse is the aggregate outcome of a copy batch
type CopyReportResponse struct {
	Copied   int           `json:"copied"`
	Failures []CopyFailure `json:"failures"`
	Message  string        `json:"message"`
	Trip     *TripResponse `json:"trip,omitempty"` // re-fetched target draft
}
