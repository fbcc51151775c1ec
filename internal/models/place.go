package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ItemType tags a place record as a hotel, restaurant, or activity.
// The three are structurally identical; only the tag and day-scoping
// rules differ.
type ItemType string

const (
	TypeHotel      ItemType = "hotel"
	TypeRestaurant ItemType = "restaurant"
	TypeActivity   ItemType = "activity"
)

// ParseItemType validates a wire-level item type string.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case TypeHotel, TypeRestaurant, TypeActivity:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

// NeedsDay reports whether records of this type carry a day assignment.
// Hotels span the whole city stay and are never day-scoped.
func (t ItemType) NeedsDay() bool {
	return t == TypeRestaurant || t == TypeActivity
}

// Place is a hotel, restaurant, or activity attached to a city entry.
// Liked is tri-state: nil means the user never rated it. DayNumber is nil
// for hotels and for legacy rows written before day tracking existed.
type Place struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CityID    uuid.UUID `json:"city_id" db:"city_id"`
	Type      ItemType  `json:"item_type" db:"item_type"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Rating    *float64  `json:"rating" db:"rating"`
	Review    *string   `json:"review" db:"review"`
	Liked     *bool     `json:"liked" db:"liked"`
	DayNumber *int      `json:"day_number" db:"day_number"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
