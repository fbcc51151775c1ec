package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a travel plan assembled by a user. A trip is either a
// draft (private staging area) or finalized; finalized trips may be made
// public so other users can browse them and copy items into their own
// drafts. The invariant is_draft -> !is_public is enforced on write.
type Trip struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	StartDate   time.Time   `json:"start_date" db:"start_date"`
	EndDate     time.Time   `json:"end_date" db:"end_date"`
	Countries   []string    `json:"countries" db:"countries"`
	Cities      []string    `json:"cities" db:"cities"`
	IsPublic    bool        `json:"is_public" db:"is_public"`
	IsDraft     bool        `json:"is_draft" db:"is_draft"`
	OwnerID     uuid.UUID   `json:"owner_id" db:"owner_id"`
	CityEntries []CityEntry `json:"city_entries"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// CityEntry is one city slot within a trip. It owns the trip's hotels,
// restaurants, and activities for that city plus the number of days the
// traveller spends there.
type CityEntry struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TripID       uuid.UUID `json:"trip_id" db:"trip_id"`
	Name         string    `json:"name" db:"name"`
	Country      string    `json:"country" db:"country"`
	NumberOfDays int       `json:"number_of_days" db:"number_of_days"`
	Position     int       `json:"position" db:"position"`
	Hotels       []Place   `json:"hotels"`
	Restaurants  []Place   `json:"restaurants"`
	Activities   []Place   `json:"activities"`
}

// VisibleTo reports whether the trip can be read by the given user.
// Drafts and private finalized trips are owner-only.
func (t *Trip) VisibleTo(userID uuid.UUID) bool {
	if t.IsPublic && !t.IsDraft {
		return true
	}
	return t.OwnerID == userID
}
