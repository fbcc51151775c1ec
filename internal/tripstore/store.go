// Package tripstore persists trips, their city entries, and the place
// records hanging off each city. It is the single write path for trip
// data; everything above it mutates through these methods and re-reads.
package tripstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"WANDERPLAN_BACK-END/internal/db"
	"WANDERPLAN_BACK-END/internal/models"
	"WANDERPLAN_BACK-END/internal/utils"
)

// Store provides trip persistence over a pgx-compatible querier.
type Store struct {
	db db.Querier
}

// New creates a Store
func New(q db.Querier) *Store {
	return &Store{db: q}
}

// Filter narrows ListTrips results. Nil fields match everything.
type Filter struct {
	IsDraft  *bool
	IsPublic *bool
	OwnerID  *uuid.UUID
	Limit    int
	Offset   int
}

// ItemPatch carries the updatable fields of a place record. Nil fields
// are left unchanged.
type ItemPatch struct {
	Name      *string
	Location  *string
	Rating    *float64
	Review    *string
	Liked     *bool
	DayNumber *int
}

// CreateTrip inserts a trip plus its initial city entries and returns the
// stored trip. Countries and cities summaries are stored single-encoded.
func (s *Store) CreateTrip(ctx context.Context, trip models.Trip, cities []models.CityEntry) (models.Trip, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	// A draft is never public.
	if trip.IsDraft {
		trip.IsPublic = false
	}

	cityNames := make([]string, 0, len(cities))
	for _, c := range cities {
		cityNames = append(cityNames, c.Name)
	}
	trip.Cities = cityNames

	_, err := s.db.Exec(ctx,
		`INSERT INTO trips (id, title, description, start_date, end_date, countries, cities, is_public, is_draft, owner_id, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		trip.ID, trip.Title, trip.Description, trip.StartDate, trip.EndDate,
		utils.EncodeStringArray(trip.Countries), utils.EncodeStringArray(trip.Cities),
		trip.IsPublic, trip.IsDraft, trip.OwnerID, now, now,
	)
	if err != nil {
		return models.Trip{}, err
	}

	trip.CityEntries = make([]models.CityEntry, 0, len(cities))
	for i, c := range cities {
		c.ID = uuid.New()
		c.TripID = trip.ID
		c.Position = i
		if c.NumberOfDays < 1 {
			c.NumberOfDays = 1
		}
		_, err := s.db.Exec(ctx,
			`INSERT INTO trip_cities (id, trip_id, name, country, number_of_days, position)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.TripID, c.Name, c.Country, c.NumberOfDays, c.Position,
		)
		if err != nil {
			return models.Trip{}, err
		}
		c.Hotels = []models.Place{}
		c.Restaurants = []models.Place{}
		c.Activities = []models.Place{}
		trip.CityEntries = append(trip.CityEntries, c)
	}

	return trip, nil
}

// GetTrip loads a trip with its city entries and places. Drafts and
// private trips are visible to their owner only; an invisible trip reads
// as not found so its existence is not leaked.
func (s *Store) GetTrip(ctx context.Context, id, requesterID uuid.UUID) (models.Trip, error) {
	var t models.Trip
	var countries, cities string
	err := s.db.QueryRow(ctx,
		`SELECT id, title, description, start_date, end_date, countries, cities, is_public, is_draft, owner_id, created_at, updated_at
           FROM trips WHERE id = $1`, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.StartDate, &t.EndDate, &countries, &cities,
		&t.IsPublic, &t.IsDraft, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Trip{}, fmt.Errorf("trip: %w", ErrNotFound)
		}
		return models.Trip{}, err
	}

	t.Countries = utils.DecodeStringArray(countries)
	t.Cities = utils.DecodeStringArray(cities)

	if !t.VisibleTo(requesterID) {
		return models.Trip{}, fmt.Errorf("trip: %w", ErrNotFound)
	}

	entries, err := s.loadCityEntries(ctx, t.ID)
	if err != nil {
		return models.Trip{}, err
	}
	t.CityEntries = entries
	return t, nil
}

func (s *Store) loadCityEntries(ctx context.Context, tripID uuid.UUID) ([]models.CityEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, trip_id, name, country, number_of_days, position
           FROM trip_cities WHERE trip_id = $1 ORDER BY position`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.CityEntry, 0)
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var c models.CityEntry
		if err := rows.Scan(&c.ID, &c.TripID, &c.Name, &c.Country, &c.NumberOfDays, &c.Position); err != nil {
			return nil, err
		}
		c.Hotels = []models.Place{}
		c.Restaurants = []models.Place{}
		c.Activities = []models.Place{}
		byID[c.ID] = len(entries)
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	placeRows, err := s.db.Query(ctx,
		`SELECT p.id, p.city_id, p.item_type, p.name, p.location, p.rating, p.review, p.liked, p.day_number, p.created_at
           FROM trip_places p
           JOIN trip_cities c ON c.id = p.city_id
          WHERE c.trip_id = $1
          ORDER BY p.created_at`, tripID)
	if err != nil {
		return nil, err
	}
	defer placeRows.Close()

	for placeRows.Next() {
		var p models.Place
		var itemType string
		if err := placeRows.Scan(&p.ID, &p.CityID, &itemType, &p.Name, &p.Location, &p.Rating, &p.Review, &p.Liked, &p.DayNumber, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Type = models.ItemType(itemType)
		idx, ok := byID[p.CityID]
		if !ok {
			continue
		}
		switch p.Type {
		case models.TypeHotel:
			entries[idx].Hotels = append(entries[idx].Hotels, p)
		case models.TypeRestaurant:
			entries[idx].Restaurants = append(entries[idx].Restaurants, p)
		case models.TypeActivity:
			entries[idx].Activities = append(entries[idx].Activities, p)
		}
	}
	if err := placeRows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ListTrips returns trips matching the filter (without city entries) plus
// the unpaginated total.
func (s *Store) ListTrips(ctx context.Context, f Filter) ([]models.Trip, int, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var total int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM trips
          WHERE ($1::boolean IS NULL OR is_draft = $1)
            AND ($2::boolean IS NULL OR is_public = $2)
            AND ($3::uuid IS NULL OR owner_id = $3)`,
		f.IsDraft, f.IsPublic, f.OwnerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, start_date, end_date, countries, cities, is_public, is_draft, owner_id, created_at, updated_at
           FROM trips
          WHERE ($1::boolean IS NULL OR is_draft = $1)
            AND ($2::boolean IS NULL OR is_public = $2)
            AND ($3::uuid IS NULL OR owner_id = $3)
          ORDER BY created_at DESC
          LIMIT $4 OFFSET $5`,
		f.IsDraft, f.IsPublic, f.OwnerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	trips := make([]models.Trip, 0, limit)
	for rows.Next() {
		var t models.Trip
		var countries, cities string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.StartDate, &t.EndDate, &countries, &cities,
			&t.IsPublic, &t.IsDraft, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		t.Countries = utils.DecodeStringArray(countries)
		t.Cities = utils.DecodeStringArray(cities)
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

// UpdateTrip persists the mutable fields of a trip. Only the owner's rows
// match, so a non-owner update reads as not found.
func (s *Store) UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	if trip.IsDraft {
		trip.IsPublic = false
	}
	trip.UpdatedAt = time.Now()

	tag, err := s.db.Exec(ctx,
		`UPDATE trips
            SET title = $1,
                description = $2,
                start_date = $3,
                end_date = $4,
                countries = $5,
                is_public = $6,
                is_draft = $7,
                updated_at = $8
          WHERE id = $9 AND owner_id = $10`,
		trip.Title, trip.Description, trip.StartDate, trip.EndDate,
		utils.EncodeStringArray(trip.Countries), trip.IsPublic, trip.IsDraft,
		trip.UpdatedAt, trip.ID, trip.OwnerID,
	)
	if err != nil {
		return models.Trip{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.Trip{}, fmt.Errorf("trip: %w", ErrNotFound)
	}
	return trip, nil
}

// DeleteTrip removes a trip. Only the owner may delete; city entries and
// places go with it via FK cascade.
func (s *Store) DeleteTrip(ctx context.Context, id, requesterID uuid.UUID) error {
	var ownerID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT owner_id FROM trips WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("trip: %w", ErrNotFound)
		}
		return err
	}
	if ownerID != requesterID {
		return fmt.Errorf("only the owner can delete this trip: %w", ErrForbidden)
	}

	_, err = s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	return err
}

// AppendItem inserts a new place record under a city of the given trip
// and returns the updated trip. The record always gets a fresh identity;
// copying never reuses the source id. Restaurants and activities must
// carry a day number within the city's range; a day number supplied for a
// hotel is dropped.
func (s *Store) AppendItem(ctx context.Context, tripID uuid.UUID, itemType models.ItemType, item models.Place, cityID uuid.UUID, dayNumber *int, requesterID uuid.UUID) (models.Trip, error) {
	if item.Name == "" {
		return models.Trip{}, fmt.Errorf("item name is required: %w", ErrValidation)
	}

	var ownerID uuid.UUID
	var isDraft bool
	err := s.db.QueryRow(ctx,
		`SELECT owner_id, is_draft FROM trips WHERE id = $1`, tripID).Scan(&ownerID, &isDraft)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Trip{}, fmt.Errorf("draft: %w", ErrNotFound)
		}
		return models.Trip{}, err
	}
	if ownerID != requesterID {
		return models.Trip{}, fmt.Errorf("only the owner can modify this trip: %w", ErrForbidden)
	}

	var numberOfDays int
	err = s.db.QueryRow(ctx,
		`SELECT number_of_days FROM trip_cities WHERE id = $1 AND trip_id = $2`,
		cityID, tripID).Scan(&numberOfDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Trip{}, fmt.Errorf("city: %w", ErrNotFound)
		}
		return models.Trip{}, err
	}

	if itemType.NeedsDay() {
		if dayNumber == nil {
			return models.Trip{}, fmt.Errorf("day is required for %s: %w", itemType, ErrValidation)
		}
		if *dayNumber < 1 || *dayNumber > numberOfDays {
			return models.Trip{}, fmt.Errorf("day: %w", ErrNotFound)
		}
	} else {
		// Hotels are not day-scoped; the legacy client never sent one.
		dayNumber = nil
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO trip_places (id, city_id, item_type, name, location, rating, review, liked, day_number, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.New(), cityID, string(itemType), item.Name, item.Location,
		item.Rating, item.Review, item.Liked, dayNumber, time.Now(),
	)
	if err != nil {
		return models.Trip{}, err
	}

	return s.GetTrip(ctx, tripID, requesterID)
}

// UpdateItem patches a place record owned (transitively) by the
// requester and returns the stored row.
func (s *Store) UpdateItem(ctx context.Context, itemType models.ItemType, itemID uuid.UUID, patch ItemPatch, requesterID uuid.UUID) (models.Place, error) {
	var cur models.Place
	var curType string
	err := s.db.QueryRow(ctx,
		`SELECT p.id, p.city_id, p.item_type, p.name, p.location, p.rating, p.review, p.liked, p.day_number, p.created_at
           FROM trip_places p
           JOIN trip_cities c ON c.id = p.city_id
           JOIN trips t ON t.id = c.trip_id
          WHERE p.id = $1 AND p.item_type = $2 AND t.owner_id = $3`,
		itemID, string(itemType), requesterID).Scan(
		&cur.ID, &cur.CityID, &curType, &cur.Name, &cur.Location, &cur.Rating, &cur.Review, &cur.Liked, &cur.DayNumber, &cur.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Place{}, fmt.Errorf("%s: %w", itemType, ErrNotFound)
		}
		return models.Place{}, err
	}
	cur.Type = models.ItemType(curType)

	if patch.Name != nil {
		if *patch.Name == "" {
			return models.Place{}, fmt.Errorf("item name cannot be empty: %w", ErrValidation)
		}
		cur.Name = *patch.Name
	}
	if patch.Location != nil {
		cur.Location = *patch.Location
	}
	if patch.Rating != nil {
		cur.Rating = patch.Rating
	}
	if patch.Review != nil {
		cur.Review = patch.Review
	}
	if patch.Liked != nil {
		cur.Liked = patch.Liked
	}
	if patch.DayNumber != nil && cur.Type.NeedsDay() {
		cur.DayNumber = patch.DayNumber
	}

	_, err = s.db.Exec(ctx,
		`UPDATE trip_places
            SET name = $1,
                location = $2,
                rating = $3,
                review = $4,
                liked = $5,
                day_number = $6
          WHERE id = $7`,
		cur.Name, cur.Location, cur.Rating, cur.Review, cur.Liked, cur.DayNumber, cur.ID,
	)
	if err != nil {
		return models.Place{}, err
	}
	return cur, nil
}

// DeleteItem removes a place record owned (transitively) by the requester.
func (s *Store) DeleteItem(ctx context.Context, itemType models.ItemType, itemID uuid.UUID, requesterID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM trip_places p
          USING trip_cities c, trips t
          WHERE p.id = $1 AND p.item_type = $2
            AND c.id = p.city_id AND t.id = c.trip_id AND t.owner_id = $3`,
		itemID, string(itemType), requesterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", itemType, ErrNotFound)
	}
	return nil
}

// GetPlace loads a single place record from any trip visible to the
// requester. The assembly copier uses it to resolve source items.
func (s *Store) GetPlace(ctx context.Context, itemType models.ItemType, itemID uuid.UUID, requesterID uuid.UUID) (models.Place, error) {
	var p models.Place
	var curType string
	err := s.db.QueryRow(ctx,
		`SELECT p.id, p.city_id, p.item_type, p.name, p.location, p.rating, p.review, p.liked, p.day_number, p.created_at
           FROM trip_places p
           JOIN trip_cities c ON c.id = p.city_id
           JOIN trips t ON t.id = c.trip_id
          WHERE p.id = $1 AND p.item_type = $2
            AND (t.owner_id = $3 OR (t.is_public AND NOT t.is_draft))`,
		itemID, string(itemType), requesterID).Scan(
		&p.ID, &p.CityID, &curType, &p.Name, &p.Location, &p.Rating, &p.Review, &p.Liked, &p.DayNumber, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Place{}, fmt.Errorf("%s: %w", itemType, ErrNotFound)
		}
		return models.Place{}, err
	}
	p.Type = models.ItemType(curType)
	return p, nil
}
