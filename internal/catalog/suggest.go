package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"WANDERPLAN_BACK-END/internal/db"
	"WANDERPLAN_BACK-END/internal/models"
)

// Suggestion is one reference place offered for a city.
type Suggestion struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Rating   *float64 `json:"rating"`
	Review   *string  `json:"review"`
}

// Suggestions reads the seeded reference catalog, with an optional Redis
// cache in front of Postgres. A nil redis client disables caching.
type Suggestions struct {
	db    db.Querier
	redis *redis.Client
	ttl   time.Duration
}

// NewSuggestions creates a Suggestions service.
func NewSuggestions(database db.Querier, redisClient *redis.Client, ttl time.Duration) *Suggestions {
	return &Suggestions{db: database, redis: redisClient, ttl: ttl}
}

// ForCity returns the reference places of one type for a city, sorted by
// rating descending. Cache errors are logged and fall through to
// Postgres.
func (s *Suggestions) ForCity(ctx context.Context, city string, itemType models.ItemType) ([]Suggestion, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}

	key := cacheKey(city, itemType)
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			var suggestions []Suggestion
			if err := json.Unmarshal([]byte(cached), &suggestions); err == nil {
				return suggestions, nil
			}
			log.Printf("suggestions cache decode error for %s: %v", key, err)
		} else if err != redis.Nil {
			log.Printf("suggestions cache read error for %s: %v", key, err)
		}
	}

	rows, err := s.db.Query(ctx, `
		SELECT name, location, rating, review
		FROM reference_places
		WHERE LOWER(city) = LOWER($1) AND item_type = $2
		ORDER BY rating DESC NULLS LAST, name`,
		city, string(itemType))
	if err != nil {
		return nil, fmt.Errorf("query reference places: %w", err)
	}
	defer rows.Close()

	suggestions := []Suggestion{}
	for rows.Next() {
		var sg Suggestion
		if err := rows.Scan(&sg.Name, &sg.Location, &sg.Rating, &sg.Review); err != nil {
			return nil, fmt.Errorf("scan reference place: %w", err)
		}
		suggestions = append(suggestions, sg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reference places: %w", err)
	}

	if s.redis != nil {
		if encoded, err := json.Marshal(suggestions); err == nil {
			if err := s.redis.Set(ctx, key, encoded, s.ttl).Err(); err != nil {
				log.Printf("suggestions cache write error for %s: %v", key, err)
			}
		}
	}
	return suggestions, nil
}

func cacheKey(city string, itemType models.ItemType) string {
	return "suggestions:" + strings.ToLower(city) + ":" + string(itemType)
}
