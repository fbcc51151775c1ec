package models

import (
	"encoding/json"
	"strings"
)

// ReviewKind discriminates the two shapes the review column can carry.
type ReviewKind string

const (
	ReviewPlainText ReviewKind = "plain_text"
	ReviewSourced   ReviewKind = "sourced_metadata"
)

// SourcedMetadata is the structured blob a third-party places lookup
// writes into the review field: a location id, an image, a review count,
// and a link back to the source.
type SourcedMetadata struct {
	LocationID string `json:"locationId"`
	ImageURL   string `json:"imageUrl"`
	NumReviews int    `json:"numReviews"`
	WebURL     string `json:"webUrl"`
}

// Review is the tagged union decoded from the overloaded review column:
// either free-text written by a human, or SourcedMetadata.
type Review struct {
	Kind ReviewKind       `json:"kind"`
	Text string           `json:"text,omitempty"`
	Meta *SourcedMetadata `json:"meta,omitempty"`
}

// ParseReview decides the shape of a raw review value by attempting a
// structured parse first and falling back to plain text. A JSON object
// only counts as sourced metadata when at least one known field is set,
// so a review that merely looks like JSON stays plain text.
func ParseReview(raw string) Review {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var meta SourcedMetadata
		if err := json.Unmarshal([]byte(trimmed), &meta); err == nil {
			if meta.LocationID != "" || meta.ImageURL != "" || meta.WebURL != "" || meta.NumReviews != 0 {
				return Review{Kind: ReviewSourced, Meta: &meta}
			}
		}
	}
	return Review{Kind: ReviewPlainText, Text: raw}
}
