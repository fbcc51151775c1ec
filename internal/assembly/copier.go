// Package assembly implements draft assembly: copying hotels,
// restaurants, and activities from any visible trip into a target
// draft's city and day slot, one item at a time or as a best-effort
// batch with per-item failure reporting.
package assembly

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/models"
)

// Store is the slice of the trip store the assembly engine needs.
// *tripstore.Store satisfies it.
type Store interface {
	AppendItem(ctx context.Context, tripID uuid.UUID, itemType models.ItemType, item models.Place, cityID uuid.UUID, dayNumber *int, requesterID uuid.UUID) (models.Trip, error)
	GetPlace(ctx context.Context, itemType models.ItemType, itemID uuid.UUID, requesterID uuid.UUID) (models.Place, error)
	GetTrip(ctx context.Context, id, requesterID uuid.UUID) (models.Trip, error)
}

// MissingTargetError reports an incomplete copy target. Kind is one of
// "draft", "city", "day".
type MissingTargetError struct {
	Kind string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("select a %s first", e.Kind)
}

// ErrInvalidItem rejects a copy payload without a name.
var ErrInvalidItem = errors.New("item must have a non-empty name")

// copyTimeout bounds each store call so one stuck request fails alone
// instead of hanging its whole batch.
const copyTimeout = 20 * time.Second

// CopyRequest describes one item copy into a target draft.
type CopyRequest struct {
	ItemType    models.ItemType
	Item        models.Place // payload only; a fresh identity is always minted
	DraftID     *uuid.UUID
	CityID      *uuid.UUID
	DayNumber   *int // required unless ItemType is hotel
	RequesterID uuid.UUID
}

// Copier performs single item copies against the trip store.
type Copier struct {
	store Store
}

// NewCopier creates a Copier
func NewCopier(store Store) *Copier {
	return &Copier{store: store}
}

// Copy validates the target and appends the item server-side, returning
// the updated trip so callers can resynchronize derived day buckets.
// Preconditions are checked in order and the first failure wins: draft,
// city, day (non-hotel only), then item name.
func (c *Copier) Copy(ctx context.Context, req CopyRequest) (models.Trip, error) {
	if req.DraftID == nil {
		return models.Trip{}, &MissingTargetError{Kind: "draft"}
	}
	if req.CityID == nil {
		return models.Trip{}, &MissingTargetError{Kind: "city"}
	}
	if req.ItemType.NeedsDay() && req.DayNumber == nil {
		return models.Trip{}, &MissingTargetError{Kind: "day"}
	}
	if req.Item.Name == "" {
		return models.Trip{}, ErrInvalidItem
	}

	ctx, cancel := context.WithTimeout(ctx, copyTimeout)
	defer cancel()

	return c.store.AppendItem(ctx, *req.DraftID, req.ItemType, req.Item, *req.CityID, req.DayNumber, req.RequesterID)
}
