package assembly

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/models"
)

// ErrNoSelection rejects a copy batch with nothing selected.
var ErrNoSelection = errors.New("select at least one item")

// ItemCopier is the single-item operation a session fans out over.
type ItemCopier interface {
	Copy(ctx context.Context, req CopyRequest) (models.Trip, error)
}

// Failure names one item of a batch that could not be copied.
type Failure struct {
	ItemID uuid.UUID
	Name   string
	Err    string
}

// Report aggregates the outcome of one copy batch. The batch is not
// transactional: Copied counts items that landed even when Failures is
// non-empty, and nothing is rolled back.
type Report struct {
	Copied   int
	Failures []Failure
	Trip     *models.Trip // re-fetched target draft, nil if the re-fetch failed
}

// Message renders the user-facing summary: successes first, then every
// named failure.
func (r Report) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d item(s) copied successfully", r.Copied)
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "; %s: %s", f.Name, f.Err)
	}
	return b.String()
}

// Session tracks one user's assembly state: the copy target and the
// multi-select sets of candidate items, one set per item type. Selection
// is scoped to whatever source trip the user is looking at; changing the
// target always clears it.
type Session struct {
	mu     sync.Mutex
	userID uuid.UUID

	draftID   *uuid.UUID
	cityID    *uuid.UUID
	dayNumber *int

	selected map[models.ItemType]map[uuid.UUID]struct{}

	copier ItemCopier
	store  Store
}

// NewSession creates a session for one user.
func NewSession(userID uuid.UUID, copier ItemCopier, store Store) *Session {
	return &Session{
		userID:   userID,
		copier:   copier,
		store:    store,
		selected: emptySelection(),
	}
}

func emptySelection() map[models.ItemType]map[uuid.UUID]struct{} {
	return map[models.ItemType]map[uuid.UUID]struct{}{
		models.TypeHotel:      {},
		models.TypeRestaurant: {},
		models.TypeActivity:   {},
	}
}

// SetTarget replaces the copy target. Any change to draft, city, or day
// clears every selection set: stale selections must never be copied into
// a newly chosen, unrelated target.
func (s *Session) SetTarget(draftID, cityID *uuid.UUID, dayNumber *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uuidPtrEqual(s.draftID, draftID) && uuidPtrEqual(s.cityID, cityID) && intPtrEqual(s.dayNumber, dayNumber) {
		return
	}
	s.draftID = draftID
	s.cityID = cityID
	s.dayNumber = dayNumber
	s.selected = emptySelection()
}

// Toggle adds the item to the selection set for its type, or removes it
// if already present. Always succeeds.
func (s *Session) Toggle(itemType models.ItemType, itemID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.selected[itemType]
	if _, ok := set[itemID]; ok {
		delete(set, itemID)
	} else {
		set[itemID] = struct{}{}
	}
}

// Target returns the current copy target.
func (s *Session) Target() (draftID, cityID *uuid.UUID, dayNumber *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftID, s.cityID, s.dayNumber
}

// Selected returns the sorted ids currently selected for one item type.
func (s *Session) Selected(itemType models.ItemType) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(s.selected[itemType]))
	for id := range s.selected[itemType] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// selectionItem pairs a selected id with its item type for the fan-out.
type selectionItem struct {
	itemType models.ItemType
	itemID   uuid.UUID
}

// CopySelected validates the target, then issues one copy operation per
// selected item. Validation is all-or-nothing: an incomplete target or
// an empty selection aborts the whole batch before any operation runs.
// Execution is not: accepted items are copied independently and
// concurrently, failures are collected per item, and successes are never
// rolled back. Selections are cleared on completion either way so a
// half-done batch cannot be resubmitted.
func (s *Session) CopySelected(ctx context.Context) (Report, error) {
	s.mu.Lock()
	draftID, cityID, dayNumber := s.draftID, s.cityID, s.dayNumber

	items := make([]selectionItem, 0)
	for _, itemType := range []models.ItemType{models.TypeHotel, models.TypeRestaurant, models.TypeActivity} {
		for id := range s.selected[itemType] {
			items = append(items, selectionItem{itemType: itemType, itemID: id})
		}
	}
	s.mu.Unlock()

	// Target must be complete before anything is issued.
	if draftID == nil {
		return Report{}, &MissingTargetError{Kind: "draft"}
	}
	if cityID == nil {
		return Report{}, &MissingTargetError{Kind: "city"}
	}
	if dayNumber == nil {
		for _, it := range items {
			if it.itemType.NeedsDay() {
				return Report{}, &MissingTargetError{Kind: "day"}
			}
		}
	}
	if len(items) == 0 {
		return Report{}, ErrNoSelection
	}

	// Fan out one copy per item, join all. No ordering guarantee within
	// the batch; each copy becomes a distinct record either way.
	type outcome struct {
		item selectionItem
		name string
		err  error
	}
	results := make([]outcome, len(items))

	var wg sync.WaitGroup
	for i, it := range items {
		wg.Add(1)
		go func(i int, it selectionItem) {
			defer wg.Done()

			name := it.itemID.String()
			payload, err := s.store.GetPlace(ctx, it.itemType, it.itemID, s.userID)
			if err == nil {
				name = payload.Name
				_, err = s.copier.Copy(ctx, CopyRequest{
					ItemType:    it.itemType,
					Item:        payload,
					DraftID:     draftID,
					CityID:      cityID,
					DayNumber:   dayNumber,
					RequesterID: s.userID,
				})
			}
			results[i] = outcome{item: it, name: name, err: err}
		}(i, it)
	}
	wg.Wait()

	report := Report{Failures: []Failure{}}
	for _, res := range results {
		if res.err != nil {
			report.Failures = append(report.Failures, Failure{
				ItemID: res.item.itemID,
				Name:   res.name,
				Err:    res.err.Error(),
			})
			continue
		}
		report.Copied++
	}

	// Clear the selection whether the batch succeeded or not.
	s.mu.Lock()
	s.selected = emptySelection()
	s.mu.Unlock()

	// Re-fetch the target so callers see server state, not a local guess.
	if trip, err := s.store.GetTrip(ctx, *draftID, s.userID); err == nil {
		report.Trip = &trip
	}

	return report, nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
