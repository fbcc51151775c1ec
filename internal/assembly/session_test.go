package assembly

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/models"
)

type appendCall struct {
	tripID    uuid.UUID
	itemType  models.ItemType
	item      models.Place
	cityID    uuid.UUID
	dayNumber *int
}

// fakeStore is an in-memory stand-in for the trip store: a set of source
// places to resolve, a canned target trip, and optional per-item-name
// append failures.
type fakeStore struct {
	mu          sync.Mutex
	places      map[uuid.UUID]models.Place
	trip        models.Trip
	failByName  map[string]error
	appendCalls []appendCall
	tripErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		places:     make(map[uuid.UUID]models.Place),
		failByName: make(map[string]error),
	}
}

func (f *fakeStore) addPlace(t models.ItemType, name string, rating *float64) uuid.UUID {
	id := uuid.New()
	f.places[id] = models.Place{ID: id, Type: t, Name: name, Rating: rating}
	return id
}

func (f *fakeStore) AppendItem(ctx context.Context, tripID uuid.UUID, itemType models.ItemType, item models.Place, cityID uuid.UUID, dayNumber *int, requesterID uuid.UUID) (models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendCalls = append(f.appendCalls, appendCall{tripID: tripID, itemType: itemType, item: item, cityID: cityID, dayNumber: dayNumber})
	if err, ok := f.failByName[item.Name]; ok {
		return models.Trip{}, err
	}
	return f.trip, nil
}

func (f *fakeStore) GetPlace(ctx context.Context, itemType models.ItemType, itemID uuid.UUID, requesterID uuid.UUID) (models.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.places[itemID]
	if !ok {
		return models.Place{}, fmt.Errorf("%s not found", itemType)
	}
	return p, nil
}

func (f *fakeStore) GetTrip(ctx context.Context, id, requesterID uuid.UUID) (models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tripErr != nil {
		return models.Trip{}, f.tripErr
	}
	return f.trip, nil
}

func (f *fakeStore) appendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appendCalls)
}

func newSessionWithStore(store *fakeStore) (*Session, uuid.UUID) {
	userID := uuid.New()
	return NewSession(userID, NewCopier(store), store), userID
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
func intPtr(n int) *int               { return &n }

func TestCopierValidationOrdering(t *testing.T) {
	store := newFakeStore()
	copier := NewCopier(store)
	draft := uuid.New()
	city := uuid.New()

	cases := []struct {
		name     string
		req      CopyRequest
		wantKind string
		wantErr  error
	}{
		{
			name:     "missing draft wins even with everything else missing",
			req:      CopyRequest{ItemType: models.TypeRestaurant},
			wantKind: "draft",
		},
		{
			name:     "missing city next",
			req:      CopyRequest{ItemType: models.TypeRestaurant, DraftID: uuidPtr(draft)},
			wantKind: "city",
		},
		{
			name:     "missing day for restaurant",
			req:      CopyRequest{ItemType: models.TypeRestaurant, DraftID: uuidPtr(draft), CityID: uuidPtr(city)},
			wantKind: "day",
		},
		{
			name:    "empty name checked last",
			req:     CopyRequest{ItemType: models.TypeRestaurant, DraftID: uuidPtr(draft), CityID: uuidPtr(city), DayNumber: intPtr(1)},
			wantErr: ErrInvalidItem,
		},
		{
			name:    "hotel needs no day but still needs a name",
			req:     CopyRequest{ItemType: models.TypeHotel, DraftID: uuidPtr(draft), CityID: uuidPtr(city)},
			wantErr: ErrInvalidItem,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := copier.Copy(context.Background(), tc.req)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			var mt *MissingTargetError
			if !errors.As(err, &mt) || mt.Kind != tc.wantKind {
				t.Fatalf("err = %v, want MissingTargetError(%s)", err, tc.wantKind)
			}
		})
	}

	if store.appendCount() != 0 {
		t.Fatalf("no append may run on validation failure, got %d", store.appendCount())
	}
}

func TestCopierHotelSucceedsWithoutDay(t *testing.T) {
	store := newFakeStore()
	copier := NewCopier(store)

	_, err := copier.Copy(context.Background(), CopyRequest{
		ItemType: models.TypeHotel,
		Item:     models.Place{Name: "Park Hyatt Tokyo"},
		DraftID:  uuidPtr(uuid.New()),
		CityID:   uuidPtr(uuid.New()),
	})
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if store.appendCount() != 1 {
		t.Fatalf("expected 1 append, got %d", store.appendCount())
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	sess, _ := newSessionWithStore(newFakeStore())
	id := uuid.New()

	sess.Toggle(models.TypeRestaurant, id)
	if got := sess.Selected(models.TypeRestaurant); len(got) != 1 || got[0] != id {
		t.Fatalf("selected = %v", got)
	}
	sess.Toggle(models.TypeRestaurant, id)
	if got := sess.Selected(models.TypeRestaurant); len(got) != 0 {
		t.Fatalf("expected empty selection after second toggle, got %v", got)
	}
}

func TestTargetChangeClearsAllSelections(t *testing.T) {
	sess, _ := newSessionWithStore(newFakeStore())
	draft := uuid.New()
	city := uuid.New()

	sess.SetTarget(uuidPtr(draft), uuidPtr(city), intPtr(1))
	sess.Toggle(models.TypeHotel, uuid.New())
	sess.Toggle(models.TypeRestaurant, uuid.New())
	sess.Toggle(models.TypeActivity, uuid.New())

	// day change alone must clear everything
	sess.SetTarget(uuidPtr(draft), uuidPtr(city), intPtr(2))

	for _, itemType := range []models.ItemType{models.TypeHotel, models.TypeRestaurant, models.TypeActivity} {
		if got := sess.Selected(itemType); len(got) != 0 {
			t.Fatalf("%s selection not cleared: %v", itemType, got)
		}
	}
}

func TestSetTargetSameValuesKeepsSelection(t *testing.T) {
	sess, _ := newSessionWithStore(newFakeStore())
	draft := uuid.New()
	city := uuid.New()

	sess.SetTarget(uuidPtr(draft), uuidPtr(city), intPtr(1))
	sess.Toggle(models.TypeHotel, uuid.New())
	sess.SetTarget(uuidPtr(draft), uuidPtr(city), intPtr(1))

	if got := sess.Selected(models.TypeHotel); len(got) != 1 {
		t.Fatalf("selection must survive a no-op target set, got %v", got)
	}
}

func TestCopySelectedRequiresDraftFirst(t *testing.T) {
	store := newFakeStore()
	sess, _ := newSessionWithStore(store)

	// items are selected but no draft: exactly the draft error, zero ops
	sess.Toggle(models.TypeHotel, store.addPlace(models.TypeHotel, "Park Hyatt", nil))

	_, err := sess.CopySelected(context.Background())
	var mt *MissingTargetError
	if !errors.As(err, &mt) || mt.Kind != "draft" {
		t.Fatalf("err = %v, want MissingTargetError(draft)", err)
	}
	if store.appendCount() != 0 {
		t.Fatalf("expected zero copy operations, got %d", store.appendCount())
	}
	// validation aborts keep the selection so the user can fix the target
	if got := sess.Selected(models.TypeHotel); len(got) != 1 {
		t.Fatalf("selection must survive a validation abort, got %v", got)
	}
}

func TestCopySelectedDayRequiredForNonHotel(t *testing.T) {
	store := newFakeStore()
	sess, _ := newSessionWithStore(store)
	sess.SetTarget(uuidPtr(uuid.New()), uuidPtr(uuid.New()), nil)

	sess.Toggle(models.TypeRestaurant, store.addPlace(models.TypeRestaurant, "Jiro", nil))

	_, err := sess.CopySelected(context.Background())
	var mt *MissingTargetError
	if !errors.As(err, &mt) || mt.Kind != "day" {
		t.Fatalf("err = %v, want MissingTargetError(day)", err)
	}
	if store.appendCount() != 0 {
		t.Fatalf("expected zero copy operations, got %d", store.appendCount())
	}
}

func TestCopySelectedHotelOnlyNeedsNoDay(t *testing.T) {
	store := newFakeStore()
	sess, _ := newSessionWithStore(store)
	sess.SetTarget(uuidPtr(uuid.New()), uuidPtr(uuid.New()), nil)

	sess.Toggle(models.TypeHotel, store.addPlace(models.TypeHotel, "Park Hyatt", nil))

	report, err := sess.CopySelected(context.Background())
	if err != nil {
		t.Fatalf("copy selected: %v", err)
	}
	if report.Copied != 1 || len(report.Failures) != 0 {
		t.Fatalf("report = %+v", report)
	}
}

func TestCopySelectedEmptySelection(t *testing.T) {
	store := newFakeStore()
	sess, _ := newSessionWithStore(store)
	sess.SetTarget(uuidPtr(uuid.New()), uuidPtr(uuid.New()), intPtr(1))

	_, err := sess.CopySelected(context.Background())
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
}

func TestCopySelectedPartialFailure(t *testing.T) {
	store := newFakeStore()
	sess, _ := newSessionWithStore(store)
	sess.SetTarget(uuidPtr(uuid.New()), uuidPtr(uuid.New()), intPtr(1))

	sess.Toggle(models.TypeRestaurant, store.addPlace(models.TypeRestaurant, "Good Sushi", nil))
	sess.Toggle(models.TypeRestaurant, store.addPlace(models.TypeRestaurant, "Bad Cafe", nil))
	sess.Toggle(models.TypeActivity, store.addPlace(models.TypeActivity, "Temple Walk", nil))
	store.failByName["Bad Cafe"] = errors.New("city not found")

	report, err := sess.CopySelected(context.Background())
	if err != nil {
		t.Fatalf("copy selected: %v", err)
	}
	if report.Copied != 2 {
		t.Fatalf("copied = %d, want 2", report.Copied)
	}
	if len(report.Failures) != 1 || report.Failures[0].Name != "Bad Cafe" {
		t.Fatalf("failures = %+v", report.Failures)
	}
	if !strings.Contains(report.Message(), "2 item(s) copied successfully") ||
		!strings.Contains(report.Message(), "Bad Cafe") {
		t.Fatalf("message = %q", report.Message())
	}

	// selections clear even on partial failure, so the half-done batch
	// cannot be resubmitted
	for _, itemType := range []models.ItemType{models.TypeHotel, models.TypeRestaurant, models.TypeActivity} {
		if got := sess.Selected(itemType); len(got) != 0 {
			t.Fatalf("%s selection not cleared: %v", itemType, got)
		}
	}
}

func TestCopySelectedEndToEnd(t *testing.T) {
	store := newFakeStore()
	sess, _ := newSessionWithStore(store)

	draftID := uuid.New()
	tokyoID := uuid.New()
	rating := 5.0
	jiroID := store.addPlace(models.TypeRestaurant, "Sukiyabashi Jiro", &rating)

	day2 := 2
	appended := models.Place{Type: models.TypeRestaurant, Name: "Sukiyabashi Jiro", Rating: &rating, DayNumber: &day2}
	store.trip = models.Trip{
		ID:      draftID,
		Title:   "My Japan Trip",
		IsDraft: true,
		CityEntries: []models.CityEntry{{
			ID:           tokyoID,
			Name:         "Tokyo",
			NumberOfDays: 3,
			Restaurants:  []models.Place{appended},
		}},
	}

	sess.SetTarget(uuidPtr(draftID), uuidPtr(tokyoID), intPtr(2))
	sess.Toggle(models.TypeRestaurant, jiroID)

	report, err := sess.CopySelected(context.Background())
	if err != nil {
		t.Fatalf("copy selected: %v", err)
	}

	if store.appendCount() != 1 {
		t.Fatalf("expected exactly one append, got %d", store.appendCount())
	}
	call := store.appendCalls[0]
	if call.tripID != draftID || call.cityID != tokyoID || call.itemType != models.TypeRestaurant {
		t.Fatalf("append call = %+v", call)
	}
	if call.item.Name != "Sukiyabashi Jiro" || call.item.Rating == nil || *call.item.Rating != 5 {
		t.Fatalf("append payload = %+v", call.item)
	}
	if call.dayNumber == nil || *call.dayNumber != 2 {
		t.Fatalf("append day = %v, want 2", call.dayNumber)
	}

	if report.Copied != 1 || !strings.HasPrefix(report.Message(), "1 item(s) copied successfully") {
		t.Fatalf("report = %+v message %q", report, report.Message())
	}
	if report.Trip == nil || len(report.Trip.CityEntries[0].Restaurants) != 1 {
		t.Fatalf("expected re-fetched trip with the copied restaurant")
	}
	if got := sess.Selected(models.TypeRestaurant); len(got) != 0 {
		t.Fatalf("selection not cleared: %v", got)
	}
}

func TestRegistryReturnsSameSessionPerUser(t *testing.T) {
	store := newFakeStore()
	reg := NewRegistry(NewCopier(store), store)
	userA := uuid.New()
	userB := uuid.New()

	if reg.ForUser(userA) != reg.ForUser(userA) {
		t.Fatalf("expected the same session for one user")
	}
	if reg.ForUser(userA) == reg.ForUser(userB) {
		t.Fatalf("expected distinct sessions for distinct users")
	}
}
