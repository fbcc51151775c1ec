package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/assembly"
	"WANDERPLAN_BACK-END/internal/dto"
	"WANDERPLAN_BACK-END/internal/models"
	"WANDERPLAN_BACK-END/internal/utils"
)

// stubAssemblyStore backs the assembly registry in handler tests.
type stubAssemblyStore struct {
	places map[uuid.UUID]models.Place
	trip   models.Trip
}

func (s *stubAssemblyStore) AppendItem(ctx context.Context, tripID uuid.UUID, itemType models.ItemType, item models.Place, cityID uuid.UUID, dayNumber *int, requesterID uuid.UUID) (models.Trip, error) {
	return s.trip, nil
}

func (s *stubAssemblyStore) GetPlace(ctx context.Context, itemType models.ItemType, itemID uuid.UUID, requesterID uuid.UUID) (models.Place, error) {
	return s.places[itemID], nil
}

func (s *stubAssemblyStore) GetTrip(ctx context.Context, id, requesterID uuid.UUID) (models.Trip, error) {
	return s.trip, nil
}

func newAssemblyHandler(store *stubAssemblyStore) (*AssemblyHandler, uuid.UUID) {
	registry := assembly.NewRegistry(assembly.NewCopier(store), store)
	return NewAssemblyHandler(registry), uuid.New()
}

func authedRequest(method, path, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestAssemblySessionFlow(t *testing.T) {
	draftID := uuid.New()
	cityID := uuid.New()
	itemID := uuid.New()

	store := &stubAssemblyStore{
		places: map[uuid.UUID]models.Place{
			itemID: {ID: itemID, Type: models.TypeRestaurant, Name: "Sukiyabashi Jiro"},
		},
		trip: models.Trip{ID: draftID, Title: "My Japan Trip", IsDraft: true},
	}
	h, userID := newAssemblyHandler(store)

	// set the target
	body := `{"draft_id":"` + draftID.String() + `","city_id":"` + cityID.String() + `","day_number":2}`
	rec := httptest.NewRecorder()
	h.SetTarget(rec, authedRequest(http.MethodPut, "/api/assembly/target", body, userID))
	if rec.Code != http.StatusOK {
		t.Fatalf("set target status = %d: %s", rec.Code, rec.Body)
	}

	// toggle a restaurant into the selection
	body = `{"item_type":"restaurant","item_id":"` + itemID.String() + `"}`
	rec = httptest.NewRecorder()
	h.ToggleSelection(rec, authedRequest(http.MethodPost, "/api/assembly/selection", body, userID))
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", rec.Code, rec.Body)
	}
	var sess dto.SessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if len(sess.SelectedRestaurants) != 1 || sess.SelectedRestaurants[0] != itemID.String() {
		t.Fatalf("selected restaurants = %v", sess.SelectedRestaurants)
	}

	// copy the batch
	rec = httptest.NewRecorder()
	h.CopySelected(rec, authedRequest(http.MethodPost, "/api/assembly/copy", "", userID))
	if rec.Code != http.StatusOK {
		t.Fatalf("copy status = %d: %s", rec.Code, rec.Body)
	}
	var report dto.CopyReportResponse
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Copied != 1 || len(report.Failures) != 0 {
		t.Fatalf("report = %+v", report)
	}
	if report.Trip == nil || report.Trip.Title != "My Japan Trip" {
		t.Fatalf("expected re-fetched trip in report, got %+v", report.Trip)
	}

	// the session selection is now empty
	rec = httptest.NewRecorder()
	h.GetSession(rec, authedRequest(http.MethodGet, "/api/assembly/session", "", userID))
	if err := json.NewDecoder(rec.Body).Decode(&sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if len(sess.SelectedRestaurants) != 0 {
		t.Fatalf("selection not cleared after copy: %v", sess.SelectedRestaurants)
	}
}

func TestCopyWithoutTargetIsBadRequest(t *testing.T) {
	h, userID := newAssemblyHandler(&stubAssemblyStore{places: map[uuid.UUID]models.Place{}})

	rec := httptest.NewRecorder()
	h.CopySelected(rec, authedRequest(http.MethodPost, "/api/assembly/copy", "", userID))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Message, "draft") {
		t.Fatalf("message = %q, want the draft named first", resp.Message)
	}
}

func TestSetTargetRejectsBadDraftID(t *testing.T) {
	h, userID := newAssemblyHandler(&stubAssemblyStore{places: map[uuid.UUID]models.Place{}})

	rec := httptest.NewRecorder()
	h.SetTarget(rec, authedRequest(http.MethodPut, "/api/assembly/target", `{"draft_id":"nope"}`, userID))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestToggleRejectsUnknownItemType(t *testing.T) {
	h, userID := newAssemblyHandler(&stubAssemblyStore{places: map[uuid.UUID]models.Place{}})

	body := `{"item_type":"museum","item_id":"` + uuid.New().String() + `"}`
	rec := httptest.NewRecorder()
	h.ToggleSelection(rec, authedRequest(http.MethodPost, "/api/assembly/selection", body, userID))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
