package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/dto"
	"WANDERPLAN_BACK-END/internal/itinerary"
	"WANDERPLAN_BACK-END/internal/models"
	"WANDERPLAN_BACK-END/internal/tripstore"
	"WANDERPLAN_BACK-END/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	store *tripstore.Store
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(store *tripstore.Store) *TripsHandler {
	return &TripsHandler{store: store}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateTrip(w, r)
	case http.MethodGet:
		// If path has an ID suffix, treat as detail
		if strings.HasPrefix(r.URL.Path, "/api/trips/") && len(r.URL.Path) > len("/api/trips/") {
			h.TripDetail(w, r)
			return
		}
		h.ListTrips(w, r)
	case http.MethodPut, http.MethodPatch:
		h.UpdateTrip(w, r)
	case http.MethodDelete:
		h.DeleteTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateTrip handles POST /api/trips
// @Summary Create a new trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.TripEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Basic validation
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.StartDate == "" || req.EndDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title, start_date, end_date are required")
		return
	}

	// Parse dates (ISO 8601 format: YYYY-MM-DD or RFC3339)
	startAt, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	endAt, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	if endAt.Before(startAt) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return
	}

	// New trips start as drafts unless explicitly finalized
	isDraft := true
	if req.IsDraft != nil {
		isDraft = *req.IsDraft
	}

	cities := make([]models.CityEntry, 0, len(req.Cities))
	for _, c := range req.Cities {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "every city needs a name")
			return
		}
		cities = append(cities, models.CityEntry{
			Name:         name,
			Country:      strings.TrimSpace(c.Country),
			NumberOfDays: c.NumberOfDays,
		})
	}

	trip := models.Trip{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startAt,
		EndDate:     endAt,
		Countries:   req.Countries,
		IsPublic:    req.IsPublic,
		IsDraft:     isDraft,
		OwnerID:     userID,
	}

	created, err := h.store.CreateTrip(r.Context(), trip, cities)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.TripEnvelope{Trip: buildTripResponse(created)})
}

// ListTrips handles GET /api/trips
// @Summary List trips
// @Description List trips visible to the caller. Use is_draft=true&mine=true for the caller's drafts, is_public=true for shared trips.
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param is_draft query bool false "Filter by draft flag"
// @Param is_public query bool false "Filter by public flag"
// @Param mine query bool false "Only the caller's trips"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TripListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	q := r.URL.Query()
	filter := tripstore.Filter{}

	if v := q.Get("is_draft"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "is_draft must be a boolean")
			return
		}
		filter.IsDraft = &parsed
	}
	if v := q.Get("is_public"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "is_public must be a boolean")
			return
		}
		filter.IsPublic = &parsed
	}
	if v := q.Get("mine"); v != "" {
		mine, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "mine must be a boolean")
			return
		}
		if mine {
			filter.OwnerID = &userID
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	// Drafts and private trips belong to their owner; listing anything
	// other than public trips forces the owner filter.
	if filter.IsPublic == nil || !*filter.IsPublic {
		filter.OwnerID = &userID
	}

	trips, total, err := h.store.ListTrips(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	items := make([]dto.TripListItem, 0, len(trips))
	for _, t := range trips {
		items = append(items, dto.TripListItem{
			ID:          t.ID.String(),
			Title:       t.Title,
			Description: t.Description,
			StartDate:   utils.FormatDate(t.StartDate),
			EndDate:     utils.FormatDate(t.EndDate),
			Countries:   t.Countries,
			Cities:      t.Cities,
			IsPublic:    t.IsPublic,
			IsDraft:     t.IsDraft,
			OwnerID:     t.OwnerID.String(),
			CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
		})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripListResponse{
		Trips:      items,
		Pagination: dto.Pagination{Total: total, Limit: limit, Offset: offset},
	})
}

// TripDetail handles GET /api/trips/{id}
// @Summary Get a trip with its cities, places, and derived day buckets
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripEnvelope
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	trip, err := h.store.GetTrip(r.Context(), tripID, userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripEnvelope{Trip: buildTripResponse(trip)})
}

// UpdateTrip handles PUT/PATCH /api/trips/{id}
// @Summary Update a trip
// @Description Update trip fields. Finalizing a draft is is_draft=false; publishing is is_public=true on a finalized trip.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [patch]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	// Load the current row first so unspecified fields keep their values.
	trip, err := h.store.GetTrip(r.Context(), tripID, userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if trip.OwnerID != userID {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "trip not found")
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title cannot be empty")
			return
		}
		trip.Title = title
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.StartDate != nil {
		startAt, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		trip.StartDate = startAt
	}
	if req.EndDate != nil {
		endAt, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		trip.EndDate = endAt
	}
	if trip.EndDate.Before(trip.StartDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return
	}
	if req.Countries != nil {
		trip.Countries = req.Countries
	}
	if req.IsDraft != nil {
		trip.IsDraft = *req.IsDraft
	}
	if req.IsPublic != nil {
		if *req.IsPublic && trip.IsDraft {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "a draft cannot be public; finalize it first")
			return
		}
		trip.IsPublic = *req.IsPublic
	}

	updated, err := h.store.UpdateTrip(r.Context(), trip)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	// UpdateTrip returns the row without city entries; reuse the loaded ones.
	updated.CityEntries = trip.CityEntries

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripEnvelope{Trip: buildTripResponse(updated)})
}

// DeleteTrip handles DELETE /api/trips/{id}
// @Summary Delete a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteTrip(r.Context(), tripID, userID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// tripIDFromPath parses the trip id out of /api/trips/{id}. On failure it
// writes the error response itself.
func tripIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/trips/")
	idStr = strings.TrimSuffix(idStr, "/")
	if slash := strings.Index(idStr, "/"); slash >= 0 {
		idStr = idStr[:slash]
	}

	tripID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid trip id")
		return uuid.Nil, false
	}
	return tripID, true
}

// writeStoreError maps tripstore sentinel errors to HTTP statuses
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tripstore.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, tripstore.ErrForbidden):
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, tripstore.ErrValidation):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// buildTripResponse converts a trip model into its API shape, deriving the
// per-city day buckets as it goes.
func buildTripResponse(t models.Trip) dto.TripResponse {
	entries := make([]dto.CityEntryResponse, 0, len(t.CityEntries))
	for _, c := range t.CityEntries {
		entries = append(entries, buildCityEntryResponse(c))
	}

	countries := t.Countries
	if countries == nil {
		countries = []string{}
	}
	cities := t.Cities
	if cities == nil {
		cities = []string{}
	}

	return dto.TripResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		StartDate:   utils.FormatDate(t.StartDate),
		EndDate:     utils.FormatDate(t.EndDate),
		Countries:   countries,
		Cities:      cities,
		IsPublic:    t.IsPublic,
		IsDraft:     t.IsDraft,
		OwnerID:     t.OwnerID.String(),
		CityEntries: entries,
		CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(t.UpdatedAt),
	}
}

func buildCityEntryResponse(c models.CityEntry) dto.CityEntryResponse {
	days := itinerary.Buckets(c)
	dayResponses := make([]dto.DayResponse, 0, len(days))
	for _, d := range days {
		dayResponses = append(dayResponses, dto.DayResponse{
			DayNumber:   d.DayNumber,
			Restaurants: buildPlaceResponses(d.Restaurants),
			Activities:  buildPlaceResponses(d.Activities),
		})
	}

	return dto.CityEntryResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Country:      c.Country,
		NumberOfDays: itinerary.DayCount(c),
		Hotels:       buildPlaceResponses(c.Hotels),
		Restaurants:  buildPlaceResponses(c.Restaurants),
		Activities:   buildPlaceResponses(c.Activities),
		Days:         dayResponses,
	}
}

func buildPlaceResponses(places []models.Place) []dto.PlaceResponse {
	out := make([]dto.PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, buildPlaceResponse(p))
	}
	return out
}

func buildPlaceResponse(p models.Place) dto.PlaceResponse {
	resp := dto.PlaceResponse{
		ID:        p.ID.String(),
		ItemType:  string(p.Type),
		Name:      p.Name,
		Location:  p.Location,
		Rating:    p.Rating,
		Liked:     p.Liked,
		DayNumber: p.DayNumber,
	}
	if p.Review != nil {
		resp.Review = buildReviewResponse(*p.Review)
	}
	return resp
}

// buildReviewResponse decodes the overloaded review column into its API
// shape: plain text or third-party sourced metadata.
func buildReviewResponse(raw string) *dto.ReviewResponse {
	review := models.ParseReview(raw)
	if review.Kind == models.ReviewSourced {
		return &dto.ReviewResponse{
			Kind:       string(models.ReviewSourced),
			LocationID: review.Meta.LocationID,
			ImageURL:   review.Meta.ImageURL,
			NumReviews: review.Meta.NumReviews,
			WebURL:     review.Meta.WebURL,
		}
	}
	return &dto.ReviewResponse{
		Kind: string(models.ReviewPlainText),
		Text: review.Text,
	}
}
