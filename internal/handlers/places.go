package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/dto"
	"WANDERPLAN_BACK-END/internal/models"
	"WANDERPLAN_BACK-END/internal/tripstore"
	"WANDERPLAN_BACK-END/internal/utils"
)

// ItemsHandler manages the places hanging off a trip's cities
type ItemsHandler struct {
	store *tripstore.Store
}

// NewItemsHandler creates a new ItemsHandler
func NewItemsHandler(store *tripstore.Store) *ItemsHandler {
	return &ItemsHandler{store: store}
}

// AppendItem handles POST /api/trips/{id}/items
// @Summary Append a hotel, restaurant, or activity to a trip's city
// @Description Restaurants and activities need a day_number within the city's day range; hotels are never day-scoped.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param payload body dto.AppendItemRequest true "Item payload"
// @Success 200 {object} dto.TripEnvelope "Updated trip"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/items [post]
func (h *ItemsHandler) AppendItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.AppendItemRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	itemType, err := models.ParseItemType(req.ItemType)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "item_type must be hotel, restaurant, or activity")
		return
	}

	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid city_id")
		return
	}

	item := models.Place{
		Name:     strings.TrimSpace(req.Item.Name),
		Location: req.Item.Location,
		Rating:   req.Item.Rating,
		Review:   req.Item.Review,
		Liked:    req.Item.Liked,
	}

	trip, err := h.store.AppendItem(r.Context(), tripID, itemType, item, cityID, req.DayNumber, userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripEnvelope{Trip: buildTripResponse(trip)})
}

// Items dispatches PATCH/DELETE for /api/items/{type}/{id}
func (h *ItemsHandler) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		h.UpdateItem(w, r)
	case http.MethodDelete:
		h.DeleteItem(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// UpdateItem handles PATCH /api/items/{type}/{id}
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Item type" Enums(hotel, restaurant, activity)
// @Param id path string true "Item ID"
// @Param payload body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/items/{type}/{id} [patch]
func (h *ItemsHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	itemType, itemID, ok := itemPathParams(w, r)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	patch := tripstore.ItemPatch{
		Name:      req.Name,
		Location:  req.Location,
		Rating:    req.Rating,
		Review:    req.Review,
		Liked:     req.Liked,
		DayNumber: req.DayNumber,
	}

	item, err := h.store.UpdateItem(r.Context(), itemType, itemID, patch, userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ItemEnvelope{Item: buildPlaceResponse(item)})
}

// DeleteItem handles DELETE /api/items/{type}/{id}
// @Summary Delete an item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param type path string true "Item type" Enums(hotel, restaurant, activity)
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/items/{type}/{id} [delete]
func (h *ItemsHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	itemType, itemID, ok := itemPathParams(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteItem(r.Context(), itemType, itemID, userID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemPathParams parses /api/items/{type}/{id}. On failure it writes the
// error response itself.
func itemPathParams(w http.ResponseWriter, r *http.Request) (models.ItemType, uuid.UUID, bool) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/items/")
	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	if len(parts) != 2 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "expected /api/items/{type}/{id}")
		return "", uuid.Nil, false
	}

	itemType, err := models.ParseItemType(parts[0])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "item type must be hotel, restaurant, or activity")
		return "", uuid.Nil, false
	}

	itemID, err := uuid.Parse(parts[1])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid item id")
		return "", uuid.Nil, false
	}

	return itemType, itemID, true
}
