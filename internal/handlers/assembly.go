package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/assembly"
	"WANDERPLAN_BACK-END/internal/dto"
	"WANDERPLAN_BACK-END/internal/models"
	"WANDERPLAN_BACK-END/internal/utils"
)

// AssemblyHandler exposes the draft assembly session: the copy target,
// the multi-select sets, and the batch copy operation.
type AssemblyHandler struct {
	registry *assembly.Registry
}

// NewAssemblyHandler creates a new AssemblyHandler
func NewAssemblyHandler(registry *assembly.Registry) *AssemblyHandler {
	return &AssemblyHandler{registry: registry}
}

// SetTarget handles PUT /api/assembly/target
// @Summary Set the copy target
// @Description Point the session at a draft, city, and day. Any change to the target clears all current selections.
// @Tags assembly
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SetTargetRequest true "Target draft, city, day"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/assembly/target [put]
func (h *AssemblyHandler) SetTarget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.SetTargetRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	var draftID, cityID *uuid.UUID
	if req.DraftID != nil && *req.DraftID != "" {
		parsed, err := uuid.Parse(*req.DraftID)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid draft_id")
			return
		}
		draftID = &parsed
	}
	if req.CityID != nil && *req.CityID != "" {
		parsed, err := uuid.Parse(*req.CityID)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid city_id")
			return
		}
		cityID = &parsed
	}
	if req.DayNumber != nil && *req.DayNumber < 1 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "day_number must be at least 1")
		return
	}

	sess := h.registry.ForUser(userID)
	sess.SetTarget(draftID, cityID, req.DayNumber)

	utils.WriteJSONResponse(w, http.StatusOK, buildSessionResponse(sess))
}

// ToggleSelection handles POST /api/assembly/selection
// @Summary Toggle one source item in or out of the selection
// @Tags assembly
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ToggleSelectionRequest true "Item to toggle"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/assembly/selection [post]
func (h *AssemblyHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.ToggleSelectionRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	itemType, err := models.ParseItemType(req.ItemType)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "item_type must be hotel, restaurant, or activity")
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid item_id")
		return
	}

	sess := h.registry.ForUser(userID)
	sess.Toggle(itemType, itemID)

	utils.WriteJSONResponse(w, http.StatusOK, buildSessionResponse(sess))
}

// GetSession handles GET /api/assembly/session
// @Summary Get the current assembly session state
// @Tags assembly
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/assembly/session [get]
func (h *AssemblyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, buildSessionResponse(h.registry.ForUser(userID)))
}

// CopySelected handles POST /api/assembly/copy
// @Summary Copy every selected item into the target draft
// @Description Best-effort batch: each item copies independently, failures are reported by name, successes are kept. Selections are cleared afterward either way.
// @Tags assembly
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CopyReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/assembly/copy [post]
func (h *AssemblyHandler) CopySelected(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	sess := h.registry.ForUser(userID)
	report, err := sess.CopySelected(r.Context())
	if err != nil {
		var missing *assembly.MissingTargetError
		switch {
		case errors.As(err, &missing):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", missing.Error())
		case errors.Is(err, assembly.ErrNoSelection):
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		default:
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", err.Error())
		}
		return
	}

	resp := dto.CopyReportResponse{
		Copied:   report.Copied,
		Failures: make([]dto.CopyFailure, 0, len(report.Failures)),
		Message:  report.Message(),
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, dto.CopyFailure{
			ItemID: f.ItemID.String(),
			Name:   f.Name,
			Error:  f.Err,
		})
	}
	if report.Trip != nil {
		trip := buildTripResponse(*report.Trip)
		resp.Trip = &trip
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func buildSessionResponse(sess *assembly.Session) dto.SessionResponse {
	draftID, cityID, dayNumber := sess.Target()

	resp := dto.SessionResponse{
		DayNumber:           dayNumber,
		SelectedHotels:      uuidStrings(sess.Selected(models.TypeHotel)),
		SelectedRestaurants: uuidStrings(sess.Selected(models.TypeRestaurant)),
		SelectedActivities:  uuidStrings(sess.Selected(models.TypeActivity)),
	}
	if draftID != nil {
		s := draftID.String()
		resp.DraftID = &s
	}
	if cityID != nil {
		s := cityID.String()
		resp.CityID = &s
	}
	return resp
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
