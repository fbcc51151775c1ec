package handlers

import (
	"net/http"
	"strings"

	"WANDERPLAN_BACK-END/internal/catalog"
	"WANDERPLAN_BACK-END/internal/dto"
	"WANDERPLAN_BACK-END/internal/models"
	"WANDERPLAN_BACK-END/internal/utils"
)

// CatalogHandler serves reference data: the country/city lookup and
// seeded place suggestions.
type CatalogHandler struct {
	cities      *catalog.CityCatalog
	suggestions *catalog.Suggestions
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(cities *catalog.CityCatalog, suggestions *catalog.Suggestions) *CatalogHandler {
	return &CatalogHandler{cities: cities, suggestions: suggestions}
}

// GetCountries handles GET /api/catalog/countries
// @Summary List known countries
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CountriesResponse
// @Router /api/catalog/countries [get]
func (h *CatalogHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CountriesResponse{Countries: h.cities.Countries()})
}

// GetCities handles GET /api/catalog/cities?country=
// @Summary List the known cities of a country
// @Tags catalog
// @Produce json
// @Param country query string true "Country name"
// @Success 200 {object} dto.CitiesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/catalog/cities [get]
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "country query parameter is required")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CitiesResponse{
		Country: country,
		Cities:  h.cities.CitiesFor(country),
	})
}

// GetSuggestions handles GET /api/catalog/suggestions?city=&type=
// @Summary Suggest reference places for a city
// @Description Seeded hotels, restaurants, or activities for a city, best rated first.
// @Tags catalog
// @Produce json
// @Param city query string true "City name"
// @Param type query string true "Item type" Enums(hotel, restaurant, activity)
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/catalog/suggestions [get]
func (h *CatalogHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "city query parameter is required")
		return
	}

	itemType, err := models.ParseItemType(r.URL.Query().Get("type"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "type must be hotel, restaurant, or activity")
		return
	}

	suggestions, err := h.suggestions.ForCity(r.Context(), city, itemType)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	items := make([]dto.SuggestionItem, 0, len(suggestions))
	for _, s := range suggestions {
		item := dto.SuggestionItem{
			Name:     s.Name,
			Location: s.Location,
			Rating:   s.Rating,
		}
		if s.Review != nil {
			item.Review = buildReviewResponse(*s.Review)
		}
		items = append(items, item)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SuggestionsResponse{
		City:        city,
		ItemType:    string(itemType),
		Suggestions: items,
	})
}
