package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aesthetics360/planstudio/internal/application/services"
)

// SuggestionHandler handles AI plan suggestions from consultation notes.
type SuggestionHandler struct {
	catalogs    *services.CatalogService
	suggestions *services.SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(catalogs *services.CatalogService, suggestions *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{catalogs: catalogs, suggestions: suggestions}
}

type suggestPlanRequest struct {
	Notes    string `json:"notes"`
	Language string `json:"language"`
}

// SuggestPlan handles POST /api/suggestions/plan
func (h *SuggestionHandler) SuggestPlan(w http.ResponseWriter, r *http.Request) {
	var payload suggestPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	lang := payload.Language
	if lang == "" {
		lang = language(r)
	}

	suggestion, err := h.suggestions.GeneratePlan(r.Context(), catalog, payload.Notes, lang)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, suggestion)
}
