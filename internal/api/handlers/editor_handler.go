package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// EditorHandler exposes the treatment editor operations. Like the plan
// endpoints these are stateless: the form travels in the request body.
type EditorHandler struct {
	catalogs *services.CatalogService
	editor   *services.EditorService
}

// NewEditorHandler creates a new editor handler
func NewEditorHandler(catalogs *services.CatalogService, editor *services.EditorService) *EditorHandler {
	return &EditorHandler{catalogs: catalogs, editor: editor}
}

type selectCategoryRequest struct {
	Form        entities.Treatment `json:"form"`
	CategoryKey string             `json:"categoryKey"`
}

// SelectCategory handles POST /api/editor/category
func (h *EditorHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var payload selectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	respondWithJSON(w, http.StatusOK, h.editor.SelectCategory(payload.Form, payload.CategoryKey))
}

type selectTreatmentRequest struct {
	Form         entities.Treatment `json:"form"`
	CategoryKey  string             `json:"categoryKey"`
	TreatmentKey string             `json:"treatmentKey"`
	Language     string             `json:"language"`
}

// SelectTreatment handles POST /api/editor/treatment
func (h *EditorHandler) SelectTreatment(w http.ResponseWriter, r *http.Request) {
	var payload selectTreatmentRequest
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

	form, err := h.editor.SelectTreatment(catalog, payload.Form, payload.CategoryKey, payload.TreatmentKey, lang)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, form)
}

type setQuantityRequest struct {
	Form  entities.Treatment `json:"form"`
	Field string             `json:"field"`
	Value string             `json:"value"`
}

// SetQuantity handles POST /api/editor/quantity
func (h *EditorHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var payload setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	field := entities.DynamicField(payload.Field)
	if !field.Valid() {
		respondWithError(w, http.StatusBadRequest, "unknown field")
		return
	}

	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.editor.SetQuantity(catalog, payload.Form, field, payload.Value))
}

type setPricePerUnitRequest struct {
	Form         entities.Treatment `json:"form"`
	PricePerUnit float64            `json:"pricePerUnit"`
}

// SetPricePerUnit handles POST /api/editor/price-per-unit
func (h *EditorHandler) SetPricePerUnit(w http.ResponseWriter, r *http.Request) {
	var payload setPricePerUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.editor.SetPricePerUnit(catalog, payload.Form, payload.PricePerUnit))
}

type editorSaveRequest struct {
	Plan          *entities.Plan     `json:"plan"`
	Form          entities.Treatment `json:"form"`
	TargetPhaseID string             `json:"targetPhaseId"`
}

// Save handles POST /api/editor/save
func (h *EditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	var payload editorSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	plan, err := h.editor.Save(payload.Plan, payload.Form, payload.TargetPhaseID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

type editorCancelRequest struct {
	Plan        *entities.Plan `json:"plan"`
	TreatmentID string         `json:"treatmentId"`
	PhaseID     string         `json:"phaseId"`
	WasBound    bool           `json:"wasBound"`
}

// Cancel handles POST /api/editor/cancel
func (h *EditorHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var payload editorCancelRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	respondWithJSON(w, http.StatusOK, h.editor.Cancel(payload.Plan, payload.TreatmentID, payload.PhaseID, payload.WasBound))
}

// Search handles GET /api/editor/search?q=...
func (h *EditorHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	results := h.editor.Search(catalog, query, language(r))
	if results == nil {
		results = []services.SearchResult{}
	}
	respondWithJSON(w, http.StatusOK, results)
}

type generateInstructionsRequest struct {
	Form     entities.Treatment `json:"form"`
	Language string             `json:"language"`
}

// GenerateInstructions handles POST /api/editor/instructions
func (h *EditorHandler) GenerateInstructions(w http.ResponseWriter, r *http.Request) {
	var payload generateInstructionsRequest
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
	respondWithJSON(w, http.StatusOK, h.editor.GenerateInstructions(r.Context(), catalog, payload.Form, lang))
}
