package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// PlanHandler exposes the stateless plan composition operations. Every
// mutating endpoint takes the current plan in the request body and
// returns the updated plan; the server holds no editing session.
type PlanHandler struct {
	catalogs  *services.CatalogService
	templates *services.TemplateService
	plans     *services.PlanService
	pricing   *services.PricingService
	reorder   *services.ReorderService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(
	catalogs *services.CatalogService,
	templates *services.TemplateService,
	plans *services.PlanService,
	pricing *services.PricingService,
	reorder *services.ReorderService,
) *PlanHandler {
	return &PlanHandler{
		catalogs:  catalogs,
		templates: templates,
		plans:     plans,
		pricing:   pricing,
		reorder:   reorder,
	}
}

type templateSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListTemplates handles GET /api/templates
func (h *PlanHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	lang := language(r)
	summaries := make([]templateSummary, 0, len(catalog.PlanTemplates))
	for _, template := range catalog.PlanTemplates {
		summaries = append(summaries, templateSummary{
			ID:    template.ID,
			Title: template.Title.Resolve(lang),
		})
	}
	respondWithJSON(w, http.StatusOK, summaries)
}

type createPlanRequest struct {
	TemplateID string           `json:"templateId"`
	Patient    entities.Patient `json:"patient"`
	Language   string           `json:"language"`
}

// CreatePlan handles POST /api/plans
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var payload createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.TemplateID == "" {
		respondWithError(w, http.StatusBadRequest, "templateId is required")
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

	plan, err := h.templates.Instantiate(catalog, payload.TemplateID, payload.Patient, lang)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, plan)
}

type addPhaseRequest struct {
	Plan     *entities.Plan `json:"plan"`
	Language string         `json:"language"`
}

// AddPhase handles POST /api/plans/phases
func (h *PlanHandler) AddPhase(w http.ResponseWriter, r *http.Request) {
	var payload addPhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
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
	respondWithJSON(w, http.StatusOK, h.plans.AddPhase(payload.Plan, catalog, lang))
}

type removePhaseRequest struct {
	Plan    *entities.Plan `json:"plan"`
	PhaseID string         `json:"phaseId"`
}

// RemovePhase handles POST /api/plans/phases/remove
func (h *PlanHandler) RemovePhase(w http.ResponseWriter, r *http.Request) {
	var payload removePhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	respondWithJSON(w, http.StatusOK, h.plans.RemovePhase(payload.Plan, payload.PhaseID))
}

type addTreatmentRequest struct {
	Plan    *entities.Plan `json:"plan"`
	PhaseID string         `json:"phaseId"`
}

type addTreatmentResponse struct {
	Plan        *entities.Plan `json:"plan"`
	TreatmentID string         `json:"treatmentId"`
}

// AddTreatment handles POST /api/plans/treatments
func (h *PlanHandler) AddTreatment(w http.ResponseWriter, r *http.Request) {
	var payload addTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	plan, treatmentID, err := h.plans.AddTreatment(payload.Plan, payload.PhaseID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, addTreatmentResponse{Plan: plan, TreatmentID: treatmentID})
}

type saveTreatmentRequest struct {
	Plan          *entities.Plan     `json:"plan"`
	Treatment     entities.Treatment `json:"treatment"`
	TargetPhaseID string             `json:"targetPhaseId"`
}

// SaveTreatment handles POST /api/plans/treatments/save
func (h *PlanHandler) SaveTreatment(w http.ResponseWriter, r *http.Request) {
	var payload saveTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	plan, err := h.plans.SaveTreatment(payload.Plan, payload.Treatment, payload.TargetPhaseID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

type removeTreatmentRequest struct {
	Plan        *entities.Plan `json:"plan"`
	TreatmentID string         `json:"treatmentId"`
	PhaseID     string         `json:"phaseId"`
}

// RemoveTreatment handles POST /api/plans/treatments/remove
func (h *PlanHandler) RemoveTreatment(w http.ResponseWriter, r *http.Request) {
	var payload removeTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	respondWithJSON(w, http.StatusOK, h.plans.RemoveTreatment(payload.Plan, payload.TreatmentID, payload.PhaseID))
}

type moveTreatmentRequest struct {
	Plan              *entities.Plan `json:"plan"`
	TreatmentID       string         `json:"treatmentId"`
	SourcePhaseID     string         `json:"sourcePhaseId"`
	TargetPhaseID     string         `json:"targetPhaseId"`
	TargetTreatmentID string         `json:"targetTreatmentId"`
}

// MoveTreatment handles POST /api/plans/treatments/move
func (h *PlanHandler) MoveTreatment(w http.ResponseWriter, r *http.Request) {
	var payload moveTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	plan, err := h.plans.MoveTreatment(
		payload.Plan,
		payload.TreatmentID,
		payload.SourcePhaseID,
		payload.TargetPhaseID,
		payload.TargetTreatmentID,
	)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

type reorderRequest struct {
	Plan *entities.Plan          `json:"plan"`
	Drag services.DragDescriptor `json:"drag"`
}

// Reorder handles POST /api/plans/reorder
func (h *PlanHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var payload reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	plan, err := h.reorder.ApplyDrag(payload.Plan, payload.Drag)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

type totalsRequest struct {
	Plan *entities.Plan `json:"plan"`
}

// Totals handles POST /api/plans/totals
func (h *PlanHandler) Totals(w http.ResponseWriter, r *http.Request) {
	var payload totalsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	respondWithJSON(w, http.StatusOK, h.pricing.Totals(payload.Plan))
}
