package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aesthetics360/planstudio/internal/api/handlers"
	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSuggestionProvider struct {
	draft *entities.PlanDraft
	err   error
}

func (p *fixedSuggestionProvider) SuggestPlan(ctx context.Context, notes string, catalog *entities.CatalogDefinition) (*entities.PlanDraft, error) {
	return p.draft, p.err
}

func (p *fixedSuggestionProvider) SuggestInstructions(ctx context.Context, treatmentName, goal string) (string, error) {
	return "", nil
}

func newSuggestionHandler(provider *fixedSuggestionProvider) *handlers.SuggestionHandler {
	suggestions := services.NewSuggestionService(provider, services.NewPricingService())
	return handlers.NewSuggestionHandler(newCatalogService(), suggestions)
}

func TestSuggestPlan_ResolvesDraft(t *testing.T) {
	handler := newSuggestionHandler(&fixedSuggestionProvider{
		draft: &entities.PlanDraft{
			Title: "Suggested Plan",
			Phases: []entities.DraftPhase{
				{
					Title: "Phase 1: Foundation",
					Treatments: []entities.DraftTreatment{
						{CategoryKey: "injectables", TreatmentKey: "botox"},
						{CategoryKey: "injectables", TreatmentKey: "no-such-item"},
					},
				},
			},
		},
	})

	req := httptest.NewRequest("POST", "/api/suggestions/plan", jsonBody(t, map[string]interface{}{
		"notes": "Patient wants a smoother forehead.",
	}))
	w := httptest.NewRecorder()
	handler.SuggestPlan(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var suggestion entities.PlanSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestion))
	require.NotNil(t, suggestion.Plan)
	assert.Equal(t, "Suggested Plan", suggestion.Plan.Title)
	assert.Equal(t, 1, suggestion.SkippedItems)
	require.Len(t, suggestion.Plan.Phases, 1)
	assert.Len(t, suggestion.Plan.Phases[0].Treatments, 1)
}

func TestSuggestPlan_RequiresNotes(t *testing.T) {
	handler := newSuggestionHandler(&fixedSuggestionProvider{})

	req := httptest.NewRequest("POST", "/api/suggestions/plan", jsonBody(t, map[string]interface{}{
		"notes": "",
	}))
	w := httptest.NewRecorder()
	handler.SuggestPlan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestPlan_NoProviderConfigured(t *testing.T) {
	suggestions := services.NewSuggestionService(nil, services.NewPricingService())
	handler := handlers.NewSuggestionHandler(newCatalogService(), suggestions)

	req := httptest.NewRequest("POST", "/api/suggestions/plan", jsonBody(t, map[string]interface{}{
		"notes": "notes",
	}))
	w := httptest.NewRecorder()
	handler.SuggestPlan(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
