package handlers_test

import (
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

func newEditorHandler() *handlers.EditorHandler {
	pricing := services.NewPricingService()
	plans := services.NewPlanService()
	editor := services.NewEditorService(pricing, plans, nil)
	return handlers.NewEditorHandler(newCatalogService(), editor)
}

func TestEditorSelectTreatment_HydratesDefaults(t *testing.T) {
	handler := newEditorHandler()

	req := httptest.NewRequest("POST", "/api/editor/treatment", jsonBody(t, map[string]interface{}{
		"form":         map[string]interface{}{"id": "t-1"},
		"categoryKey":  "injectables",
		"treatmentKey": "botox",
	}))
	w := httptest.NewRecorder()
	handler.SelectTreatment(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var form entities.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &form))
	assert.Equal(t, "t-1", form.ID)
	assert.Equal(t, "botox", form.TreatmentKey)
	assert.NotEmpty(t, form.Goal)
	assert.NotEmpty(t, form.Units)
}

func TestEditorSelectTreatment_UnknownItem(t *testing.T) {
	handler := newEditorHandler()

	req := httptest.NewRequest("POST", "/api/editor/treatment", jsonBody(t, map[string]interface{}{
		"form":         map[string]interface{}{"id": "t-1"},
		"categoryKey":  "injectables",
		"treatmentKey": "no-such-item",
	}))
	w := httptest.NewRecorder()
	handler.SelectTreatment(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditorSetQuantity_RecomputesPrice(t *testing.T) {
	handler := newEditorHandler()

	selectReq := httptest.NewRequest("POST", "/api/editor/treatment", jsonBody(t, map[string]interface{}{
		"form":         map[string]interface{}{"id": "t-1"},
		"categoryKey":  "injectables",
		"treatmentKey": "botox",
	}))
	selectW := httptest.NewRecorder()
	handler.SelectTreatment(selectW, selectReq)
	require.Equal(t, http.StatusOK, selectW.Code)

	var form entities.Treatment
	require.NoError(t, json.Unmarshal(selectW.Body.Bytes(), &form))

	req := httptest.NewRequest("POST", "/api/editor/quantity", jsonBody(t, map[string]interface{}{
		"form":  form,
		"field": "units",
		"value": "40",
	}))
	w := httptest.NewRecorder()
	handler.SetQuantity(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated entities.Treatment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "40", updated.Units)
	require.NotNil(t, updated.PricePerUnit)
	assert.InDelta(t, 40*(*updated.PricePerUnit), updated.Price, 0.001)
}

func TestEditorSetQuantity_RejectsUnknownField(t *testing.T) {
	handler := newEditorHandler()

	req := httptest.NewRequest("POST", "/api/editor/quantity", jsonBody(t, map[string]interface{}{
		"form":  map[string]interface{}{"id": "t-1"},
		"field": "bogus",
		"value": "40",
	}))
	w := httptest.NewRecorder()
	handler.SetQuantity(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditorSearch(t *testing.T) {
	handler := newEditorHandler()

	req := httptest.NewRequest("GET", "/api/editor/search?q=bot", nil)
	w := httptest.NewRecorder()
	handler.Search(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var results []services.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "botox", results[0].TreatmentKey)
}

func TestEditorSearch_EmptyQueryReturnsEmptyList(t *testing.T) {
	handler := newEditorHandler()

	req := httptest.NewRequest("GET", "/api/editor/search", nil)
	w := httptest.NewRecorder()
	handler.Search(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, "[]", w.Body.String())
}

func TestEditorSave_RequiresBinding(t *testing.T) {
	handler := newEditorHandler()

	req := httptest.NewRequest("POST", "/api/editor/save", jsonBody(t, map[string]interface{}{
		"plan": map[string]interface{}{"id": "p-1"},
		"form": map[string]interface{}{"id": "t-1"},
	}))
	w := httptest.NewRecorder()
	handler.Save(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
