package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		apiKey:     "test-key",
		model:      "gpt-4o-mini",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func responsesBody(text string) string {
	envelope := map[string]interface{}{
		"output": []map[string]interface{}{
			{
				"content": []map[string]string{
					{"type": "output_text", "text": text},
				},
			},
		},
	}
	data, _ := json.Marshal(envelope)
	return string(data)
}

func TestParsePlanDraft_ValidResponse(t *testing.T) {
	raw := `{
		"title": "Forehead Smoothing Plan",
		"patient": {"name": "Jane Doe", "age": 42, "sex": "female"},
		"phases": [
			{
				"title": "Phase 1: Foundation",
				"treatments": [
					{"categoryKey": "injectables", "treatmentKey": "botox", "goal": "Soften forehead lines", "week": "1"}
				]
			}
		]
	}`

	draft, err := parsePlanDraft([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Title != "Forehead Smoothing Plan" {
		t.Errorf("wrong title: %s", draft.Title)
	}
	if draft.Patient == nil || draft.Patient.Name != "Jane Doe" {
		t.Error("patient not parsed")
	}
	if len(draft.Phases) != 1 || len(draft.Phases[0].Treatments) != 1 {
		t.Fatalf("wrong shape: %+v", draft.Phases)
	}
	if draft.Phases[0].Treatments[0].TreatmentKey != "botox" {
		t.Errorf("wrong treatment key: %s", draft.Phases[0].Treatments[0].TreatmentKey)
	}
}

func TestParsePlanDraft_MissingPhases_FailsValidation(t *testing.T) {
	_, err := parsePlanDraft([]byte(`{"title": "No phases"}`))
	if err == nil {
		t.Error("expected schema validation error")
	}
}

func TestParsePlanDraft_TreatmentWithoutKeys_FailsValidation(t *testing.T) {
	raw := `{
		"title": "Broken",
		"phases": [
			{"title": "Phase 1", "treatments": [{"goal": "no keys here"}]}
		]
	}`
	_, err := parsePlanDraft([]byte(raw))
	if err == nil {
		t.Error("expected schema validation error")
	}
}

func TestParsePlanDraft_InvalidJSON(t *testing.T) {
	_, err := parsePlanDraft([]byte("not json"))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
	}
	for input, expected := range cases {
		if got := stripCodeFences(input); got != expected {
			t.Errorf("stripCodeFences(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestBuildPlanUserPrompt_ListsCatalogAndNotes(t *testing.T) {
	catalog := entities.DefaultCatalog()
	prompt := buildPlanUserPrompt("Patient wants smoother forehead.", catalog)

	for _, expected := range []string{"injectables", "botox", "Patient wants smoother forehead."} {
		if !strings.Contains(prompt, expected) {
			t.Errorf("prompt should contain %q", expected)
		}
	}
}

func TestSuggestPlan_RoundTrip(t *testing.T) {
	draftJSON := `{
		"title": "Suggested Plan",
		"phases": [
			{"title": "Phase 1: Foundation", "treatments": [{"categoryKey": "injectables", "treatmentKey": "botox"}]}
		]
	}`

	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", auth)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responsesBody("```json\n" + draftJSON + "\n```")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	draft, err := client.SuggestPlan(context.Background(), "smoother forehead", entities.DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Title != "Suggested Plan" {
		t.Errorf("wrong title: %s", draft.Title)
	}
	if gotBody["model"] != "gpt-4o-mini" {
		t.Errorf("wrong model in payload: %v", gotBody["model"])
	}
}

func TestSuggestPlan_UnauthorizedWrapsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SuggestPlan(context.Background(), "notes", entities.DefaultCatalog())
	if !errors.Is(err, providers.ErrSuggestionUnauthorized) {
		t.Errorf("expected ErrSuggestionUnauthorized, got %v", err)
	}
}

func TestSuggestPlan_EmptyNotes(t *testing.T) {
	client := newTestClient("http://unused")
	if _, err := client.SuggestPlan(context.Background(), "   ", entities.DefaultCatalog()); err == nil {
		t.Error("expected error for blank notes")
	}
}

func TestSuggestInstructions_TrimsOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responsesBody("\nAvoid rubbing the treated area for 24 hours.\n")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.SuggestInstructions(context.Background(), "Botox", "Reduce wrinkles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Avoid rubbing the treated area for 24 hours." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestSuggestInstructions_RequiresName(t *testing.T) {
	client := newTestClient("http://unused")
	if _, err := client.SuggestInstructions(context.Background(), "", "goal"); err == nil {
		t.Error("expected error for missing treatment name")
	}
}
