package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggestionProvider struct {
	instructions string
	err          error
	planDraft    *entities.PlanDraft
	planErr      error
}

func (s *stubSuggestionProvider) SuggestPlan(ctx context.Context, notes string, catalog *entities.CatalogDefinition) (*entities.PlanDraft, error) {
	return s.planDraft, s.planErr
}

func (s *stubSuggestionProvider) SuggestInstructions(ctx context.Context, treatmentName, goal string) (string, error) {
	return s.instructions, s.err
}

func newEditor(provider *stubSuggestionProvider) *EditorService {
	var p *stubSuggestionProvider
	if provider != nil {
		p = provider
	}
	if p == nil {
		return NewEditorService(NewPricingService(), NewPlanService(), nil)
	}
	return NewEditorService(NewPricingService(), NewPlanService(), p)
}

func TestSelectCategory_ResetsAllButID(t *testing.T) {
	editor := newEditor(nil)
	form := entities.Treatment{
		ID:           "t1",
		CategoryKey:  "injectables",
		TreatmentKey: "botox",
		Goal:         "old goal",
		Units:        "50",
		Price:        650,
	}

	next := editor.SelectCategory(form, "laser-light-therapy")

	assert.Equal(t, "t1", next.ID)
	assert.Equal(t, "laser-light-therapy", next.CategoryKey)
	assert.Empty(t, next.TreatmentKey)
	assert.Empty(t, next.Goal)
	assert.Empty(t, next.Units)
	assert.Zero(t, next.Price)
}

func TestSelectTreatment_HydratesFromDefaults(t *testing.T) {
	catalog := entities.DefaultCatalog()
	editor := newEditor(nil)

	form, err := editor.SelectTreatment(catalog, entities.Treatment{ID: "t1"}, "injectables", "botox", entities.LanguageEN)
	require.NoError(t, err)

	assert.Equal(t, "t1", form.ID)
	assert.True(t, form.IsBound())
	assert.Equal(t, "Reduce dynamic wrinkles.", form.Goal)
	assert.Equal(t, "50", form.Units)
	require.NotNil(t, form.PricePerUnit)
	assert.Equal(t, 13.0, *form.PricePerUnit)
	assert.Equal(t, 650.0, form.Price)
	assert.Contains(t, form.Contraindications, "botulinum toxin")
}

func TestSelectTreatment_OverwriteLeavesNoResidue(t *testing.T) {
	catalog := entities.DefaultCatalog()
	editor := newEditor(nil)

	form, err := editor.SelectTreatment(catalog, entities.Treatment{ID: "t1"}, "injectables", "botox", entities.LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "50", form.Units)

	// BBL has no units field; hydrating it must clear the stale value
	form, err = editor.SelectTreatment(catalog, form, "laser-light-therapy", "bbl", entities.LanguageEN)
	require.NoError(t, err)
	assert.Empty(t, form.Units)
	assert.Nil(t, form.PricePerUnit)
	assert.Equal(t, 500.0, form.Price)
}

func TestSelectTreatment_LocalizationFallback(t *testing.T) {
	catalog := entities.DefaultCatalog()
	category := catalog.Categories["injectables"]
	category.Items[0].Defaults.Goal = entities.LocalizedString{EN: "English only"}
	catalog.Categories["injectables"] = category

	editor := newEditor(nil)
	form, err := editor.SelectTreatment(catalog, entities.Treatment{ID: "t1"}, "injectables", "botox", entities.LanguageES)
	require.NoError(t, err)

	assert.Equal(t, "English only", form.Goal)
}

func TestSetQuantity_RecomputesPrice(t *testing.T) {
	catalog := entities.DefaultCatalog()
	editor := newEditor(nil)

	form, err := editor.SelectTreatment(catalog, entities.Treatment{ID: "t1"}, "injectables", "botox", entities.LanguageEN)
	require.NoError(t, err)

	form = editor.SetQuantity(catalog, form, entities.FieldUnits, "40")
	assert.Equal(t, 520.0, form.Price)

	// Editing a non-driving quantity field leaves the price alone
	form = editor.SetQuantity(catalog, form, entities.FieldVials, "3")
	assert.Equal(t, 520.0, form.Price)
}

func TestSetPricePerUnit_RecomputesPrice(t *testing.T) {
	catalog := entities.DefaultCatalog()
	editor := newEditor(nil)

	form, err := editor.SelectTreatment(catalog, entities.Treatment{ID: "t1"}, "injectables", "botox", entities.LanguageEN)
	require.NoError(t, err)

	form = editor.SetPricePerUnit(catalog, form, 15)
	assert.Equal(t, 750.0, form.Price)
}

func TestSave_RequiresBinding(t *testing.T) {
	editor := newEditor(nil)
	plan := &entities.Plan{Phases: []entities.Phase{{ID: "phase-a"}}}

	_, err := editor.Save(plan, entities.Treatment{ID: "t1"}, "phase-a")
	assert.Error(t, err)

	next, err := editor.Save(plan, entities.Treatment{ID: "t1", CategoryKey: "injectables", TreatmentKey: "botox"}, "phase-a")
	require.NoError(t, err)
	assert.Len(t, next.Phases[0].Treatments, 1)
}

func TestCancel_NeverBoundRemoves(t *testing.T) {
	editor := newEditor(nil)
	plan := &entities.Plan{Phases: []entities.Phase{
		{ID: "phase-a", Treatments: []entities.Treatment{{ID: "t1"}}},
	}}

	next := editor.Cancel(plan, "t1", "phase-a", false)
	assert.Empty(t, next.Phases[0].Treatments)

	// A previously bound treatment survives cancel untouched
	next = editor.Cancel(plan, "t1", "phase-a", true)
	assert.Len(t, next.Phases[0].Treatments, 1)
}

func TestSearch_CaseInsensitiveOverLocalizedNames(t *testing.T) {
	catalog := entities.DefaultCatalog()
	editor := newEditor(nil)

	results := editor.Search(catalog, "BOT", entities.LanguageEN)
	require.Len(t, results, 1)
	assert.Equal(t, "injectables", results[0].CategoryKey)
	assert.Equal(t, "botox", results[0].TreatmentKey)
	assert.Equal(t, "Botox", results[0].Name)

	results = editor.Search(catalog, "bót", entities.LanguageES)
	require.Len(t, results, 1)
	assert.Equal(t, "Bótox", results[0].Name)

	assert.Empty(t, editor.Search(catalog, "", entities.LanguageEN))
	assert.Empty(t, editor.Search(catalog, "zzz", entities.LanguageEN))
}

func TestSearch_StableOrderAcrossCategories(t *testing.T) {
	catalog := &entities.CatalogDefinition{
		Categories: map[string]entities.Category{
			"z-category": {
				DisplayName: entities.LocalizedString{EN: "Z Category"},
				Items: []entities.TreatmentDefinitionItem{
					{Key: "z-peel", Name: entities.LocalizedString{EN: "Glow Peel"}},
				},
			},
			"a-category": {
				DisplayName: entities.LocalizedString{EN: "A Category"},
				Items: []entities.TreatmentDefinitionItem{
					{Key: "a-peel", Name: entities.LocalizedString{EN: "Glow Facial"}},
				},
			},
		},
	}
	editor := newEditor(nil)

	first := editor.Search(catalog, "glow", entities.LanguageEN)
	require.Len(t, first, 2)
	assert.Equal(t, "a-category", first[0].CategoryKey)
	assert.Equal(t, "z-category", first[1].CategoryKey)

	// Map iteration order must not leak into results
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, editor.Search(catalog, "glow", entities.LanguageEN))
	}
}

func TestGenerateInstructions_BestEffort(t *testing.T) {
	catalog := entities.DefaultCatalog()
	form := entities.Treatment{ID: "t1", CategoryKey: "injectables", TreatmentKey: "botox", Goal: "reduce wrinkles", KeyInstructions: "original"}

	editor := newEditor(&stubSuggestionProvider{instructions: "avoid rubbing the area for 24 hours"})
	next := editor.GenerateInstructions(context.Background(), catalog, form, entities.LanguageEN)
	assert.Equal(t, "avoid rubbing the area for 24 hours", next.KeyInstructions)

	// Errors are swallowed and the field is left unchanged
	editor = newEditor(&stubSuggestionProvider{err: errors.New("provider down")})
	next = editor.GenerateInstructions(context.Background(), catalog, form, entities.LanguageEN)
	assert.Equal(t, "original", next.KeyInstructions)

	// No provider configured is a no-op
	editor = newEditor(nil)
	next = editor.GenerateInstructions(context.Background(), catalog, form, entities.LanguageEN)
	assert.Equal(t, "original", next.KeyInstructions)
}
