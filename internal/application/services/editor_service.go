package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
)

// EditorService drives a single treatment's create/edit/cancel/save
// lifecycle: catalog-driven field hydration, reactive price
// recomputation, typeahead search, and the best-effort instruction
// suggestion.
type EditorService struct {
	pricing     *PricingService
	plans       *PlanService
	suggestions providers.SuggestionProvider

	// instruction generation is serialized per treatment id so a slow
	// response cannot overwrite a newer one
	instructionLocks sync.Map
}

// NewEditorService creates a new editor service. The suggestion
// provider may be nil, which disables instruction generation.
func NewEditorService(pricing *PricingService, plans *PlanService, suggestions providers.SuggestionProvider) *EditorService {
	return &EditorService{
		pricing:     pricing,
		plans:       plans,
		suggestions: suggestions,
	}
}

// SearchResult is one typeahead hit.
type SearchResult struct {
	CategoryKey  string `json:"categoryKey"`
	TreatmentKey string `json:"treatmentKey"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
}

// SelectCategory resets the form to a blank treatment bound to the new
// category. Only the id survives; any previously hydrated fields are
// cleared so no residue from another item remains.
func (s *EditorService) SelectCategory(form entities.Treatment, categoryKey string) entities.Treatment {
	return entities.Treatment{
		ID:          form.ID,
		CategoryKey: categoryKey,
	}
}

// SelectTreatment hydrates the form from the catalog item's defaults.
// This is a full overwrite: every mutable field comes from a deep copy
// of the defaults, with goal and contraindications localized to the
// active language (English fallback). Id and binding keys are kept.
func (s *EditorService) SelectTreatment(catalog *entities.CatalogDefinition, form entities.Treatment, categoryKey, treatmentKey, lang string) (entities.Treatment, error) {
	item, ok := catalog.FindItem(categoryKey, treatmentKey)
	if !ok {
		return entities.Treatment{}, apperrors.NewNotFoundError("treatment not found in catalog")
	}
	defaults := item.Defaults.Clone()

	contraindications := ""
	if defaults.Contraindications != nil {
		contraindications = defaults.Contraindications.Resolve(lang)
	}

	return entities.Treatment{
		ID:                form.ID,
		CategoryKey:       categoryKey,
		TreatmentKey:      treatmentKey,
		Goal:              defaults.Goal.Resolve(lang),
		Frequency:         defaults.Frequency,
		Week:              defaults.Week,
		Price:             defaults.Price,
		PricePerUnit:      defaults.PricePerUnit,
		Discount:          0,
		Icon:              defaults.Icon,
		Contraindications: contraindications,
		TargetArea:        defaults.TargetArea,
		Units:             defaults.Units,
		Volume:            defaults.Volume,
		Vials:             defaults.Vials,
		Dosage:            defaults.Dosage,
		Application:       defaults.Application,
		Intensity:         defaults.Intensity,
		Technology:        defaults.Technology,
		SKU:               defaults.SKU,
		Brand:             defaults.Brand,
		ImageURL:          defaults.ImageURL,
		Cost:              defaults.Cost,
	}, nil
}

// SetQuantity updates the given quantity field and recomputes the
// price when that field drives pricing for the bound item. Edits to
// any other field never touch the price.
func (s *EditorService) SetQuantity(catalog *entities.CatalogDefinition, form entities.Treatment, field entities.DynamicField, value string) entities.Treatment {
	switch field {
	case entities.FieldUnits:
		form.Units = value
	case entities.FieldVolume:
		form.Volume = value
	case entities.FieldVials:
		form.Vials = value
	default:
		return form
	}

	if item, ok := catalog.FindItem(form.CategoryKey, form.TreatmentKey); ok && item.QuantityField() == field {
		form.Price = s.pricing.ComputePrice(&form, item)
	}
	return form
}

// SetPricePerUnit updates the unit price and recomputes the price for
// quantity-based items.
func (s *EditorService) SetPricePerUnit(catalog *entities.CatalogDefinition, form entities.Treatment, pricePerUnit float64) entities.Treatment {
	form.PricePerUnit = &pricePerUnit
	if item, ok := catalog.FindItem(form.CategoryKey, form.TreatmentKey); ok && item.QuantityField() != "" {
		form.Price = s.pricing.ComputePrice(&form, item)
	}
	return form
}

// Save validates the binding gate and persists the form into the plan
// tree. A treatment without both category and item selected is
// rejected with no mutation.
func (s *EditorService) Save(plan *entities.Plan, form entities.Treatment, targetPhaseID string) (*entities.Plan, error) {
	if !form.IsBound() {
		return nil, apperrors.NewValidationError("category and treatment must be selected before saving")
	}
	return s.plans.SaveTreatment(plan, form, targetPhaseID)
}

// Cancel discards an in-progress edit. A treatment that was never
// bound when editing began has nothing to revert to, so it is removed
// from the plan entirely. A previously bound treatment keeps its
// last-saved state and the plan is returned unchanged.
func (s *EditorService) Cancel(plan *entities.Plan, treatmentID, phaseID string, wasBound bool) *entities.Plan {
	if wasBound {
		return plan
	}
	return s.plans.RemoveTreatment(plan, treatmentID, phaseID)
}

// Search runs the case-insensitive typeahead over every item in every
// category, matching against the localized item name.
func (s *EditorService) Search(catalog *entities.CatalogDefinition, query, lang string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	// Category keys are sorted so result order is stable across calls
	categoryKeys := make([]string, 0, len(catalog.Categories))
	for categoryKey := range catalog.Categories {
		categoryKeys = append(categoryKeys, categoryKey)
	}
	sort.Strings(categoryKeys)

	var results []SearchResult
	for _, categoryKey := range categoryKeys {
		category := catalog.Categories[categoryKey]
		for _, item := range category.Items {
			name := item.Name.Resolve(lang)
			if strings.Contains(strings.ToLower(name), query) {
				results = append(results, SearchResult{
					CategoryKey:  categoryKey,
					TreatmentKey: item.Key,
					Name:         name,
					CategoryName: category.DisplayName.Resolve(lang),
				})
			}
		}
	}
	return results
}

// GenerateInstructions asks the AI provider for key instructions and,
// on success, overwrites the form's keyInstructions. Failures are
// logged and swallowed; the form comes back unchanged. Calls are
// serialized per treatment id so a stale response cannot clobber a
// newer one.
func (s *EditorService) GenerateInstructions(ctx context.Context, catalog *entities.CatalogDefinition, form entities.Treatment, lang string) entities.Treatment {
	if s.suggestions == nil || !form.IsBound() {
		return form
	}

	lockAny, _ := s.instructionLocks.LoadOrStore(form.ID, &sync.Mutex{})
	lock := lockAny.(*sync.Mutex)
	lock.Lock()
	defer lock.Unlock()

	name := catalog.ItemDisplayName(form.CategoryKey, form.TreatmentKey, lang)
	instructions, err := s.suggestions.SuggestInstructions(ctx, name, form.Goal)
	if err != nil {
		log.Printf("instruction suggestion failed for treatment %s: %v", form.ID, err)
		return form
	}
	form.KeyInstructions = instructions
	return form
}
