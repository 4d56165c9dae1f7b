package services

import (
	"context"
	"strings"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
	"github.com/google/uuid"
)

// SuggestionService turns free-text consultation notes into editable
// plans by resolving AI drafts against the tenant's catalog.
type SuggestionService struct {
	provider providers.SuggestionProvider
	pricing  *PricingService
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(provider providers.SuggestionProvider, pricing *PricingService) *SuggestionService {
	return &SuggestionService{provider: provider, pricing: pricing}
}

// GeneratePlan asks the provider for a draft and resolves it into a
// plan. Draft items whose (categoryKey, treatmentKey) pair does not
// exist in the catalog are skipped and counted rather than failing the
// whole suggestion. Resolved treatments are hydrated from catalog
// defaults, with the draft's goal/frequency/week taking precedence when
// present.
func (s *SuggestionService) GeneratePlan(ctx context.Context, catalog *entities.CatalogDefinition, notes, lang string) (*entities.PlanSuggestion, error) {
	if s.provider == nil {
		return nil, apperrors.NewExternalError("suggestion provider not configured", nil)
	}
	if strings.TrimSpace(notes) == "" {
		return nil, apperrors.NewValidationError("consultation notes are required")
	}

	draft, err := s.provider.SuggestPlan(ctx, notes, catalog)
	if err != nil {
		return nil, apperrors.NewExternalError("plan suggestion failed", err)
	}

	plan := &entities.Plan{
		ID:               uuid.New().String(),
		Title:            draft.Title,
		Date:             time.Now().Format("2006-01-02"),
		Provider:         catalog.PracticeInfo.Provider,
		Practice:         catalog.PracticeInfo,
		ProviderVerified: false,
		Investment:       entities.Investment{FinancingOptions: entities.DefaultFinancingOptions()},
		Phases:           make([]entities.Phase, 0, len(draft.Phases)),
	}
	if draft.Patient != nil {
		plan.Patient = *draft.Patient
	}

	skipped := 0
	for _, draftPhase := range draft.Phases {
		phase := entities.Phase{
			ID:         uuid.New().String(),
			Title:      draftPhase.Title,
			Treatments: make([]entities.Treatment, 0, len(draftPhase.Treatments)),
		}
		for _, draftTreatment := range draftPhase.Treatments {
			treatment, ok := s.resolve(catalog, draftTreatment, lang)
			if !ok {
				skipped++
				continue
			}
			phase.Treatments = append(phase.Treatments, treatment)
		}
		plan.Phases = append(plan.Phases, phase)
	}

	return &entities.PlanSuggestion{
		Plan:         plan,
		Patient:      draft.Patient,
		SkippedItems: skipped,
	}, nil
}

// resolve hydrates a draft treatment from its catalog item's defaults.
// Returns false when the reference does not resolve.
func (s *SuggestionService) resolve(catalog *entities.CatalogDefinition, draft entities.DraftTreatment, lang string) (entities.Treatment, bool) {
	item, ok := catalog.FindItem(draft.CategoryKey, draft.TreatmentKey)
	if !ok {
		return entities.Treatment{}, false
	}
	defaults := item.Defaults.Clone()

	contraindications := ""
	if defaults.Contraindications != nil {
		contraindications = defaults.Contraindications.Resolve(lang)
	}

	treatment := entities.Treatment{
		ID:                uuid.New().String(),
		CategoryKey:       draft.CategoryKey,
		TreatmentKey:      draft.TreatmentKey,
		Goal:              defaults.Goal.Resolve(lang),
		Frequency:         defaults.Frequency,
		Week:              defaults.Week,
		Price:             defaults.Price,
		PricePerUnit:      defaults.PricePerUnit,
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
	}

	if draft.Goal != "" {
		treatment.Goal = draft.Goal
	}
	if draft.Frequency != "" {
		treatment.Frequency = draft.Frequency
	}
	if draft.Week != "" {
		treatment.Week = draft.Week
	}

	treatment.Price = s.pricing.ComputePrice(&treatment, item)
	return treatment, true
}
