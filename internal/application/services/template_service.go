package services

import (
	"fmt"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
	"github.com/google/uuid"
)

// TemplateService instantiates plans from the catalog's templates.
type TemplateService struct{}

// NewTemplateService creates a new template service.
func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

// Instantiate builds a new plan from a template. The template is
// deep-copied, never aliased; localized template fields are resolved to
// the given language; per-treatment contraindications are normalized to
// plain strings exactly once here; and the catalog's practice info is
// snapshotted onto the plan so later catalog edits do not retroactively
// alter it.
func (s *TemplateService) Instantiate(
	catalog *entities.CatalogDefinition,
	templateID string,
	patient entities.Patient,
	lang string,
) (*entities.Plan, error) {
	template, ok := catalog.FindTemplate(templateID)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("plan template %s not found", templateID))
	}
	copied := template.Clone()

	provider := copied.Provider
	if provider == "" {
		provider = catalog.PracticeInfo.Provider
	}

	plan := &entities.Plan{
		ID:                     uuid.New().String(),
		Title:                  copied.Title.Resolve(lang),
		Patient:                patient,
		Provider:               provider,
		Date:                   time.Now().Format("2006-01-02"),
		Practice:               catalog.PracticeInfo,
		ProviderVerified:       false,
		Phases:                 make([]entities.Phase, 0, len(copied.Phases)),
		AMRoutine:              copied.AMRoutine,
		PMRoutine:              copied.PMRoutine,
		SkincareInstructions:   copied.SkincareInstructions,
		GeneralRecommendations: copied.GeneralRecommendations,
		Investment:             copied.Investment,
		NextSteps:              copied.NextSteps,
		Notes:                  copied.Notes.Resolve(lang),
	}

	for _, templatePhase := range copied.Phases {
		phase := entities.Phase{
			ID:                 templatePhase.ID,
			Title:              templatePhase.Title,
			Treatments:         make([]entities.Treatment, 0, len(templatePhase.Treatments)),
			ControlsAndMetrics: templatePhase.ControlsAndMetrics,
		}
		for _, tt := range templatePhase.Treatments {
			phase.Treatments = append(phase.Treatments, s.materialize(catalog, tt, lang))
		}
		plan.Phases = append(plan.Phases, phase)
	}

	return plan, nil
}

// materialize converts a template treatment to a plan treatment,
// resolving the contraindication variant against the catalog default.
func (s *TemplateService) materialize(catalog *entities.CatalogDefinition, tt entities.TemplateTreatment, lang string) entities.Treatment {
	fallback := ""
	if item, ok := catalog.FindItem(tt.CategoryKey, tt.TreatmentKey); ok && item.Defaults.Contraindications != nil {
		fallback = item.Defaults.Contraindications.Resolve(lang)
	}

	return entities.Treatment{
		ID:                tt.ID,
		CategoryKey:       tt.CategoryKey,
		TreatmentKey:      tt.TreatmentKey,
		Goal:              tt.Goal,
		Frequency:         tt.Frequency,
		Week:              tt.Week,
		Price:             tt.Price,
		PricePerUnit:      tt.PricePerUnit,
		Discount:          tt.Discount,
		Icon:              tt.Icon,
		KeyInstructions:   tt.KeyInstructions,
		Contraindications: tt.Contraindications.Resolve(lang, fallback),
		TargetArea:        tt.TargetArea,
		Units:             tt.Units,
		Volume:            tt.Volume,
		Vials:             tt.Vials,
		Dosage:            tt.Dosage,
		Application:       tt.Application,
		Intensity:         tt.Intensity,
		Technology:        tt.Technology,
	}
}
