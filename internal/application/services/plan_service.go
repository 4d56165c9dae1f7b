package services

import (
	"fmt"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
	"github.com/google/uuid"
)

// PlanService owns the plan's phase/treatment tree. Every operation
// works on an immutable snapshot: the input plan is never mutated and
// a new plan value is returned.
type PlanService struct{}

// NewPlanService creates a new plan service.
func NewPlanService() *PlanService {
	return &PlanService{}
}

// AddPhase appends a new empty phase. The title defaults to the first
// unused entry of the catalog's phase-title options, falling back to
// "Phase N".
func (s *PlanService) AddPhase(plan *entities.Plan, catalog *entities.CatalogDefinition, lang string) *entities.Plan {
	next := plan.Clone()

	used := make(map[string]bool, len(next.Phases))
	for _, phase := range next.Phases {
		used[phase.Title] = true
	}

	title := fmt.Sprintf("Phase %d", len(next.Phases)+1)
	if catalog != nil {
		for _, opt := range catalog.PhaseTitleOptions() {
			label := opt.Label.Resolve(lang)
			if label != "" && !used[label] {
				title = label
				break
			}
		}
	}

	next.Phases = append(next.Phases, entities.Phase{
		ID:         uuid.New().String(),
		Title:      title,
		Treatments: []entities.Treatment{},
	})
	return next
}

// RemovePhase removes the phase and all its treatments. Removing an
// unknown phase is a no-op.
func (s *PlanService) RemovePhase(plan *entities.Plan, phaseID string) *entities.Plan {
	next := plan.Clone()
	phases := next.Phases[:0]
	for _, phase := range next.Phases {
		if phase.ID != phaseID {
			phases = append(phases, phase)
		}
	}
	next.Phases = phases
	return next
}

// AddTreatment appends an empty treatment (no catalog binding yet) to
// the named phase and returns its generated id.
func (s *PlanService) AddTreatment(plan *entities.Plan, phaseID string) (*entities.Plan, string, error) {
	next := plan.Clone()
	for pi := range next.Phases {
		if next.Phases[pi].ID == phaseID {
			treatment := entities.Treatment{ID: uuid.New().String()}
			next.Phases[pi].Treatments = append(next.Phases[pi].Treatments, treatment)
			return next, treatment.ID, nil
		}
	}
	return nil, "", apperrors.NewNotFoundError(fmt.Sprintf("phase %s not found", phaseID))
}

// SaveTreatment persists edited treatment state into the tree, keyed by
// treatment id. Three cases:
//   - found in the target phase: in-place replace;
//   - found in a different phase: remove from source, append to target;
//   - found nowhere: append as new to the target phase.
func (s *PlanService) SaveTreatment(plan *entities.Plan, treatment entities.Treatment, targetPhaseID string) (*entities.Plan, error) {
	next := plan.Clone()

	targetIdx := -1
	for pi := range next.Phases {
		if next.Phases[pi].ID == targetPhaseID {
			targetIdx = pi
			break
		}
	}
	if targetIdx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("phase %s not found", targetPhaseID))
	}

	_, currentPhaseID, found := next.FindTreatment(treatment.ID)

	if found && currentPhaseID == targetPhaseID {
		phase := &next.Phases[targetIdx]
		for ti := range phase.Treatments {
			if phase.Treatments[ti].ID == treatment.ID {
				phase.Treatments[ti] = *treatment.Clone()
				break
			}
		}
		return next, nil
	}

	if found {
		// Cross-phase save relocates by appending to the target
		s.removeFromPhase(next, treatment.ID, currentPhaseID)
	}
	next.Phases[targetIdx].Treatments = append(next.Phases[targetIdx].Treatments, *treatment.Clone())
	return next, nil
}

// RemoveTreatment filters the treatment out of the named phase only.
// The lookup is phase-scoped, unlike SaveTreatment's plan-wide search.
func (s *PlanService) RemoveTreatment(plan *entities.Plan, treatmentID, phaseID string) *entities.Plan {
	next := plan.Clone()
	s.removeFromPhase(next, treatmentID, phaseID)
	return next
}

// MoveTreatment removes the treatment from the source phase and inserts
// it into the target phase, immediately before targetTreatmentID when
// given and present, otherwise appended at the end.
func (s *PlanService) MoveTreatment(plan *entities.Plan, treatmentID, sourcePhaseID, targetPhaseID, targetTreatmentID string) (*entities.Plan, error) {
	next := plan.Clone()

	var moved *entities.Treatment
	for pi := range next.Phases {
		if next.Phases[pi].ID != sourcePhaseID {
			continue
		}
		phase := &next.Phases[pi]
		for ti := range phase.Treatments {
			if phase.Treatments[ti].ID == treatmentID {
				moved = phase.Treatments[ti].Clone()
				phase.Treatments = append(phase.Treatments[:ti], phase.Treatments[ti+1:]...)
				break
			}
		}
	}
	if moved == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("treatment %s not found in phase %s", treatmentID, sourcePhaseID))
	}

	for pi := range next.Phases {
		if next.Phases[pi].ID != targetPhaseID {
			continue
		}
		phase := &next.Phases[pi]
		insertAt := len(phase.Treatments)
		if targetTreatmentID != "" {
			for ti := range phase.Treatments {
				if phase.Treatments[ti].ID == targetTreatmentID {
					insertAt = ti
					break
				}
			}
		}
		phase.Treatments = append(phase.Treatments, entities.Treatment{})
		copy(phase.Treatments[insertAt+1:], phase.Treatments[insertAt:])
		phase.Treatments[insertAt] = *moved
		return next, nil
	}

	return nil, apperrors.NewNotFoundError(fmt.Sprintf("phase %s not found", targetPhaseID))
}

func (s *PlanService) removeFromPhase(plan *entities.Plan, treatmentID, phaseID string) {
	for pi := range plan.Phases {
		if plan.Phases[pi].ID != phaseID {
			continue
		}
		phase := &plan.Phases[pi]
		treatments := phase.Treatments[:0]
		for _, t := range phase.Treatments {
			if t.ID != treatmentID {
				treatments = append(treatments, t)
			}
		}
		phase.Treatments = treatments
		return
	}
}
