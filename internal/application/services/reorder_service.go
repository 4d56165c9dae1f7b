package services

import (
	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// DragDescriptor captures a drag gesture over the plan tree: the
// treatment being dragged, its source phase, and the drop position. An
// empty TargetTreatmentID means the drop landed on the phase body
// rather than on a specific treatment.
type DragDescriptor struct {
	SourceTreatmentID string `json:"sourceTreatmentId"`
	SourcePhaseID     string `json:"sourcePhaseId"`
	TargetTreatmentID string `json:"targetTreatmentId"`
	TargetPhaseID     string `json:"targetPhaseId"`
}

// ReorderService resolves drag-and-drop gestures into plan mutations.
type ReorderService struct {
	plans *PlanService
}

// NewReorderService creates a new reorder service.
func NewReorderService(plans *PlanService) *ReorderService {
	return &ReorderService{plans: plans}
}

// ApplyDrag applies a completed drag. Dropping a treatment onto itself
// is a no-op and returns the plan unchanged.
func (s *ReorderService) ApplyDrag(plan *entities.Plan, drag DragDescriptor) (*entities.Plan, error) {
	if drag.SourceTreatmentID == drag.TargetTreatmentID {
		return plan, nil
	}
	return s.plans.MoveTreatment(plan, drag.SourceTreatmentID, drag.SourcePhaseID, drag.TargetPhaseID, drag.TargetTreatmentID)
}
