package services

import (
	"testing"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPhasePlan() *entities.Plan {
	return &entities.Plan{
		ID: "plan-1",
		Phases: []entities.Phase{
			{ID: "phase-a", Title: "Phase A", Treatments: []entities.Treatment{
				{ID: "t1", Goal: "goal 1"},
				{ID: "t2", Goal: "goal 2"},
			}},
			{ID: "phase-b", Title: "Phase B", Treatments: []entities.Treatment{
				{ID: "t3", Goal: "goal 3"},
			}},
		},
	}
}

func treatmentIDs(phase entities.Phase) []string {
	ids := make([]string, len(phase.Treatments))
	for i, t := range phase.Treatments {
		ids[i] = t.ID
	}
	return ids
}

func TestAddPhase_UsesPhaseTitleOptions(t *testing.T) {
	svc := NewPlanService()
	catalog := entities.DefaultCatalog()
	plan := &entities.Plan{}

	plan = svc.AddPhase(plan, catalog, entities.LanguageEN)
	require.Len(t, plan.Phases, 1)
	assert.Equal(t, "Foundation", plan.Phases[0].Title)
	assert.NotEmpty(t, plan.Phases[0].ID)

	plan = svc.AddPhase(plan, catalog, entities.LanguageEN)
	assert.Equal(t, "Correction", plan.Phases[1].Title)
}

func TestAddPhase_FallbackTitle(t *testing.T) {
	svc := NewPlanService()
	plan := &entities.Plan{Phases: []entities.Phase{{ID: "p1", Title: "Existing"}}}

	next := svc.AddPhase(plan, nil, entities.LanguageEN)

	require.Len(t, next.Phases, 2)
	assert.Equal(t, "Phase 2", next.Phases[1].Title)
	// Input plan is untouched
	assert.Len(t, plan.Phases, 1)
}

func TestRemovePhase_Cascades(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	next := svc.RemovePhase(plan, "phase-a")

	require.Len(t, next.Phases, 1)
	assert.Equal(t, "phase-b", next.Phases[0].ID)
	// Input plan is untouched
	assert.Len(t, plan.Phases, 2)
}

func TestAddTreatment_AppendsEmpty(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	next, id, err := svc.AddTreatment(plan, "phase-b")
	require.NoError(t, err)
	require.Len(t, next.Phases[1].Treatments, 2)
	assert.Equal(t, id, next.Phases[1].Treatments[1].ID)
	assert.False(t, next.Phases[1].Treatments[1].IsBound())

	_, _, err = svc.AddTreatment(plan, "missing")
	assert.Error(t, err)
}

func TestSaveTreatment_InPlaceReplace(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	edited := entities.Treatment{ID: "t1", Goal: "updated goal"}
	next, err := svc.SaveTreatment(plan, edited, "phase-a")
	require.NoError(t, err)

	assert.Equal(t, []string{"t1", "t2"}, treatmentIDs(next.Phases[0]))
	assert.Equal(t, "updated goal", next.Phases[0].Treatments[0].Goal)
	assert.Equal(t, "goal 1", plan.Phases[0].Treatments[0].Goal)
}

func TestSaveTreatment_CrossPhaseMoveAppends(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	edited := entities.Treatment{ID: "t1", Goal: "moved"}
	next, err := svc.SaveTreatment(plan, edited, "phase-b")
	require.NoError(t, err)

	assert.Equal(t, []string{"t2"}, treatmentIDs(next.Phases[0]))
	assert.Equal(t, []string{"t3", "t1"}, treatmentIDs(next.Phases[1]))
}

func TestSaveTreatment_AppendsNewWhenUnknown(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	next, err := svc.SaveTreatment(plan, entities.Treatment{ID: "t9"}, "phase-b")
	require.NoError(t, err)

	assert.Equal(t, []string{"t3", "t9"}, treatmentIDs(next.Phases[1]))

	_, err = svc.SaveTreatment(plan, entities.Treatment{ID: "t9"}, "missing")
	assert.Error(t, err)
}

func TestRemoveTreatment_IsPhaseScoped(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	// Wrong phase: nothing is removed
	next := svc.RemoveTreatment(plan, "t1", "phase-b")
	assert.Equal(t, []string{"t1", "t2"}, treatmentIDs(next.Phases[0]))
	assert.Equal(t, []string{"t3"}, treatmentIDs(next.Phases[1]))

	next = svc.RemoveTreatment(plan, "t1", "phase-a")
	assert.Equal(t, []string{"t2"}, treatmentIDs(next.Phases[0]))
}

func TestMoveTreatment_InsertsBeforeTarget(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	next, err := svc.MoveTreatment(plan, "t1", "phase-a", "phase-b", "t3")
	require.NoError(t, err)

	assert.Equal(t, []string{"t2"}, treatmentIDs(next.Phases[0]))
	assert.Equal(t, []string{"t1", "t3"}, treatmentIDs(next.Phases[1]))
}

func TestMoveTreatment_AppendsWithoutTarget(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	next, err := svc.MoveTreatment(plan, "t1", "phase-a", "phase-b", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t1"}, treatmentIDs(next.Phases[1]))

	// Unknown target treatment also appends
	next, err = svc.MoveTreatment(plan, "t2", "phase-a", "phase-b", "missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2"}, treatmentIDs(next.Phases[1]))
}

func TestMoveVsSaveRelocate_ProduceDifferentOrderings(t *testing.T) {
	svc := NewPlanService()

	saved, err := svc.SaveTreatment(twoPhasePlan(), entities.Treatment{ID: "t1"}, "phase-b")
	require.NoError(t, err)
	moved, err := svc.MoveTreatment(twoPhasePlan(), "t1", "phase-a", "phase-b", "t3")
	require.NoError(t, err)

	assert.Equal(t, []string{"t3", "t1"}, treatmentIDs(saved.Phases[1]))
	assert.Equal(t, []string{"t1", "t3"}, treatmentIDs(moved.Phases[1]))
}

func TestIDUniquenessAfterMutations(t *testing.T) {
	svc := NewPlanService()
	plan := twoPhasePlan()

	plan, err := svc.MoveTreatment(plan, "t1", "phase-a", "phase-b", "t3")
	require.NoError(t, err)
	plan, err = svc.SaveTreatment(plan, entities.Treatment{ID: "t1", Goal: "edited"}, "phase-a")
	require.NoError(t, err)
	plan, _, err = svc.AddTreatment(plan, "phase-b")
	require.NoError(t, err)
	plan = svc.RemoveTreatment(plan, "t2", "phase-a")

	seen := map[string]bool{}
	for _, phase := range plan.Phases {
		for _, treatment := range phase.Treatments {
			assert.False(t, seen[treatment.ID], "duplicate id %s", treatment.ID)
			seen[treatment.ID] = true
		}
	}
}
