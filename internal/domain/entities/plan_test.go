package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanClone_DeepCopies(t *testing.T) {
	ppu := 13.0
	plan := &Plan{
		ID:    "plan-1",
		Title: "Test Plan",
		Phases: []Phase{
			{
				ID:    "phase-a",
				Title: "Phase 1",
				Treatments: []Treatment{
					{ID: "t1", CategoryKey: "injectables", TreatmentKey: "botox", PricePerUnit: &ppu, TargetArea: []string{"forehead"}},
				},
				ControlsAndMetrics: []string{"photos"},
			},
		},
		GeneralRecommendations: []Recommendation{{Text: "Sunscreen", Checked: true}},
		NextSteps:              []string{"Book follow-up"},
		Investment:             Investment{FinancingOptions: []FinancingOption{{Months: 6}}},
	}

	clone := plan.Clone()
	clone.Phases[0].Title = "Mutated"
	clone.Phases[0].Treatments[0].TargetArea[0] = "cheeks"
	*clone.Phases[0].Treatments[0].PricePerUnit = 99
	clone.GeneralRecommendations[0].Checked = false
	clone.Investment.FinancingOptions[0].Months = 48

	assert.Equal(t, "Phase 1", plan.Phases[0].Title)
	assert.Equal(t, "forehead", plan.Phases[0].Treatments[0].TargetArea[0])
	assert.Equal(t, 13.0, *plan.Phases[0].Treatments[0].PricePerUnit)
	assert.True(t, plan.GeneralRecommendations[0].Checked)
	assert.Equal(t, 6, plan.Investment.FinancingOptions[0].Months)
}

func TestPlanFindTreatment(t *testing.T) {
	plan := &Plan{
		Phases: []Phase{
			{ID: "phase-a", Treatments: []Treatment{{ID: "t1"}, {ID: "t2"}}},
			{ID: "phase-b", Treatments: []Treatment{{ID: "t3"}}},
		},
	}

	treatment, phaseID, ok := plan.FindTreatment("t3")
	require.True(t, ok)
	assert.Equal(t, "t3", treatment.ID)
	assert.Equal(t, "phase-b", phaseID)

	_, _, ok = plan.FindTreatment("missing")
	assert.False(t, ok)
}

func TestTreatmentIsBound(t *testing.T) {
	assert.False(t, (&Treatment{ID: "t1"}).IsBound())
	assert.False(t, (&Treatment{ID: "t1", CategoryKey: "injectables"}).IsBound())
	assert.True(t, (&Treatment{ID: "t1", CategoryKey: "injectables", TreatmentKey: "botox"}).IsBound())
}

func TestTemplateClone_NonAliasing(t *testing.T) {
	catalog := DefaultCatalog()
	template, ok := catalog.FindTemplate("anti-aging-foundation")
	require.True(t, ok)

	first := template.Clone()
	second := template.Clone()
	first.Phases[0].Title = "Mutated"
	first.Phases[0].Treatments[0].TargetArea = append(first.Phases[0].Treatments[0].TargetArea, "legs")

	assert.Equal(t, "Initial Assessment & Foundation Treatments", template.Phases[0].Title)
	assert.Equal(t, "Initial Assessment & Foundation Treatments", second.Phases[0].Title)
}
