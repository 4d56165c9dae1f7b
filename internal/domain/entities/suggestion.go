package entities

// DraftTreatment is one AI-suggested treatment reference. It may point
// at a (categoryKey, treatmentKey) pair that does not exist in the
// tenant's catalog; resolution and skipping happen in the suggestion
// service.
type DraftTreatment struct {
	CategoryKey  string `json:"categoryKey"`
	TreatmentKey string `json:"treatmentKey"`
	Goal         string `json:"goal,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Week         string `json:"week,omitempty"`
}

// DraftPhase is one AI-suggested phase.
type DraftPhase struct {
	Title      string           `json:"title"`
	Treatments []DraftTreatment `json:"treatments"`
}

// PlanDraft is the raw AI suggestion produced from consultation notes,
// before it is resolved against the catalog.
type PlanDraft struct {
	Title   string       `json:"title"`
	Patient *Patient     `json:"patient,omitempty"`
	Phases  []DraftPhase `json:"phases"`
}

// PlanSuggestion is a resolved suggestion: a ready-to-edit plan plus
// any patient details extracted from the notes.
type PlanSuggestion struct {
	Plan         *Plan    `json:"plan"`
	Patient      *Patient `json:"patient,omitempty"`
	SkippedItems int      `json:"skippedItems"`
}
