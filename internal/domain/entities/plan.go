package entities

// Patient identifies the person a plan was written for.
type Patient struct {
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
	Sex  string `json:"sex,omitempty"`
}

// PlanContraindications is the intake summary recorded on the plan itself,
// distinct from per-treatment contraindications.
type PlanContraindications struct {
	Medications        string `json:"medications,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	MedicalHistory     string `json:"medicalHistory,omitempty"`
	PreviousTreatments string `json:"previousTreatments,omitempty"`
}

// FinancingOption is one payment-plan choice offered on the document.
// APR is informational only; the monthly estimate is total divided by
// months with no amortization.
type FinancingOption struct {
	Months int     `json:"months"`
	APR    float64 `json:"apr"`
}

// Investment holds the plan-level discount and financing choices.
type Investment struct {
	DiscountPercent  float64           `json:"discountPercent"`
	FinancingOptions []FinancingOption `json:"financingOptions,omitempty"`
}

// Recommendation is one checklist entry in the plan's general
// recommendations.
type Recommendation struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Treatment is a plan-instance treatment. It starts empty (no catalog
// binding) and is hydrated from catalog defaults once a category and
// item are chosen. Contraindications here are always a plain string;
// normalization from the catalog's localized shape happens at
// instantiation or hydration time.
type Treatment struct {
	ID                string   `json:"id"`
	CategoryKey       string   `json:"categoryKey,omitempty"`
	TreatmentKey      string   `json:"treatmentKey,omitempty"`
	Goal              string   `json:"goal,omitempty"`
	Frequency         string   `json:"frequency,omitempty"`
	Week              string   `json:"week,omitempty"`
	Price             float64  `json:"price"`
	PricePerUnit      *float64 `json:"pricePerUnit,omitempty"`
	Discount          float64  `json:"discount"`
	Icon              string   `json:"icon,omitempty"`
	KeyInstructions   string   `json:"keyInstructions,omitempty"`
	Contraindications string   `json:"contraindications,omitempty"`
	TargetArea        []string `json:"targetArea,omitempty"`
	Units             string   `json:"units,omitempty"`
	Volume            string   `json:"volume,omitempty"`
	Vials             string   `json:"vials,omitempty"`
	Dosage            string   `json:"dosage,omitempty"`
	Application       string   `json:"application,omitempty"`
	Intensity         string   `json:"intensity,omitempty"`
	Technology        string   `json:"technology,omitempty"`
	SKU               string   `json:"sku,omitempty"`
	Brand             string   `json:"brand,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	Cost              float64  `json:"cost,omitempty"`
}

// IsBound reports whether the treatment has a full catalog binding.
func (t *Treatment) IsBound() bool {
	return t.CategoryKey != "" && t.TreatmentKey != ""
}

// QuantityValue returns the raw value of the given quantity field.
func (t *Treatment) QuantityValue(field DynamicField) string {
	switch field {
	case FieldUnits:
		return t.Units
	case FieldVolume:
		return t.Volume
	case FieldVials:
		return t.Vials
	default:
		return ""
	}
}

// Clone returns a structural deep copy of the treatment.
func (t *Treatment) Clone() *Treatment {
	clone := *t
	clone.TargetArea = append([]string(nil), t.TargetArea...)
	if t.PricePerUnit != nil {
		ppu := *t.PricePerUnit
		clone.PricePerUnit = &ppu
	}
	return &clone
}

// Phase is an ordered group of treatments within a plan. Treatment
// order defines document order.
type Phase struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Treatments         []Treatment `json:"treatments"`
	ControlsAndMetrics []string    `json:"controlsAndMetrics,omitempty"`
}

// Clone returns a structural deep copy of the phase.
func (p *Phase) Clone() *Phase {
	clone := *p
	if p.Treatments != nil {
		clone.Treatments = make([]Treatment, len(p.Treatments))
		for i := range p.Treatments {
			clone.Treatments[i] = *p.Treatments[i].Clone()
		}
	}
	clone.ControlsAndMetrics = append([]string(nil), p.ControlsAndMetrics...)
	return &clone
}

// Plan is a full treatment plan: patient, practice snapshot, ordered
// phases, home-care routines, and the investment block. Phase order is
// the canonical document order.
type Plan struct {
	ID                     string                `json:"id"`
	Title                  string                `json:"title"`
	Patient                Patient               `json:"patient"`
	Provider               string                `json:"provider,omitempty"`
	Date                   string                `json:"date,omitempty"`
	Practice               PracticeInfo          `json:"practice"`
	Contraindications      PlanContraindications `json:"contraindications"`
	ProviderVerified       bool                  `json:"providerVerified"`
	Phases                 []Phase               `json:"phases"`
	AMRoutine              []string              `json:"amRoutine,omitempty"`
	PMRoutine              []string              `json:"pmRoutine,omitempty"`
	SkincareInstructions   string                `json:"skincareInstructions,omitempty"`
	GeneralRecommendations []Recommendation      `json:"generalRecommendations,omitempty"`
	Investment             Investment            `json:"investment"`
	NextSteps              []string              `json:"nextSteps,omitempty"`
	Notes                  string                `json:"notes,omitempty"`
}

// Clone returns a structural deep copy of the plan.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Phases != nil {
		clone.Phases = make([]Phase, len(p.Phases))
		for i := range p.Phases {
			clone.Phases[i] = *p.Phases[i].Clone()
		}
	}
	clone.AMRoutine = append([]string(nil), p.AMRoutine...)
	clone.PMRoutine = append([]string(nil), p.PMRoutine...)
	clone.GeneralRecommendations = append([]Recommendation(nil), p.GeneralRecommendations...)
	clone.NextSteps = append([]string(nil), p.NextSteps...)
	clone.Investment.FinancingOptions = append([]FinancingOption(nil), p.Investment.FinancingOptions...)
	return &clone
}

// FindTreatment locates a treatment by id across all phases, returning
// the phase id it lives in.
func (p *Plan) FindTreatment(treatmentID string) (*Treatment, string, bool) {
	for pi := range p.Phases {
		for ti := range p.Phases[pi].Treatments {
			if p.Phases[pi].Treatments[ti].ID == treatmentID {
				return &p.Phases[pi].Treatments[ti], p.Phases[pi].ID, true
			}
		}
	}
	return nil, "", false
}

// TemplateTreatment is a treatment inside a plan template.
// Contraindications keep their polymorphic shape (absent, plain, or
// localized) until instantiation normalizes them.
type TemplateTreatment struct {
	ID                string           `json:"id"`
	CategoryKey       string           `json:"categoryKey"`
	TreatmentKey      string           `json:"treatmentKey"`
	Goal              string           `json:"goal,omitempty"`
	Frequency         string           `json:"frequency,omitempty"`
	Week              string           `json:"week,omitempty"`
	Price             float64          `json:"price"`
	PricePerUnit      *float64         `json:"pricePerUnit,omitempty"`
	Discount          float64          `json:"discount"`
	Icon              string           `json:"icon,omitempty"`
	KeyInstructions   string           `json:"keyInstructions,omitempty"`
	Contraindications Contraindication `json:"contraindications,omitempty"`
	TargetArea        []string         `json:"targetArea,omitempty"`
	Units             string           `json:"units,omitempty"`
	Volume            string           `json:"volume,omitempty"`
	Vials             string           `json:"vials,omitempty"`
	Dosage            string           `json:"dosage,omitempty"`
	Application       string           `json:"application,omitempty"`
	Intensity         string           `json:"intensity,omitempty"`
	Technology        string           `json:"technology,omitempty"`
}

// TemplatePhase is a phase inside a plan template.
type TemplatePhase struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Treatments         []TemplateTreatment `json:"treatments"`
	ControlsAndMetrics []string            `json:"controlsAndMetrics,omitempty"`
}

// PlanTemplate is immutable source data for new plans. Every
// instantiation deep-copies; templates are never aliased into plans.
type PlanTemplate struct {
	ID                     string           `json:"id"`
	Title                  LocalizedString  `json:"title"`
	Notes                  LocalizedString  `json:"notes,omitempty"`
	CategoryKey            string           `json:"categoryKey,omitempty"`
	Provider               string           `json:"provider,omitempty"`
	Phases                 []TemplatePhase  `json:"phases"`
	AMRoutine              []string         `json:"amRoutine,omitempty"`
	PMRoutine              []string         `json:"pmRoutine,omitempty"`
	SkincareInstructions   string           `json:"skincareInstructions,omitempty"`
	GeneralRecommendations []Recommendation `json:"generalRecommendations,omitempty"`
	Investment             Investment       `json:"investment"`
	NextSteps              []string         `json:"nextSteps,omitempty"`
}

// Clone returns a structural deep copy of the template.
func (t *PlanTemplate) Clone() *PlanTemplate {
	clone := *t
	if t.Phases != nil {
		clone.Phases = make([]TemplatePhase, len(t.Phases))
		for i, phase := range t.Phases {
			phaseClone := phase
			if phase.Treatments != nil {
				phaseClone.Treatments = make([]TemplateTreatment, len(phase.Treatments))
				for j, treatment := range phase.Treatments {
					treatmentClone := treatment
					treatmentClone.TargetArea = append([]string(nil), treatment.TargetArea...)
					if treatment.PricePerUnit != nil {
						ppu := *treatment.PricePerUnit
						treatmentClone.PricePerUnit = &ppu
					}
					phaseClone.Treatments[j] = treatmentClone
				}
			}
			phaseClone.ControlsAndMetrics = append([]string(nil), phase.ControlsAndMetrics...)
			clone.Phases[i] = phaseClone
		}
	}
	clone.AMRoutine = append([]string(nil), t.AMRoutine...)
	clone.PMRoutine = append([]string(nil), t.PMRoutine...)
	clone.GeneralRecommendations = append([]Recommendation(nil), t.GeneralRecommendations...)
	clone.NextSteps = append([]string(nil), t.NextSteps...)
	clone.Investment.FinancingOptions = append([]FinancingOption(nil), t.Investment.FinancingOptions...)
	return &clone
}
