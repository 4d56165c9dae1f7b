package entities

// OrphanedItemLabel is the sentinel shown for treatments whose catalog
// reference no longer resolves.
const OrphanedItemLabel = "Untitled Treatment"

// HomeCareCategoryKey groups the items rendered in the home-care
// section of the plan document.
const HomeCareCategoryKey = "skincare-medications"

// Option group keys present in every catalog.
const (
	OptionGroupTechnologies       = "technologies"
	OptionGroupTimelines          = "timelines"
	OptionGroupFrequencies        = "frequencies"
	OptionGroupTargetAreas        = "targetAreas"
	OptionGroupIntensities        = "intensities"
	OptionGroupApplications       = "applications"
	OptionGroupTemplateCategories = "templateCategories"
	OptionGroupPhaseTitles        = "phaseTitles"
)

// PracticeInfo identifies the clinic issuing a plan. Plans keep a
// snapshot of it taken at instantiation time.
type PracticeInfo struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// OptionDefinition is one entry of a select-style option group.
type OptionDefinition struct {
	Value string          `json:"value"`
	Label LocalizedString `json:"label"`
}

// ItemDefaults carries the values a treatment instance is hydrated
// with when its catalog item is selected.
type ItemDefaults struct {
	Goal              LocalizedString  `json:"goal"`
	Contraindications *LocalizedString `json:"contraindications,omitempty"`
	Frequency         string           `json:"frequency,omitempty"`
	Week              string           `json:"week,omitempty"`
	Price             float64          `json:"price,omitempty"`
	PricePerUnit      *float64         `json:"pricePerUnit,omitempty"`
	TargetArea        []string         `json:"targetArea,omitempty"`
	Units             string           `json:"units,omitempty"`
	Volume            string           `json:"volume,omitempty"`
	Vials             string           `json:"vials,omitempty"`
	Dosage            string           `json:"dosage,omitempty"`
	Application       string           `json:"application,omitempty"`
	Intensity         string           `json:"intensity,omitempty"`
	Technology        string           `json:"technology,omitempty"`
	SKU               string           `json:"sku,omitempty"`
	Cost              float64          `json:"cost,omitempty"`
	ImageURL          string           `json:"imageUrl,omitempty"`
	Brand             string           `json:"brand,omitempty"`
	Icon              string           `json:"icon,omitempty"`
}

// TreatmentDefinitionItem is one product or service in a catalog category.
type TreatmentDefinitionItem struct {
	Key      string          `json:"key"`
	Name     LocalizedString `json:"name"`
	Fields   []DynamicField  `json:"fields"`
	Defaults ItemDefaults    `json:"defaults"`
}

// Category groups catalog items under a localized display name.
type Category struct {
	DisplayName LocalizedString           `json:"displayName"`
	ItemLabel   LocalizedString           `json:"itemLabel"`
	Items       []TreatmentDefinitionItem `json:"items"`
}

// CatalogDefinition is the full per-tenant catalog document: categories
// with their items, select-option groups, plan templates, and practice
// identity. It is loaded once per session and mutated only through the
// settings flow.
type CatalogDefinition struct {
	PracticeInfo  PracticeInfo                  `json:"practiceInfo"`
	Categories    map[string]Category           `json:"categories"`
	Options       map[string][]OptionDefinition `json:"options"`
	PlanTemplates []PlanTemplate                `json:"planTemplates"`
}

// FindItem resolves a (categoryKey, treatmentKey) pair to its catalog
// item. The second return is false for orphaned references.
func (c *CatalogDefinition) FindItem(categoryKey, treatmentKey string) (*TreatmentDefinitionItem, bool) {
	category, ok := c.Categories[categoryKey]
	if !ok {
		return nil, false
	}
	for i := range category.Items {
		if category.Items[i].Key == treatmentKey {
			return &category.Items[i], true
		}
	}
	return nil, false
}

// ItemDisplayName resolves a treatment's localized display name,
// degrading to the orphan sentinel when the reference is dangling.
func (c *CatalogDefinition) ItemDisplayName(categoryKey, treatmentKey, lang string) string {
	item, ok := c.FindItem(categoryKey, treatmentKey)
	if !ok {
		return OrphanedItemLabel
	}
	return item.Name.Resolve(lang)
}

// FindTemplate returns the plan template with the given id.
func (c *CatalogDefinition) FindTemplate(id string) (*PlanTemplate, bool) {
	for i := range c.PlanTemplates {
		if c.PlanTemplates[i].ID == id {
			return &c.PlanTemplates[i], true
		}
	}
	return nil, false
}

// OptionLabel resolves an option value to its localized label within a
// group, falling back to the raw value when no definition matches.
func (c *CatalogDefinition) OptionLabel(group, value, lang string) string {
	for _, opt := range c.Options[group] {
		if opt.Value == value {
			if label := opt.Label.Resolve(lang); label != "" {
				return label
			}
			return value
		}
	}
	return value
}

// PhaseTitleOptions returns the ordered phase-title option values.
func (c *CatalogDefinition) PhaseTitleOptions() []OptionDefinition {
	return c.Options[OptionGroupPhaseTitles]
}

// Clone returns a structural deep copy of the catalog.
func (c *CatalogDefinition) Clone() *CatalogDefinition {
	if c == nil {
		return nil
	}
	clone := &CatalogDefinition{
		PracticeInfo: c.PracticeInfo,
	}
	if c.Categories != nil {
		clone.Categories = make(map[string]Category, len(c.Categories))
		for key, category := range c.Categories {
			clone.Categories[key] = category.clone()
		}
	}
	if c.Options != nil {
		clone.Options = make(map[string][]OptionDefinition, len(c.Options))
		for group, options := range c.Options {
			clone.Options[group] = append([]OptionDefinition(nil), options...)
		}
	}
	if c.PlanTemplates != nil {
		clone.PlanTemplates = make([]PlanTemplate, len(c.PlanTemplates))
		for i := range c.PlanTemplates {
			clone.PlanTemplates[i] = *c.PlanTemplates[i].Clone()
		}
	}
	return clone
}

func (c Category) clone() Category {
	clone := c
	if c.Items != nil {
		clone.Items = make([]TreatmentDefinitionItem, len(c.Items))
		for i := range c.Items {
			clone.Items[i] = c.Items[i].clone()
		}
	}
	return clone
}

func (i TreatmentDefinitionItem) clone() TreatmentDefinitionItem {
	clone := i
	clone.Fields = append([]DynamicField(nil), i.Fields...)
	clone.Defaults = i.Defaults.Clone()
	return clone
}

// Clone returns a structural deep copy of the defaults.
func (d ItemDefaults) Clone() ItemDefaults {
	clone := d
	clone.TargetArea = append([]string(nil), d.TargetArea...)
	if d.Contraindications != nil {
		contra := *d.Contraindications
		clone.Contraindications = &contra
	}
	if d.PricePerUnit != nil {
		ppu := *d.PricePerUnit
		clone.PricePerUnit = &ppu
	}
	return clone
}
