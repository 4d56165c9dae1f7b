// Package document turns a plan into the printable patient document:
// a fixed three-page layout model, a text rasterizer, a continuous-flow
// break calculator, and the PDF exporter.
package document

import (
	"fmt"
	"strings"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/i18n"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
)

// LineStyle selects the rendering treatment of a layout line.
type LineStyle int

const (
	StyleTitle LineStyle = iota
	StyleHeading
	StyleSubheading
	StyleBody
	StyleMuted
	StyleFooter
)

// Line is one row of the layout model. Indent is in levels, not pixels.
type Line struct {
	Text   string
	Style  LineStyle
	Indent int
}

// Page is one logical document page.
type Page struct {
	Lines []Line
}

// Layout is the complete document model, always three pages: overview,
// details and investment, home care and recommendations.
type Layout struct {
	Pages []Page
}

// Builder assembles the layout model from a plan and its catalog.
type Builder struct {
	pricing *services.PricingService
}

// NewBuilder creates a new layout builder.
func NewBuilder(pricing *services.PricingService) *Builder {
	return &Builder{pricing: pricing}
}

// Build produces the three-page layout. A nil plan has no preview.
func (b *Builder) Build(plan *entities.Plan, catalog *entities.CatalogDefinition, lang string) (*Layout, error) {
	if plan == nil {
		return nil, apperrors.NewValidationError("preview unavailable")
	}
	return &Layout{Pages: []Page{
		b.overviewPage(plan, lang),
		b.detailsPage(plan, catalog, lang),
		b.homeCarePage(plan, catalog, lang),
	}}, nil
}

// WeekRange renders the schedule window for the phase at the given
// index: four weeks per phase, one-based.
func WeekRange(index int, lang string) string {
	return fmt.Sprintf("%s %d - %d", i18n.T(lang, "docWeeks"), index*4+1, (index+1)*4)
}

func (b *Builder) overviewPage(plan *entities.Plan, lang string) Page {
	var page Page
	page.add(StyleTitle, 0, i18n.T(lang, "docTitle"))
	page.add(StyleBody, 0, plan.Practice.Name)
	if plan.Practice.Address != "" {
		page.add(StyleMuted, 0, plan.Practice.Address)
	}
	contact := joinNonEmpty("  ", plan.Practice.Phone, plan.Practice.Email, plan.Practice.Website)
	if contact != "" {
		page.add(StyleMuted, 0, contact)
	}

	page.add(StyleHeading, 0, i18n.T(lang, "docPatientInformation"))
	page.add(StyleBody, 1, fmt.Sprintf("%s: %s", i18n.T(lang, "docName"), plan.Patient.Name))
	if plan.Patient.Age > 0 {
		page.add(StyleBody, 1, fmt.Sprintf("%s: %d", i18n.T(lang, "docAge"), plan.Patient.Age))
	}
	if plan.Patient.Sex != "" {
		page.add(StyleBody, 1, fmt.Sprintf("%s: %s", i18n.T(lang, "docSex"), plan.Patient.Sex))
	}
	page.add(StyleBody, 1, fmt.Sprintf("%s: %s", i18n.T(lang, "docDate"), plan.Date))
	page.add(StyleBody, 1, fmt.Sprintf("%s: %s", i18n.T(lang, "docProvider"), plan.Provider))

	page.add(StyleHeading, 0, i18n.T(lang, "docContraindications"))
	entries := visibleContraindications(plan, lang)
	if len(entries) == 0 {
		page.add(StyleMuted, 1, i18n.T(lang, "docNoContraindications"))
	}
	for _, entry := range entries {
		page.add(StyleSubheading, 1, entry.label)
		page.add(StyleBody, 2, entry.value)
	}
	if plan.ProviderVerified {
		page.add(StyleMuted, 1, fmt.Sprintf("%s %s", i18n.T(lang, "docVerifiedBy"), plan.Date))
	}

	page.add(StyleHeading, 0, i18n.T(lang, "docPlanOverview"))
	page.add(StyleBody, 1, i18n.T(lang, "docOverviewIntro"))
	for i, phase := range plan.Phases {
		page.add(StyleMuted, 1, WeekRange(i, lang))
		title := phase.Title
		if title == "" {
			title = fmt.Sprintf("Phase %d", i+1)
		}
		page.add(StyleSubheading, 1, title)
		if n := len(phase.Treatments); n == 1 {
			page.add(StyleBody, 2, fmt.Sprintf("1 %s", i18n.T(lang, "docTreatmentPlanned")))
		} else if n > 1 {
			page.add(StyleBody, 2, fmt.Sprintf("%d %s", n, i18n.T(lang, "docTreatmentsPlanned")))
		}
	}
	// The follow-up entry occupies the window after the last phase
	page.add(StyleMuted, 1, WeekRange(len(plan.Phases), lang))
	page.add(StyleSubheading, 1, i18n.T(lang, "docFollowUp"))
	page.add(StyleBody, 2, i18n.T(lang, "docFollowUpDescription"))

	page.footer(plan, 1, lang)
	return page
}

func (b *Builder) detailsPage(plan *entities.Plan, catalog *entities.CatalogDefinition, lang string) Page {
	var page Page
	page.add(StyleTitle, 0, plan.Patient.Name)
	page.add(StyleMuted, 0, i18n.T(lang, "docDetailsSubtitle"))

	page.add(StyleHeading, 0, i18n.T(lang, "docTreatmentDetails"))
	for _, phase := range plan.Phases {
		page.add(StyleSubheading, 0, phase.Title)
		if len(phase.Treatments) == 0 {
			page.add(StyleMuted, 1, i18n.T(lang, "docNoTreatments"))
		}
		for ti := range phase.Treatments {
			treatment := &phase.Treatments[ti]
			name := catalog.ItemDisplayName(treatment.CategoryKey, treatment.TreatmentKey, lang)
			page.add(StyleBody, 1, fmt.Sprintf("%s  %s", name, formatCurrency(b.pricing.FinalPrice(treatment))))
			if treatment.Goal != "" {
				page.add(StyleMuted, 2, treatment.Goal)
			}
			if details := treatmentDetails(treatment, catalog, lang); details != "" {
				page.add(StyleMuted, 2, details)
			}
		}
	}

	totals := b.pricing.Totals(plan)
	page.add(StyleHeading, 0, i18n.T(lang, "docInvestmentSummary"))
	page.add(StyleBody, 1, fmt.Sprintf("%s  %s", i18n.T(lang, "docSubtotal"), formatCurrency(totals.Subtotal)))
	if plan.Investment.DiscountPercent > 0 {
		page.add(StyleBody, 1, fmt.Sprintf("%s (%g%%)  -%s", i18n.T(lang, "docPlanDiscount"), plan.Investment.DiscountPercent, formatCurrency(totals.DiscountAmount)))
	}
	page.add(StyleSubheading, 1, fmt.Sprintf("%s  %s", i18n.T(lang, "docTotalInvestment"), formatCurrency(totals.Total)))

	page.add(StyleHeading, 0, i18n.T(lang, "docFinancingOptions"))
	page.add(StyleBody, 1, i18n.T(lang, "docFinancingIntro"))
	financing := totals.Financing
	if len(financing) > 3 {
		financing = financing[:3]
	}
	for _, opt := range financing {
		page.add(StyleBody, 1, fmt.Sprintf("%s%s  %d %s %g%% APR",
			formatCurrency(opt.Monthly), i18n.T(lang, "docPerMonth"), opt.Months, i18n.T(lang, "docMonthsAt"), opt.APR))
	}

	page.footer(plan, 2, lang)
	return page
}

func (b *Builder) homeCarePage(plan *entities.Plan, catalog *entities.CatalogDefinition, lang string) Page {
	var page Page
	page.add(StyleTitle, 0, plan.Patient.Name)
	page.add(StyleMuted, 0, i18n.T(lang, "docHomeCareSubtitle"))

	page.add(StyleHeading, 0, i18n.T(lang, "docHomeCare"))
	page.add(StyleSubheading, 0, i18n.T(lang, "docHomeCareRegimen"))
	homeCare := homeCareItems(plan)
	if len(homeCare) == 0 {
		page.add(StyleMuted, 1, i18n.T(lang, "docNoHomeCare"))
	}
	for _, treatment := range homeCare {
		name := catalog.ItemDisplayName(treatment.CategoryKey, treatment.TreatmentKey, lang)
		line := name
		if treatment.Application != "" {
			line = fmt.Sprintf("%s  [%s]", name, catalog.OptionLabel(entities.OptionGroupApplications, treatment.Application, lang))
		}
		page.add(StyleBody, 1, line)
		if treatment.Goal != "" {
			page.add(StyleMuted, 2, treatment.Goal)
		}
		if treatment.Dosage != "" {
			page.add(StyleMuted, 2, fmt.Sprintf("%s: %s", i18n.T(lang, "docDosage"), treatment.Dosage))
		}
	}

	flagged := treatmentsWithContraindications(plan)
	if len(flagged) > 0 {
		page.add(StyleSubheading, 0, i18n.T(lang, "docTreatmentContra"))
		for _, treatment := range flagged {
			page.add(StyleBody, 1, catalog.ItemDisplayName(treatment.CategoryKey, treatment.TreatmentKey, lang))
			page.add(StyleMuted, 2, treatment.Contraindications)
		}
	}

	page.add(StyleHeading, 0, i18n.T(lang, "docRecommendations"))
	for _, rec := range plan.GeneralRecommendations {
		page.add(StyleBody, 1, "- "+rec.Text)
	}

	page.add(StyleHeading, 0, i18n.T(lang, "docNextSteps"))
	for i, step := range plan.NextSteps {
		page.add(StyleBody, 1, fmt.Sprintf("%d. %s", i+1, step))
	}

	page.footer(plan, 3, lang)
	return page
}

func (p *Page) add(style LineStyle, indent int, text string) {
	p.Lines = append(p.Lines, Line{Text: text, Style: style, Indent: indent})
}

func (p *Page) footer(plan *entities.Plan, number int, lang string) {
	p.add(StyleFooter, 0, fmt.Sprintf("%s  |  %s %d %s 3", plan.Practice.Name, i18n.T(lang, "docPage"), number, i18n.T(lang, "docOf")))
}

type contraindicationEntry struct {
	label string
	value string
}

// visibleContraindications filters the intake fields down to the ones
// with real content. "none" and "none reported" count as empty.
func visibleContraindications(plan *entities.Plan, lang string) []contraindicationEntry {
	candidates := []contraindicationEntry{
		{i18n.T(lang, "docMedications"), plan.Contraindications.Medications},
		{i18n.T(lang, "docAllergies"), plan.Contraindications.Allergies},
		{i18n.T(lang, "docMedicalHistory"), plan.Contraindications.MedicalHistory},
		{i18n.T(lang, "docPreviousTreatments"), plan.Contraindications.PreviousTreatments},
	}
	var visible []contraindicationEntry
	for _, c := range candidates {
		if hasContent(c.value) {
			visible = append(visible, c)
		}
	}
	return visible
}

func hasContent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return lower != "" && lower != "none" && lower != "none reported"
}

func homeCareItems(plan *entities.Plan) []*entities.Treatment {
	var items []*entities.Treatment
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Treatments {
			if plan.Phases[pi].Treatments[ti].CategoryKey == entities.HomeCareCategoryKey {
				items = append(items, &plan.Phases[pi].Treatments[ti])
			}
		}
	}
	return items
}

func treatmentsWithContraindications(plan *entities.Plan) []*entities.Treatment {
	var flagged []*entities.Treatment
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Treatments {
			treatment := &plan.Phases[pi].Treatments[ti]
			if hasContent(treatment.Contraindications) {
				flagged = append(flagged, treatment)
			}
		}
	}
	return flagged
}

// treatmentDetails renders the dynamic field chips as a single line,
// resolving option values to their localized labels.
func treatmentDetails(t *entities.Treatment, catalog *entities.CatalogDefinition, lang string) string {
	var parts []string
	if len(t.TargetArea) > 0 {
		labels := make([]string, len(t.TargetArea))
		for i, area := range t.TargetArea {
			labels[i] = catalog.OptionLabel(entities.OptionGroupTargetAreas, area, lang)
		}
		parts = append(parts, "Area: "+strings.Join(labels, ", "))
	}
	if t.Units != "" {
		parts = append(parts, "Units: "+t.Units)
	}
	if t.Volume != "" {
		parts = append(parts, "Volume: "+t.Volume+"ml")
	}
	if t.Vials != "" {
		parts = append(parts, "Vials: "+t.Vials)
	}
	if t.Dosage != "" {
		parts = append(parts, "Dosage: "+t.Dosage)
	}
	if t.Application != "" {
		parts = append(parts, "Apply: "+catalog.OptionLabel(entities.OptionGroupApplications, t.Application, lang))
	}
	if t.Intensity != "" {
		parts = append(parts, "Intensity: "+catalog.OptionLabel(entities.OptionGroupIntensities, t.Intensity, lang))
	}
	if t.Technology != "" {
		parts = append(parts, "Tech: "+catalog.OptionLabel(entities.OptionGroupTechnologies, t.Technology, lang))
	}
	return strings.Join(parts, "  ")
}

// formatCurrency renders USD with comma grouping, matching the
// document's en-US currency style.
func formatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	formatted := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(formatted, '.')
	whole, frac := formatted[:dot], formatted[dot:]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	if negative {
		return "-$" + grouped.String() + frac
	}
	return "$" + grouped.String() + frac
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
