package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedString_Resolve(t *testing.T) {
	value := LocalizedString{EN: "Forehead", ES: "Frente"}

	assert.Equal(t, "Forehead", value.Resolve(LanguageEN))
	assert.Equal(t, "Frente", value.Resolve(LanguageES))

	// Missing Spanish falls back to English
	partial := LocalizedString{EN: "Forehead"}
	assert.Equal(t, "Forehead", partial.Resolve(LanguageES))
}

func TestDefaultCatalog_ReturnsIndependentCopies(t *testing.T) {
	first := DefaultCatalog()
	second := DefaultCatalog()

	first.PracticeInfo.Name = "Changed Clinic"
	category := first.Categories["injectables"]
	category.Items[0].Defaults.Price = 1

	assert.Equal(t, "Aesthetics 360 Medical Center", second.PracticeInfo.Name)
	assert.Equal(t, float64(650), second.Categories["injectables"].Items[0].Defaults.Price)
}

func TestFindItem(t *testing.T) {
	catalog := DefaultCatalog()

	item, ok := catalog.FindItem("injectables", "botox")
	require.True(t, ok)
	assert.Equal(t, "Botox", item.Name.EN)
	require.NotNil(t, item.Defaults.PricePerUnit)
	assert.Equal(t, float64(13), *item.Defaults.PricePerUnit)

	_, ok = catalog.FindItem("injectables", "missing")
	assert.False(t, ok)

	_, ok = catalog.FindItem("missing-category", "botox")
	assert.False(t, ok)
}

func TestItemDisplayName_OrphanedReference(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, "Bótox", catalog.ItemDisplayName("injectables", "botox", LanguageES))
	assert.Equal(t, OrphanedItemLabel, catalog.ItemDisplayName("injectables", "removed-item", LanguageEN))
}

func TestQuantityFieldPrecedence(t *testing.T) {
	unitsItem := TreatmentDefinitionItem{Fields: []DynamicField{FieldTargetArea, FieldUnits}}
	assert.Equal(t, FieldUnits, unitsItem.QuantityField())

	volumeItem := TreatmentDefinitionItem{Fields: []DynamicField{FieldVolume, FieldTargetArea}}
	assert.Equal(t, FieldVolume, volumeItem.QuantityField())

	vialsItem := TreatmentDefinitionItem{Fields: []DynamicField{FieldVials}}
	assert.Equal(t, FieldVials, vialsItem.QuantityField())

	// Units wins when multiple quantity fields are declared
	mixed := TreatmentDefinitionItem{Fields: []DynamicField{FieldVials, FieldVolume, FieldUnits}}
	assert.Equal(t, FieldUnits, mixed.QuantityField())

	nonQuantity := TreatmentDefinitionItem{Fields: []DynamicField{FieldTargetArea, FieldIntensity}}
	assert.Equal(t, DynamicField(""), nonQuantity.QuantityField())
}

func TestCatalogClone_DoesNotAliasTemplates(t *testing.T) {
	catalog := DefaultCatalog()
	clone := catalog.Clone()

	clone.PlanTemplates[0].Phases[0].Title = "Mutated"
	clone.PlanTemplates[0].Phases[0].Treatments[0].Goal = "Mutated goal"

	assert.Equal(t, "Initial Assessment & Foundation Treatments", catalog.PlanTemplates[0].Phases[0].Title)
	assert.Equal(t, "Establish baseline and goals.", catalog.PlanTemplates[0].Phases[0].Treatments[0].Goal)
}
