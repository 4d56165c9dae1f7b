package entities

// DynamicField is a closed enum of the optional input kinds a catalog
// item can declare. An item's Fields set decides which inputs the
// treatment editor shows and which field drives price computation.
type DynamicField string

const (
	FieldTargetArea  DynamicField = "targetArea"
	FieldUnits       DynamicField = "units"
	FieldVolume      DynamicField = "volume"
	FieldVials       DynamicField = "vials"
	FieldDosage      DynamicField = "dosage"
	FieldApplication DynamicField = "application"
	FieldIntensity   DynamicField = "intensity"
	FieldTechnology  DynamicField = "technology"
)

// quantityFields lists the fields that can drive pricing, in precedence
// order. The first declared and non-empty field wins.
var quantityFields = []DynamicField{FieldUnits, FieldVolume, FieldVials}

// Valid reports whether the value is a known field kind.
func (f DynamicField) Valid() bool {
	switch f {
	case FieldTargetArea, FieldUnits, FieldVolume, FieldVials,
		FieldDosage, FieldApplication, FieldIntensity, FieldTechnology:
		return true
	}
	return false
}

// HasField reports whether the item declares the given field kind.
func (i *TreatmentDefinitionItem) HasField(field DynamicField) bool {
	for _, f := range i.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// QuantityField returns the field that drives price computation for
// this item, or an empty string when the item is not quantity-priced.
// Precedence is units over volume over vials.
func (i *TreatmentDefinitionItem) QuantityField() DynamicField {
	for _, f := range quantityFields {
		if i.HasField(f) {
			return f
		}
	}
	return ""
}
