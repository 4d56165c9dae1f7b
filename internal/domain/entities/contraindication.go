package entities

import (
	"encoding/json"
	"fmt"
)

// ContraindicationKind discriminates the provenance of a contraindication value.
type ContraindicationKind int

const (
	// ContraindicationAbsent means no value was supplied.
	ContraindicationAbsent ContraindicationKind = iota

	// ContraindicationPlainText is a user- or AI-entered string.
	ContraindicationPlainText

	// ContraindicationLocalized is a per-locale value from the catalog.
	ContraindicationLocalized
)

// Contraindication is a tagged variant for the three shapes a
// contraindication value arrives in: absent, a plain string, or a
// localized object. It is normalized to a plain string exactly once,
// at plan instantiation, so downstream code only sees strings.
type Contraindication struct {
	kind      ContraindicationKind
	text      string
	localized LocalizedString
}

// NewPlainContraindication wraps a plain string value.
func NewPlainContraindication(text string) Contraindication {
	return Contraindication{kind: ContraindicationPlainText, text: text}
}

// NewLocalizedContraindication wraps a per-locale value.
func NewLocalizedContraindication(value LocalizedString) Contraindication {
	return Contraindication{kind: ContraindicationLocalized, localized: value}
}

// Kind returns the variant discriminator.
func (c Contraindication) Kind() ContraindicationKind {
	return c.kind
}

// Resolve normalizes the variant to a plain string for the given
// language. Absent values resolve to the supplied fallback.
func (c Contraindication) Resolve(lang, fallback string) string {
	switch c.kind {
	case ContraindicationPlainText:
		return c.text
	case ContraindicationLocalized:
		return c.localized.Resolve(lang)
	default:
		return fallback
	}
}

// MarshalJSON emits the variant in its original wire shape.
func (c Contraindication) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ContraindicationPlainText:
		return json.Marshal(c.text)
	case ContraindicationLocalized:
		return json.Marshal(c.localized)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, a string, or a localized object.
func (c *Contraindication) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Contraindication{}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = Contraindication{kind: ContraindicationPlainText, text: text}
		return nil
	}

	var localized LocalizedString
	if err := json.Unmarshal(data, &localized); err == nil {
		*c = Contraindication{kind: ContraindicationLocalized, localized: localized}
		return nil
	}

	return fmt.Errorf("contraindication must be null, a string, or a localized object")
}
