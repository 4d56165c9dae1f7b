package entities

// LanguageEN is the base locale every localized value falls back to.
const LanguageEN = "en"

// LanguageES is the secondary supported locale.
const LanguageES = "es"

// LocalizedString holds a translatable value with per-locale variants.
type LocalizedString struct {
	EN string `json:"en"`
	ES string `json:"es,omitempty"`
}

// Resolve returns the variant for the given language, falling back to
// English when the requested variant is empty.
func (l LocalizedString) Resolve(lang string) string {
	if lang == LanguageES && l.ES != "" {
		return l.ES
	}
	return l.EN
}

// IsZero reports whether no variant is set.
func (l LocalizedString) IsZero() bool {
	return l.EN == "" && l.ES == ""
}
