// Package i18n provides the static UI string tables for the two
// supported languages. Lookups fall back to English, and unknown keys
// return the key itself so a missing translation is visible rather
// than blank.
package i18n

import "github.com/aesthetics360/planstudio/internal/domain/entities"

// T resolves a message key for the given language.
func T(lang, key string) string {
	if lang == entities.LanguageES {
		if msg, ok := spanish[key]; ok {
			return msg
		}
	}
	if msg, ok := english[key]; ok {
		return msg
	}
	return key
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{entities.LanguageEN, entities.LanguageES}
}

// Supported reports whether lang is a known language code.
func Supported(lang string) bool {
	return lang == entities.LanguageEN || lang == entities.LanguageES
}
