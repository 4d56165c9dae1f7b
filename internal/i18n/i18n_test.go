package i18n

import (
	"testing"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestT_ResolvesPerLanguage(t *testing.T) {
	assert.Equal(t, "Treatment Plan", T(entities.LanguageEN, "patientPlan"))
	assert.Equal(t, "Plan de Tratamiento", T(entities.LanguageES, "patientPlan"))
}

func TestT_FallsBackToEnglish(t *testing.T) {
	// Unknown language code resolves from the English table
	assert.Equal(t, "Treatment Plan", T("fr", "patientPlan"))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "noSuchKey", T(entities.LanguageEN, "noSuchKey"))
}

func TestSpanishTableCoversEnglishKeys(t *testing.T) {
	for key := range english {
		_, ok := spanish[key]
		assert.True(t, ok, "missing Spanish translation for %s", key)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(entities.LanguageEN))
	assert.True(t, Supported(entities.LanguageES))
	assert.False(t, Supported("fr"))
}
