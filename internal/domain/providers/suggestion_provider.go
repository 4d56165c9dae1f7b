package providers

import (
	"context"
	"errors"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// ErrSuggestionUnauthorized indicates the AI provider rejected our credentials.
var ErrSuggestionUnauthorized = errors.New("suggestion provider unauthorized")

// SuggestionProvider generates plan drafts and instruction text from
// free-text consultation notes. Implementations are fallible and may
// return drafts referencing catalog items that no longer exist; the
// suggestion service resolves and skips those.
type SuggestionProvider interface {
	// SuggestPlan turns consultation notes into a raw plan draft,
	// constrained to the categories and items of the given catalog.
	SuggestPlan(ctx context.Context, notes string, catalog *entities.CatalogDefinition) (*entities.PlanDraft, error)

	// SuggestInstructions produces patient-facing key instructions for
	// a treatment and its goal.
	SuggestInstructions(ctx context.Context, treatmentName, goal string) (string, error)
}
