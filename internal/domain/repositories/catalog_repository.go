package repositories

import (
	"context"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// CatalogRepository persists the per-tenant catalog document.
//
// Load must deep-merge the saved document over the built-in defaults,
// so tenants that saved before a default field or category was
// introduced still see it. Save replaces the whole document
// atomically. Reset discards the saved document and returns a fresh
// copy of the defaults.
type CatalogRepository interface {
	Load(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error)
	Save(ctx context.Context, tenantID string, catalog *entities.CatalogDefinition) error
	Reset(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error)
}
