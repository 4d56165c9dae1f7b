package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/repositories"
	"github.com/aesthetics360/planstudio/internal/infrastructure/clients/postgres"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

// CatalogAdapter persists the per-tenant catalog as a JSONB document.
// Loads deep-merge the stored document over the built-in defaults, so a
// tenant that saved before a default category or field existed still
// sees it.
type CatalogAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCatalogAdapter creates a new catalog adapter.
func NewCatalogAdapter(client *postgres.Client) repositories.CatalogRepository {
	return &CatalogAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Load returns the tenant's catalog merged over the defaults. A tenant
// with no saved document gets a fresh copy of the defaults.
func (a *CatalogAdapter) Load(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	query, args, err := a.db.From("catalogs").
		Select("document").
		Where(goqu.Ex{"tenant_id": tenantID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build catalog select query", err)
	}

	var document []byte
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&document)
	if err == sql.ErrNoRows {
		return entities.DefaultCatalog(), nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}

	return mergeOverDefaults(document)
}

// Save upserts the tenant's full catalog document.
func (a *CatalogAdapter) Save(ctx context.Context, tenantID string, catalog *entities.CatalogDefinition) error {
	document, err := json.Marshal(catalog)
	if err != nil {
		return apperrors.NewInternalError("failed to serialize catalog", err)
	}

	now := time.Now()
	query, args, err := a.db.Insert("catalogs").
		Rows(goqu.Record{
			"tenant_id":  tenantID,
			"document":   document,
			"updated_at": now,
		}).
		OnConflict(goqu.DoUpdate("tenant_id", goqu.Record{
			"document":   document,
			"updated_at": now,
		})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build catalog upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to save catalog", err)
	}
	return nil
}

// Reset deletes the tenant's saved document and returns the defaults.
func (a *CatalogAdapter) Reset(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	query, args, err := a.db.Delete("catalogs").
		Where(goqu.Ex{"tenant_id": tenantID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build catalog delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to reset catalog", err)
	}
	return entities.DefaultCatalog(), nil
}

// mergeOverDefaults layers a stored document over the built-in default
// catalog. Objects merge recursively; scalars and arrays in the stored
// document win.
func mergeOverDefaults(document []byte) (*entities.CatalogDefinition, error) {
	defaultDoc, err := json.Marshal(entities.DefaultCatalog())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to serialize default catalog", err)
	}

	var base, saved map[string]interface{}
	if err := json.Unmarshal(defaultDoc, &base); err != nil {
		return nil, apperrors.NewInternalError("failed to parse default catalog", err)
	}
	if err := json.Unmarshal(document, &saved); err != nil {
		return nil, apperrors.NewInternalError("failed to parse stored catalog", err)
	}

	merged, err := json.Marshal(deepMerge(base, saved))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to merge catalog documents", err)
	}

	var catalog entities.CatalogDefinition
	if err := json.Unmarshal(merged, &catalog); err != nil {
		return nil, apperrors.NewInternalError("failed to decode merged catalog", err)
	}
	return &catalog, nil
}

func deepMerge(base, overlay map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(overlay))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overlay {
		overlayMap, overlayIsMap := value.(map[string]interface{})
		baseMap, baseIsMap := merged[key].(map[string]interface{})
		if overlayIsMap && baseIsMap {
			merged[key] = deepMerge(baseMap, overlayMap)
			continue
		}
		merged[key] = value
	}
	return merged
}
