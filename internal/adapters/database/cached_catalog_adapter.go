package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
	"github.com/aesthetics360/planstudio/internal/domain/repositories"
)

// CachedCatalogAdapter wraps CatalogAdapter with caching
type CachedCatalogAdapter struct {
	adapter repositories.CatalogRepository
	cache   providers.CacheProvider
	ttl     int
}

// NewCachedCatalogAdapter creates a new cached catalog adapter. The TTL
// is in seconds.
func NewCachedCatalogAdapter(adapter repositories.CatalogRepository, cache providers.CacheProvider, ttl int) repositories.CatalogRepository {
	return &CachedCatalogAdapter{
		adapter: adapter,
		cache:   cache,
		ttl:     ttl,
	}
}

func catalogCacheKey(tenantID string) string {
	return fmt.Sprintf("catalog:%s", tenantID)
}

// Load retrieves a tenant's catalog with caching
func (a *CachedCatalogAdapter) Load(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	cacheKey := catalogCacheKey(tenantID)

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var catalog entities.CatalogDefinition
		if err := json.Unmarshal(cached, &catalog); err == nil {
			return &catalog, nil
		}
		// If unmarshal fails, continue to fetch from DB
		log.Printf("Failed to unmarshal cached catalog for tenant %s: %v", tenantID, err)
	}

	// Cache miss - fetch from database
	catalog, err := a.adapter.Load(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(catalog); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, a.ttl); err != nil {
				log.Printf("Failed to cache catalog for tenant %s: %v", tenantID, err)
			}
		}
	}()

	return catalog, nil
}

// Save persists the catalog and invalidates the tenant's cache entry
func (a *CachedCatalogAdapter) Save(ctx context.Context, tenantID string, catalog *entities.CatalogDefinition) error {
	if err := a.adapter.Save(ctx, tenantID, catalog); err != nil {
		return err
	}

	// Invalidate synchronously so the next load never observes the old
	// document
	if err := a.cache.Delete(ctx, catalogCacheKey(tenantID)); err != nil {
		log.Printf("Failed to invalidate catalog cache for tenant %s: %v", tenantID, err)
	}
	return nil
}

// Reset discards the saved document and invalidates the cache entry
func (a *CachedCatalogAdapter) Reset(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	catalog, err := a.adapter.Reset(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Delete(ctx, catalogCacheKey(tenantID)); err != nil {
		log.Printf("Failed to invalidate catalog cache for tenant %s: %v", tenantID, err)
	}
	return catalog, nil
}
