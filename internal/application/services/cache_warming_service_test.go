package services_test

import (
	"context"
	"testing"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

type defaultCatalogRepo struct{}

func (defaultCatalogRepo) Load(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	return entities.DefaultCatalog(), nil
}

func (defaultCatalogRepo) Save(ctx context.Context, tenantID string, catalog *entities.CatalogDefinition) error {
	return nil
}

func (defaultCatalogRepo) Reset(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	return entities.DefaultCatalog(), nil
}

func TestCacheWarmingService_WarmCache(t *testing.T) {
	cache := NewMockCacheProvider()
	service := services.NewCacheWarmingService(defaultCatalogRepo{}, cache, []string{"default", "tenant-1"}, 300)

	if err := service.WarmCache(context.Background()); err != nil {
		t.Fatalf("Failed to warm cache: %v", err)
	}

	if !cache.Has("catalog:default") {
		t.Error("Expected default tenant catalog to be cached")
	}
	if !cache.Has("catalog:tenant-1") {
		t.Error("Expected tenant-1 catalog to be cached")
	}
}

func TestCacheWarmingService_GetCacheStats(t *testing.T) {
	cache := NewMockCacheProvider()
	service := services.NewCacheWarmingService(defaultCatalogRepo{}, cache, []string{"default"}, 300)

	if err := service.WarmCache(context.Background()); err != nil {
		t.Fatalf("Failed to warm cache: %v", err)
	}

	stats, err := service.GetCacheStats(context.Background())
	if err != nil {
		t.Fatalf("Failed to get cache stats: %v", err)
	}

	if stats["cached_tenants"] != 1 {
		t.Errorf("Expected 1 cached tenant, got %v", stats["cached_tenants"])
	}
}
