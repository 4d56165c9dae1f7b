package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/providers"
	"github.com/aesthetics360/planstudio/internal/domain/repositories"
)

// CacheWarmingService pre-loads catalog documents for known tenants so
// the first editor session after a deploy or cache flush does not pay
// the database round trip.
type CacheWarmingService struct {
	catalogRepo repositories.CatalogRepository
	cache       providers.CacheProvider
	tenants     []string
	ttl         int
}

// NewCacheWarmingService creates a new cache warming service. The TTL
// is in seconds and applies to the warmed catalog documents.
func NewCacheWarmingService(
	catalogRepo repositories.CatalogRepository,
	cache providers.CacheProvider,
	tenants []string,
	ttl int,
) *CacheWarmingService {
	return &CacheWarmingService{
		catalogRepo: catalogRepo,
		cache:       cache,
		tenants:     tenants,
		ttl:         ttl,
	}
}

// WarmCache loads and caches the catalog for every configured tenant
func (s *CacheWarmingService) WarmCache(ctx context.Context) error {
	log.Println("Starting cache warming...")

	items := make(map[string][]byte)
	for _, tenantID := range s.tenants {
		catalog, err := s.catalogRepo.Load(ctx, tenantID)
		if err != nil {
			log.Printf("Failed to load catalog for tenant %s: %v", tenantID, err)
			continue
		}

		data, err := json.Marshal(catalog)
		if err != nil {
			log.Printf("Failed to marshal catalog for tenant %s: %v", tenantID, err)
			continue
		}
		items[fmt.Sprintf("catalog:%s", tenantID)] = data
	}

	if len(items) > 0 {
		if err := s.cache.SetMulti(ctx, items, s.ttl); err != nil {
			return fmt.Errorf("failed to cache catalogs: %w", err)
		}
		log.Printf("Warmed cache with %d catalogs", len(items))
	}

	log.Println("Cache warming completed")
	return nil
}

// StartPeriodicWarming starts a background goroutine that periodically
// re-warms the cache until the context is cancelled
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	// Initial warming
	if err := s.WarmCache(ctx); err != nil {
		log.Printf("Initial cache warming failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("Stopping cache warming service")
				return
			case <-ticker.C:
				if err := s.WarmCache(context.Background()); err != nil {
					log.Printf("Periodic cache warming failed: %v", err)
				}
			}
		}
	}()
	log.Printf("Started periodic cache warming every %v", interval)
}

// GetCacheStats reports which configured tenants currently have a
// cached catalog, with remaining TTLs
func (s *CacheWarmingService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	cachedCount := 0
	for _, tenantID := range s.tenants {
		key := fmt.Sprintf("catalog:%s", tenantID)
		exists, err := s.cache.Exists(ctx, key)
		if err != nil {
			continue
		}
		if exists {
			cachedCount++

			if ttl, err := s.cache.TTL(ctx, key); err == nil {
				stats[fmt.Sprintf("%s_ttl", key)] = ttl.Seconds()
			}
		}
	}

	stats["cached_tenants"] = cachedCount
	stats["total_tenants"] = len(s.tenants)

	return stats, nil
}
