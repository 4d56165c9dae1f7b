package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
)

// CacheInvalidationService evicts cached catalog data when a catalog
// changes. The cached repository adapter already invalidates on the
// instance that handled the write; this service covers every other
// instance by listening on the shared event bus.
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for catalog events and invalidating cache
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelCatalogUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to catalog updates: %w", err)
	}

	go s.processEvents(eventChan)
	log.Println("Cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	log.Println("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.CatalogEvent) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event := <-eventChan:
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

// handleEvent handles a single catalog event
func (s *CacheInvalidationService) handleEvent(event *entities.CatalogEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Printf("Processing cache invalidation for event: %s (tenant: %s, type: %s)",
		event.ID, event.TenantID, event.Type)

	if err := s.InvalidateTenantCache(ctx, event.TenantID); err != nil {
		log.Printf("Warning: Failed to invalidate cache for tenant %s: %v", event.TenantID, err)
	}
}

// InvalidateTenantCache drops both the cached catalog document and the
// tenant's HTTP response cache entries. Plan and editor responses are
// never cached, so only catalog-derived keys are touched.
func (s *CacheInvalidationService) InvalidateTenantCache(ctx context.Context, tenantID string) error {
	if err := s.cache.Delete(ctx, fmt.Sprintf("catalog:%s", tenantID)); err != nil {
		return fmt.Errorf("failed to invalidate catalog document for tenant %s: %w", tenantID, err)
	}

	pattern := fmt.Sprintf("http:cache:%s:*", tenantID)
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		return fmt.Errorf("failed to invalidate response cache for tenant %s: %w", tenantID, err)
	}

	log.Printf("Invalidated cached catalog data for tenant %s", tenantID)
	return nil
}
