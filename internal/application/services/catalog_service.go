package services

import (
	"context"
	"log"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
	"github.com/aesthetics360/planstudio/internal/domain/repositories"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
	"github.com/google/uuid"
)

// CatalogService manages the per-tenant catalog document: practice
// info, categories and items, option groups, and plan templates. Saves
// and resets are announced on the event bus so cached copies elsewhere
// get invalidated. The bus may be nil, which disables notifications.
type CatalogService struct {
	repo repositories.CatalogRepository
	bus  providers.EventBus
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repositories.CatalogRepository, bus providers.EventBus) *CatalogService {
	return &CatalogService{repo: repo, bus: bus}
}

// Load returns the tenant's catalog, deep-merged over the built-in
// defaults by the repository.
func (s *CatalogService) Load(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	if tenantID == "" {
		return nil, apperrors.NewValidationError("tenant id is required")
	}
	return s.repo.Load(ctx, tenantID)
}

// Save replaces the tenant's catalog document and publishes a saved
// event.
func (s *CatalogService) Save(ctx context.Context, tenantID string, catalog *entities.CatalogDefinition) error {
	if tenantID == "" {
		return apperrors.NewValidationError("tenant id is required")
	}
	if catalog == nil {
		return apperrors.NewValidationError("catalog is required")
	}
	if err := s.repo.Save(ctx, tenantID, catalog); err != nil {
		return err
	}
	s.publish(ctx, tenantID, entities.CatalogEventSaved)
	return nil
}

// Reset discards the tenant's saved document, returns a fresh copy of
// the defaults, and publishes a reset event.
func (s *CatalogService) Reset(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	if tenantID == "" {
		return nil, apperrors.NewValidationError("tenant id is required")
	}
	catalog, err := s.repo.Reset(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, tenantID, entities.CatalogEventReset)
	return catalog, nil
}

// publish is best-effort: a bus failure never fails the write that
// already happened.
func (s *CatalogService) publish(ctx context.Context, tenantID, eventType string) {
	if s.bus == nil {
		return
	}
	event := &entities.CatalogEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		TenantID:  tenantID,
		Timestamp: time.Now(),
	}
	// Tenant channel feeds SSE streams, the global channel feeds cache
	// invalidation across instances.
	for _, channel := range []string{providers.GetCatalogChannel(tenantID), providers.EventChannelCatalogUpdates} {
		if err := s.bus.Publish(ctx, channel, event); err != nil {
			log.Printf("failed to publish %s event for tenant %s on %s: %v", eventType, tenantID, channel, err)
		}
	}
}
