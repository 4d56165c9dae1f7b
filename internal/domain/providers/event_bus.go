package providers

import (
	"context"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// catalog change events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.CatalogEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.CatalogEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for catalog change notifications
const (
	// EventChannelCatalogUpdates is the channel for all catalog updates
	EventChannelCatalogUpdates = "catalog:updates"

	// EventChannelCatalogPrefix is the prefix for tenant-specific channels
	EventChannelCatalogPrefix = "catalog:"
)

// GetCatalogChannel returns the channel name for a specific tenant
func GetCatalogChannel(tenantID string) string {
	return EventChannelCatalogPrefix + tenantID
}
