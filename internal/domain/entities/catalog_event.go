package entities

import "time"

// Catalog event types published on the catalog change bus.
const (
	CatalogEventSaved = "catalog.saved"
	CatalogEventReset = "catalog.reset"
)

// CatalogEvent signals that a tenant's catalog changed, so cached
// copies can be invalidated.
type CatalogEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	TenantID  string    `json:"tenantId"`
	Timestamp time.Time `json:"timestamp"`
}
