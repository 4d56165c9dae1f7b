package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	set  chan struct{}
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, set: make(chan struct{}, 16)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value, ok := c.data[key]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("key not found: %s", key)
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	c.data[key] = value
	c.mu.Unlock()
	c.set <- struct{}{}
	return nil
}

func (c *memoryCache) SetMulti(ctx context.Context, items map[string][]byte, expirationSeconds int) error {
	c.mu.Lock()
	for key, value := range items {
		c.data[key] = value
	}
	c.mu.Unlock()
	c.set <- struct{}{}
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

func (c *memoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return time.Minute, nil
	}
	return 0, nil
}

type countingCatalogRepo struct {
	mu    sync.Mutex
	loads int
}

func (r *countingCatalogRepo) Load(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	return entities.DefaultCatalog(), nil
}

func (r *countingCatalogRepo) Save(ctx context.Context, tenantID string, catalog *entities.CatalogDefinition) error {
	return nil
}

func (r *countingCatalogRepo) Reset(ctx context.Context, tenantID string) (*entities.CatalogDefinition, error) {
	return entities.DefaultCatalog(), nil
}

func (r *countingCatalogRepo) loadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loads
}

func TestCachedLoad_SecondLoadServedFromCache(t *testing.T) {
	repo := &countingCatalogRepo{}
	cache := newMemoryCache()
	cached := NewCachedCatalogAdapter(repo, cache, 300)

	first, err := cached.Load(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, repo.loadCount())

	// The cache write happens off the request path
	select {
	case <-cache.set:
	case <-time.After(time.Second):
		t.Fatal("cache write never happened")
	}

	second, err := cached.Load(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, first.PracticeInfo.Name, second.PracticeInfo.Name)
	assert.Equal(t, 1, repo.loadCount())
}

func TestCachedSave_InvalidatesTenantEntry(t *testing.T) {
	repo := &countingCatalogRepo{}
	cache := newMemoryCache()
	cached := NewCachedCatalogAdapter(repo, cache, 300)

	require.NoError(t, cache.Set(context.Background(), catalogCacheKey("tenant-1"), []byte(`{}`), 300))

	require.NoError(t, cached.Save(context.Background(), "tenant-1", entities.DefaultCatalog()))

	exists, _ := cache.Exists(context.Background(), catalogCacheKey("tenant-1"))
	assert.False(t, exists)
}

func TestCachedReset_InvalidatesTenantEntry(t *testing.T) {
	repo := &countingCatalogRepo{}
	cache := newMemoryCache()
	cached := NewCachedCatalogAdapter(repo, cache, 300)

	require.NoError(t, cache.Set(context.Background(), catalogCacheKey("tenant-1"), []byte(`{}`), 300))

	catalog, err := cached.Reset(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.NotNil(t, catalog)

	exists, _ := cache.Exists(context.Background(), catalogCacheKey("tenant-1"))
	assert.False(t, exists)
}

func TestCachedLoad_CorruptCacheFallsBack(t *testing.T) {
	repo := &countingCatalogRepo{}
	cache := newMemoryCache()
	cached := NewCachedCatalogAdapter(repo, cache, 300)

	require.NoError(t, cache.Set(context.Background(), catalogCacheKey("tenant-1"), []byte("not json"), 300))
	<-cache.set

	catalog, err := cached.Load(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.NotNil(t, catalog)
	assert.Equal(t, 1, repo.loadCount())
}
