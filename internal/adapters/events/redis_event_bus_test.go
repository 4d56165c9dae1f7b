package events

import (
	"context"
	"testing"
	"time"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
	redisclient "github.com/aesthetics360/planstudio/internal/infrastructure/clients/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) providers.EventBus {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisclient.NewClientFromAddr(mr.Addr())
	bus := NewRedisEventBus(client)
	t.Cleanup(func() {
		bus.Close()
		client.Close()
	})
	return bus
}

func TestPublishSubscribe_Roundtrip(t *testing.T) {
	bus := newTestBus(t)
	ctx := context.Background()

	channel := providers.GetCatalogChannel("tenant-1")
	events, err := bus.Subscribe(ctx, channel)
	require.NoError(t, err)

	// Give the receive loop a moment to attach
	time.Sleep(50 * time.Millisecond)

	sent := &entities.CatalogEvent{
		ID:       "evt-1",
		Type:     entities.CatalogEventSaved,
		TenantID: "tenant-1",
	}
	require.NoError(t, bus.Publish(ctx, channel, sent))

	select {
	case got := <-events:
		assert.Equal(t, "evt-1", got.ID)
		assert.Equal(t, entities.CatalogEventSaved, got.Type)
		assert.Equal(t, "tenant-1", got.TenantID)
	case <-time.After(2 * time.Second):
		t.Fatal("event never arrived")
	}
}

func TestSubscribe_ContextCancelClosesChannel(t *testing.T) {
	bus := newTestBus(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := bus.Subscribe(ctx, providers.GetCatalogChannel("tenant-2"))
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel never closed")
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := newTestBus(t)
	ctx := context.Background()

	channel := providers.GetCatalogChannel("tenant-3")
	events, err := bus.Subscribe(ctx, channel)
	require.NoError(t, err)

	require.NoError(t, bus.Unsubscribe(ctx, channel))

	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel never closed")
	}
}
