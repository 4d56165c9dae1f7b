package handlers_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"net/http/httptest"

	"github.com/aesthetics360/planstudio/internal/api/handlers"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
)

// MockEventBus for testing
type MockEventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan *entities.CatalogEvent
	published   []*entities.CatalogEvent
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{
		subscribers: make(map[string][]chan *entities.CatalogEvent),
		published:   make([]*entities.CatalogEvent, 0),
	}
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.CatalogEvent) error {
	m.mu.Lock()
	m.published = append(m.published, event)
	channels := append([]chan *entities.CatalogEvent(nil), m.subscribers[channel]...)
	m.mu.Unlock()

	for _, ch := range channels {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.CatalogEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan *entities.CatalogEvent, 10)
	m.subscribers[channel] = append(m.subscribers[channel], ch)
	return ch, nil
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscribers, channel)
	return nil
}

func (m *MockEventBus) Close() error {
	m.mu.Lock()
	subs := m.subscribers
	m.subscribers = make(map[string][]chan *entities.CatalogEvent)
	m.mu.Unlock()
	for _, channels := range subs {
		for _, ch := range channels {
			close(ch)
		}
	}
	return nil
}

func (m *MockEventBus) PublishedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.published)
}

func TestSSEHandler_StreamCatalogUpdates(t *testing.T) {
	eventBus := NewMockEventBus()
	handler := handlers.NewSSEHandler(eventBus)

	t.Run("should establish SSE connection", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req := httptest.NewRequest("GET", "/api/stream/catalog", nil)
		req.Header.Set("X-Tenant-ID", "tenant-1")
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()

		done := make(chan struct{})
		go func() {
			handler.StreamCatalogUpdates(w, req)
			close(done)
		}()

		// Wait a bit for connection to establish
		time.Sleep(100 * time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler did not exit after cancel")
		}

		result := w.Result()
		if result.Header.Get("Content-Type") != "text/event-stream" {
			t.Errorf("Expected Content-Type text/event-stream, got %s", result.Header.Get("Content-Type"))
		}
		if result.Header.Get("Cache-Control") != "no-cache" {
			t.Errorf("Expected Cache-Control no-cache, got %s", result.Header.Get("Cache-Control"))
		}
		if !strings.Contains(w.Body.String(), "event: connected") {
			t.Error("expected initial connected event")
		}
	})

	t.Run("should receive catalog events", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req := httptest.NewRequest("GET", "/api/stream/catalog", nil)
		req.Header.Set("X-Tenant-ID", "tenant-2")
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()

		done := make(chan struct{})
		go func() {
			handler.StreamCatalogUpdates(w, req)
			close(done)
		}()

		// Wait for connection
		time.Sleep(100 * time.Millisecond)

		event := &entities.CatalogEvent{
			ID:       "evt-1",
			Type:     entities.CatalogEventSaved,
			TenantID: "tenant-2",
		}
		channel := providers.GetCatalogChannel("tenant-2")
		eventBus.Publish(context.Background(), channel, event)

		// Wait for event to be sent
		time.Sleep(200 * time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler did not exit after cancel")
		}

		if eventBus.PublishedCount() == 0 {
			t.Error("Expected event to be published")
		}
		if !strings.Contains(w.Body.String(), string(entities.CatalogEventSaved)) {
			t.Error("expected catalog.saved event in stream")
		}
	})
}

func TestSSEHandler_ClientCount(t *testing.T) {
	eventBus := NewMockEventBus()
	handler := handlers.NewSSEHandler(eventBus)

	// Initial count should be 0
	if count := handler.GetClientCount(); count != 0 {
		t.Errorf("Expected 0 clients, got %d", count)
	}

	// Start a connection
	req := httptest.NewRequest("GET", "/api/stream/catalog", nil)
	w := httptest.NewRecorder()

	ctx, cancel := context.WithCancel(context.Background())
	req = req.WithContext(ctx)

	go handler.StreamCatalogUpdates(w, req)
	time.Sleep(100 * time.Millisecond)

	// Count should be 1
	if count := handler.GetClientCount(); count != 1 {
		t.Errorf("Expected 1 client, got %d", count)
	}

	// Cancel connection
	cancel()
	time.Sleep(100 * time.Millisecond)

	// Count should be 0 again
	if count := handler.GetClientCount(); count != 0 {
		t.Errorf("Expected 0 clients after disconnect, got %d", count)
	}
}
