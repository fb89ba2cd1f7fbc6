package contentstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector serves a small in-memory catalog for local runs and tests.
type MockConnector struct {
	mu      sync.Mutex
	nextUID int
	entries map[string][]search.Entry
	logger  *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		entries: map[string][]search.Entry{
			"tour": {
				{"title": "Paris Getaway", "description": "romantic trip through the city of lights"},
				{"title": "Tokyo Adventure", "description": "city tour with street food stops"},
				{"title": "Alpine Hiking Week", "description": "guided mountain activity for all levels"},
			},
			"product": {
				{"title": "Travel Pillow", "description": "memory foam pillow for long journeys"},
				{"title": "Packing Cubes", "description": "keep your luggage organized"},
			},
		},
		logger: logger,
	}
}

func (m *MockConnector) FetchEntries(ctx context.Context, contentType string, limit int) ([]search.Entry, error) {
	ctxzap.Info(ctx, "[MOCK] fetching entries", zap.String("content_type", contentType))

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.entries[contentType]
	if len(entries) > limit && limit > 0 {
		entries = entries[:limit]
	}

	out := make([]search.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MockConnector) CreateEntry(ctx context.Context, contentType string, fields map[string]any) (string, error) {
	ctxzap.Info(ctx, "[MOCK] creating entry", zap.String("content_type", contentType))

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextUID++
	uid := fmt.Sprintf("mock-entry-%d", m.nextUID)

	entry := make(search.Entry, len(fields)+1)
	for k, v := range fields {
		entry[k] = v
	}
	entry["uid"] = uid

	m.entries[contentType] = append(m.entries[contentType], entry)
	return uid, nil
}
