package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/redshift-games/tyrian-world/internal/services"
	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/session"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*session.Record
	presets   map[string]*options.Raw
	pingError error
}

// Ensure MockStorage implements both storage interfaces
var (
	_ services.Storage = (*MockStorage)(nil)
	_ services.Archive = (*MockStorage)(nil)
)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		records: make(map[uuid.UUID]*session.Record),
		presets: make(map[string]*options.Raw),
	}
}

// SetPingSuccess configures the mock to succeed on ping
func (m *MockStorage) SetPingSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = nil
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// AddPreset registers a preset served by GetPreset and ListPresets
func (m *MockStorage) AddPreset(name string, raw *options.Raw) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presets[name] = raw
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	// Mock close doesn't need to do anything
	return nil
}

// SaveRecord mocks saving a record. The record is copied so later
// mutations by the caller don't leak into the store.
func (m *MockStorage) SaveRecord(ctx context.Context, rec *session.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *rec
	m.records[rec.ID] = &copied
	return nil
}

// LoadRecord mocks loading a record
func (m *MockStorage) LoadRecord(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, exists := m.records[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	copied := *rec
	return &copied, nil
}

// DeleteRecord mocks deleting a record
func (m *MockStorage) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

// ListPresets returns the registered preset names
func (m *MockStorage) ListPresets(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.presets))
	for name := range m.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetPreset returns a registered preset
func (m *MockStorage) GetPreset(ctx context.Context, name string) (*options.Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, exists := m.presets[name]
	if !exists {
		return nil, nil
	}
	return raw, nil
}
