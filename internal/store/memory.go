package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/layout"
)

// MemoryStore keeps snapshots in a map. Entries never expire.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[uuid.UUID]layout.Snapshot
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[uuid.UUID]layout.Snapshot)}
}

// Save stores s under id, replacing any previous value.
func (m *MemoryStore) Save(_ context.Context, id uuid.UUID, s layout.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layouts[id] = s
	return nil
}

// Load returns the snapshot stored under id.
func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (layout.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.layouts[id]
	if !ok {
		return layout.Snapshot{}, ErrNotFound
	}
	return s, nil
}

// Delete removes id. Deleting a missing id is not an error.
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.layouts, id)
	return nil
}
