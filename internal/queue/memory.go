package queue

import (
	"context"
	"sync"
)

// MemoryRepository keeps snapshots in process memory.
type MemoryRepository struct {
	mu        sync.Mutex
	snapshots map[uint][]Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{snapshots: make(map[uint][]Entry)}
}

func (m *MemoryRepository) Load(_ context.Context, doctorID uint) ([]Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.snapshots[doctorID]
	out := make([]Entry, len(stored))
	copy(out, stored)
	return out, ok, nil
}

func (m *MemoryRepository) Save(_ context.Context, doctorID uint, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]Entry, len(entries))
	copy(stored, entries)
	m.snapshots[doctorID] = stored
	return nil
}

func (m *MemoryRepository) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots = make(map[uint][]Entry)
	return nil
}
