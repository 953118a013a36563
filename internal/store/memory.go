package store

import (
	"sort"
	"sync"

	"github.com/bivory/roz/internal/state"
)

// MemoryStore is an in-process Store backed by a map, protected by an
// RWMutex so List/Get readers never block each other while a single Put or
// Delete writer is serialized against all of them. Used by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*state.Session
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*state.Session)}
}

func (m *MemoryStore) Get(sessionID string) (*state.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStore) Put(s *state.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.SessionID] = &cp
	return nil
}

func (m *MemoryStore) List(limit int) ([]SessionSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]SessionSummary, 0, len(m.sessions))
	for _, s := range m.sessions {
		summaries = append(summaries, summarize(s))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	if limit >= 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (m *MemoryStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

var _ Store = (*MemoryStore)(nil)
