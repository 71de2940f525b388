package store

import (
	"sync"

	"heartdrop/internal/domain"
)

// Manager hands out one Collection per session id and pushes catalog
// refreshes to all of them.
type Manager struct {
	sink LikeSink

	mu       sync.Mutex
	base     []domain.Product
	sessions map[string]*Collection
}

func NewManager(base []domain.Product, sink LikeSink) *Manager {
	return &Manager{
		sink:     sink,
		base:     append([]domain.Product(nil), base...),
		sessions: make(map[string]*Collection),
	}
}

func (m *Manager) Session(sessionID string) *Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.sessions[sessionID]; ok {
		return c
	}
	c := NewCollection(sessionID, m.base, m.sink)
	m.sessions[sessionID] = c
	return c
}

// Refresh replaces the base catalog after an admin mutation and propagates it
// to every live session.
func (m *Manager) Refresh(products []domain.Product) {
	m.mu.Lock()
	m.base = append([]domain.Product(nil), products...)
	sessions := make([]*Collection, 0, len(m.sessions))
	for _, c := range m.sessions {
		sessions = append(sessions, c)
	}
	m.mu.Unlock()
	for _, c := range sessions {
		c.Replace(products)
	}
}

// Drop forgets a session's collection (ws disconnect with ephemeral likes).
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}
