package session

import (
	"prompt_school_backend/internal/catalog"
	"sync"
)

// Manager hands out one Controller per learner, created lazily. Sessions are
// in-memory and die with the process; durable state lives in the progress
// tracker, not here.
type Manager struct {
	catalog *catalog.Catalog

	mu       sync.Mutex
	sessions map[uint]*Controller
}

func NewManager(cat *catalog.Catalog) *Manager {
	return &Manager{
		catalog:  cat,
		sessions: make(map[uint]*Controller),
	}
}

func (m *Manager) Session(userID uint) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = NewController(m.catalog)
		m.sessions[userID] = s
	}
	return s
}
