package progress

import (
	"encoding/json"
	"sync"

	"prompt_school_backend/internal/model"
)

// MemoryStore is an in-memory Store. It backs tests and keeps the tracker
// usable without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[uint]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[uint]string)}
}

func (s *MemoryStore) Load(userID uint) (*model.UserProgress, error) {
	s.mu.RLock()
	raw, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return model.NewUserProgress(), nil
	}

	var p model.UserProgress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}

func (s *MemoryStore) Save(userID uint, p *model.UserProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[userID] = string(raw)
	s.mu.Unlock()
	return nil
}
