package session

import (
	"sync"

	"github.com/bookwise/bookwise-cli/internal/entities"
)

// MemoryStore is an in-memory Store, used by tests and anywhere persistence
// is not wanted.
type MemoryStore struct {
	mu   sync.Mutex
	user *entities.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	user := *m.user
	return &user, nil
}

func (m *MemoryStore) Save(user entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}
