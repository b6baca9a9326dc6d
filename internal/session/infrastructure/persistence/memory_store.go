package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/vocalis/internal/session/domain"
)

// MemoryStore is an in-process attribute store. It backs development mode
// and tests; attributes do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	attrs map[string]map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{attrs: make(map[string]map[string]string)}
}

// Set stores value under key for the session.
func (s *MemoryStore) Set(ctx context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.attrs[sessionID]
	if !ok {
		session = make(map[string]string)
		s.attrs[sessionID] = session
	}
	session[key] = value
	return nil
}

// Get retrieves the value for key.
func (s *MemoryStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.attrs[sessionID]; ok {
		if value, ok := session[key]; ok {
			return value, nil
		}
	}
	return "", domain.ErrAttributeNotFound
}

// Delete removes the value for key.
func (s *MemoryStore) Delete(ctx context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.attrs[sessionID]; ok {
		delete(session, key)
	}
	return nil
}

var _ domain.AttributeStore = (*MemoryStore)(nil)
