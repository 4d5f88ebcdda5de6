package auth

import (
	"context"
	"sync"
)

// MemorySessionStore keeps sessions in a map. Used in tests and local
// development; production uses the postgres-backed store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
	}
}

// Put registers a session for a plain token.
func (s *MemorySessionStore) Put(token string, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.TokenHash = HashToken(token)
	s.sessions[session.TokenHash] = session
}

func (s *MemorySessionStore) Lookup(_ context.Context, tokenHash string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, ErrNoSession
	}
	return &session, nil
}

var _ SessionStore = (*MemorySessionStore)(nil)
