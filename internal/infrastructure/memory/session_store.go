package memory

import (
	"context"
	"sync"
	"time"
)

// SessionStore sesiones en memoria (se pierden al reiniciar).
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

type sessionEntry struct {
	uid       string
	expiresAt time.Time
}

// NewSessionStore construye el almacén vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]sessionEntry), now: time.Now}
}

func (s *SessionStore) Put(_ context.Context, sessionID, uid string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = sessionEntry{uid: uid, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *SessionStore) Lookup(_ context.Context, sessionID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		return "", false, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.sessions, sessionID)
		return "", false, nil
	}
	return e.uid, true, nil
}

func (s *SessionStore) Revoke(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// Active cantidad de sesiones registradas (vencidas incluidas hasta su próxima lectura).
func (s *SessionStore) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
