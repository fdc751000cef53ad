// Package canvas manages editing sessions for the slide canvas. Each session
// owns its transform history; histories are never shared between sessions.
package canvas

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	podiumerrors "github.com/felixgeelhaar/podium/internal/errors"
	"github.com/felixgeelhaar/podium/internal/transform"
)

// Session is one canvas editing session. The embedded history is owned
// exclusively by this session and is destroyed with it.
type Session struct {
	ID        string
	CreatedAt time.Time
	History   *transform.History
}

// SessionStore owns the live canvas sessions. It replaces the editor's
// process-wide session registry with an explicitly owned object whose
// lifecycle is controlled by the caller.
//
// The store is safe for concurrent use; the histories it hands out are not,
// and must each be driven by a single goroutine.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Open creates a new session with a fresh history and returns it.
func (s *SessionStore) Open() *Session {
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		History:   transform.NewHistory(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, podiumerrors.New(podiumerrors.ErrCodeTransformSessionLost,
			fmt.Sprintf("canvas session not found: %s", id)).
			WithSuggestion("Open a new session; closed sessions cannot be resumed")
	}
	return session, nil
}

// Close removes a session and its history. Closing an unknown ID is a no-op.
func (s *SessionStore) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
