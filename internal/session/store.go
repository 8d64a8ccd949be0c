// ABOUTME: Session store mapping session ids to per-user menu state
// ABOUTME: Generation tokens detect and discard stale in-flight results
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the menu position of one conversation session
type State string

const (
	StateIdle           State = "idle"
	StateAwaitGender    State = "await_gender"
	StateAwaitQuery     State = "await_query"
	StateAwaitProfile   State = "await_profile"
	StateAwaitEvent     State = "await_event"
	StateAwaitSelection State = "await_selection"
)

// Session holds one user's conversation state. Token identifies the
// current generation; results computed under an older token are stale.
type Session struct {
	ID        string
	State     State
	Token     string
	Gender    string
	Profile   string
	UpdatedAt time.Time
}

// Store owns all live sessions. It replaces the ambient global session
// map: the conversation controller holds one Store and injects it where
// needed. Safe for concurrent sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating an idle one if absent. The
// returned copy is a snapshot; mutate through Store methods.
func (s *Store) Get(id string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getLocked(id)
}

func (s *Store) getLocked(id string) *Session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{
			ID:        id,
			State:     StateIdle,
			Token:     uuid.New().String(),
			UpdatedAt: time.Now(),
		}
		s.sessions[id] = sess
	}
	return sess
}

// Transition moves the session to a new state, keeping its token
func (s *Store) Transition(id string, state State) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getLocked(id)
	sess.State = state
	sess.UpdatedAt = time.Now()
	return *sess
}

// SetGender records the gender filter collected from the user
func (s *Store) SetGender(id, gender string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getLocked(id)
	sess.Gender = gender
	sess.UpdatedAt = time.Now()
	return *sess
}

// SetProfile records the style profile collected from the user
func (s *Store) SetProfile(id, profile string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getLocked(id)
	sess.Profile = profile
	sess.UpdatedAt = time.Now()
	return *sess
}

// Reset returns the session to the idle state and rotates its token, so
// any in-flight result issued under the old token is discarded when it
// arrives.
func (s *Store) Reset(id string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getLocked(id)
	sess.State = StateIdle
	sess.Gender = ""
	sess.Profile = ""
	sess.Token = uuid.New().String()
	sess.UpdatedAt = time.Now()
	return *sess
}

// Accept reports whether a result computed under token may still be
// delivered to the session.
func (s *Store) Accept(id, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	return ok && sess.Token == token
}

// Remove drops a session entirely (user abandoned the conversation)
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
