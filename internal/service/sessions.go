package service

import (
	"sync"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
)

// SessionStore owns every active conversation session, keyed by user id.
// It is the only place session state lives; no other component reads or
// writes it.
type SessionStore struct {
	mu      sync.Mutex
	entries map[int64]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[int64]*sessionEntry)}
}

func (st *SessionStore) entry(userID int64) *sessionEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.entries[userID]
	if !ok {
		e = &sessionEntry{session: domain.Session{Step: domain.StepIdle}}
		st.entries[userID] = e
	}
	return e
}

// With runs fn with exclusive access to the user's session, creating an idle
// session on first use. Events for one user serialize here; distinct users
// proceed concurrently.
func (st *SessionStore) With(userID int64, fn func(*domain.Session)) {
	e := st.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.session)
}

// Snapshot returns a copy of the user's current session.
func (st *SessionStore) Snapshot(userID int64) domain.Session {
	var out domain.Session
	st.With(userID, func(s *domain.Session) {
		out = *s
	})
	return out
}
