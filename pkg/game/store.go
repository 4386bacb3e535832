package game

import "sync"

// Store owns the set of live sessions, one per user. Sessions for different
// users are fully independent; operations on the same user's session are
// serialized through Do.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*sessionEntry)}
}

// CreateOrReset replaces any existing session for userID with a fresh one
// and returns it. A reset discards all prior state, including achievements.
func (st *Store) CreateOrReset(userID int64, playerName string) *Session {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	if !ok {
		e = &sessionEntry{}
		st.sessions[userID] = e
	}
	st.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = NewSession(userID, playerName)
	return e.session
}

// Get returns the session for userID, or ErrSessionNotFound. The returned
// pointer is shared; concurrent callers must mutate through Do instead.
func (st *Store) Get(userID int64) (*Session, error) {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	st.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session, nil
}

// Do runs fn with exclusive access to userID's session. All work on one
// session key funnels through the entry lock, so a duplicate or retried
// delivery can never interleave with an in-flight mutation. fn must not
// block on external I/O.
func (st *Store) Do(userID int64, fn func(*Session) error) error {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
