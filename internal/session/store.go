package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpatel-116/uniclash/internal/role"
)

// Session is the server-side record of an authenticated identity, referenced
// by the client through an opaque cookie token.
type Session struct {
	UserID    uint
	Username  string
	Role      role.Role
	ExpiresAt time.Time
}

// Expired reports whether the session is past its TTL.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store holds all live sessions in process memory. A session is created on
// login, destroyed on logout, and dropped once its TTL passes. Reads vastly
// outnumber writes, so an RWMutex guards the map.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

// NewStore creates a session store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create registers a new session for the identity and returns its opaque token.
func (st *Store) Create(userID uint, username string, role role.Role) string {
	token := uuid.NewString()
	st.mu.Lock()
	st.sessions[token] = Session{
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: time.Now().Add(st.ttl),
	}
	st.mu.Unlock()
	return token
}

// Get resolves a token to its session. Expired sessions are removed on the
// spot and reported as absent.
func (st *Store) Get(token string) (Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[token]
	st.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if s.Expired() {
		st.Destroy(token)
		return Session{}, false
	}
	return s, true
}

// Destroy invalidates a token. Destroying an unknown token is a no-op.
func (st *Store) Destroy(token string) {
	st.mu.Lock()
	delete(st.sessions, token)
	st.mu.Unlock()
}

// Len returns the number of sessions currently held, expired ones included.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartJanitor sweeps expired sessions every interval until stop is closed.
// Get already drops expired entries lazily; the janitor only keeps the map
// from accumulating tokens nobody asks for again.
func (st *Store) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				st.sweep()
			case <-stop:
				return
			}
		}
	}()
}

func (st *Store) sweep() {
	now := time.Now()
	st.mu.Lock()
	for token, s := range st.sessions {
		if now.After(s.ExpiresAt) {
			delete(st.sessions, token)
		}
	}
	st.mu.Unlock()
}
