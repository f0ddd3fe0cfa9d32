package session

import "sync"

const (
	RoleCadet = "cadet"
	RoleANO   = "ano"
)

// Session is the current identity. The zero value is the logged-out state:
// UserID and Role are always both set or both empty, never a mix.
type Session struct {
	UserID string
	Role   string
}

func (s Session) LoggedIn() bool {
	return s.UserID != ""
}

// Store holds the process-wide session. Nothing is persisted; a restart
// returns to the logged-out state. Mutation happens only through Login and
// Logout, each of which replaces the whole record.
type Store struct {
	mu      sync.RWMutex
	current Session
}

func NewStore() *Store {
	return &Store{}
}

// Login replaces the session unconditionally. It is called only after a
// successful authentication response; no validation happens here.
func (s *Store) Login(userID, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{UserID: userID, Role: role}
}

// Logout resets the session to the logged-out state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
}

// Read returns a snapshot of the current session.
func (s *Store) Read() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
