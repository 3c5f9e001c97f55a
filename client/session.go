package client

import "sync"

// Session tracks who is signed in and whether they finished onboarding. It
// is safe for concurrent use; the app reads it from many screens at once.
type Session struct {
	mu            sync.RWMutex
	userID        int64
	authenticated bool
	onboarded     bool
}

func NewSession() *Session {
	return &Session{}
}

// SetUser records a successful login. Onboarding state is left untouched so
// returning users keep their completed flag.
func (s *Session) SetUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.authenticated = true
}

// UserID returns the signed-in user, or false when nobody is.
func (s *Session) UserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.authenticated
}

func (s *Session) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarded = true
}

func (s *Session) Onboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

// Clear logs out: all state resets, onboarding included.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = 0
	s.authenticated = false
	s.onboarded = false
}
