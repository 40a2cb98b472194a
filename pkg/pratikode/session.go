package pratikode

import "sync"

// Session holds the access token returned by login and the secret key used
// for transaction hashes. The zero value is an empty, usable session.
type Session struct {
	mu     sync.RWMutex
	token  string
	secret string
}

// Token returns the current access token, or "" when not logged in.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the access token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Secret returns the current secret key, or "" when none was issued.
func (s *Session) Secret() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret
}

// SetSecret replaces the secret key.
func (s *Session) SetSecret(secret string) {
	s.mu.Lock()
	s.secret = secret
	s.mu.Unlock()
}

// Clear drops both the token and the secret. Safe to call on an empty session.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.secret = ""
	s.mu.Unlock()
}
