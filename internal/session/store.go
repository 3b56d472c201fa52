// Package session owns the signed-in user record for the lifetime of a
// lumen process. The store is created at application start and handed to
// whatever needs it; nothing reaches for package-level state.
package session

import (
	"sync"

	"github.com/lumenlabs/lumen/internal/models"
)

// Store holds the current user record.
type Store struct {
	mu   sync.RWMutex
	user *models.User
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the signed-in user, or false when nobody is signed in.
func (s *Store) Current() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Set records the signed-in user.
func (s *Store) Set(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// Reset clears the store. Called on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
